package types

// PublicHTTPErrorType categorizes errors surfaced to API consumers.
type PublicHTTPErrorType string

const (
	PublicHTTPErrorTypeGeneric        PublicHTTPErrorType = "generic"
	PublicHTTPErrorTypeInvalidPayload PublicHTTPErrorType = "invalid_payload"
	PublicHTTPErrorTypePrecondition   PublicHTTPErrorType = "precondition_failed"
	PublicHTTPErrorTypeBlocked        PublicHTTPErrorType = "operation_blocked"
	PublicHTTPErrorTypeNotFound       PublicHTTPErrorType = "not_found"
	PublicHTTPErrorTypeUnauthorized   PublicHTTPErrorType = "unauthorized"
	PublicHTTPErrorTypeForbidden      PublicHTTPErrorType = "forbidden"
)
