package pool

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/httperrors"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func GetPendingNFTsRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/nfts/pending/:account", getPendingNFTsHandler(s))
}

func getPendingNFTsHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		account := c.Param("account")
		if account == "" {
			return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidPayload, "account must not be empty")
		}

		pending := s.Pool.PendingNFTs(account)
		response := &types.NFTListResponse{
			Nfts: make([]*types.NFTResponse, len(pending)),
		}
		for i, nft := range pending {
			response.Nfts[i] = toNFTResponse(nft)
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
