package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostClaimNFTRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.POST("/nfts/claim", postClaimNFTHandler(s))
}

func postClaimNFTHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostClaimNFTPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		nft, err := s.Pool.ClaimNFT(swag.StringValue(body.Account), int(*body.Index))
		if err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, toNFTResponse(nft))
	}
}
