package pool

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/pool/treasury"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func PostDepositNFTRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Admin.POST("/nfts", postDepositNFTHandler(s))
}

func postDepositNFTHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body types.PostDepositNFTPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		nft := treasury.NFT{
			ID:          uint64(*body.ID),
			Name:        swag.StringValue(body.Name),
			Description: body.Description,
		}

		if err := s.Pool.DepositNFT(nft); err != nil {
			return mapPoolError(err)
		}

		return util.ValidateAndReturn(c, http.StatusOK, &types.GenericSuccessResponse{Success: true})
	}
}
