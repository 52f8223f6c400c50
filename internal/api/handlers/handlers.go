package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/api/handlers/common"
	"github.com/poolhouse/go-prize-pool/internal/api/handlers/pool"
)

// AttachAllRoutes registers every route on the server's router.
func AttachAllRoutes(s *api.Server) {
	s.Router.Routes = []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),

		pool.GetStatusRoute(s),
		pool.GetAccountRoute(s),
		pool.PostDepositRoute(s),
		pool.PostWithdrawRoute(s),
		pool.PostClaimNFTRoute(s),
		pool.GetPendingNFTsRoute(s),
		pool.GetDrawsRoute(s),
		pool.GetDrawRoute(s),

		pool.PostYieldRoute(s),
		pool.PostStartDrawRoute(s),
		pool.PostProcessBatchRoute(s),
		pool.PostCompleteDrawRoute(s),
		pool.PostNextRoundRoute(s),
		pool.PostSetBonusRoute(s),
		pool.PostAddBonusRoute(s),
		pool.DeleteBonusRoute(s),
		pool.PostEmergencyRoute(s),
		pool.PostRoundDurationRoute(s),
		pool.PostDepositNFTRoute(s),
		pool.PostCleanupRoute(s),
	}
}
