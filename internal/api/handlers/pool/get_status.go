package pool

import (
	"net/http"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"

	"github.com/poolhouse/go-prize-pool/internal/api"
	"github.com/poolhouse/go-prize-pool/internal/pool/emergency"
	"github.com/poolhouse/go-prize-pool/internal/types"
	"github.com/poolhouse/go-prize-pool/internal/util"
)

func GetStatusRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Pool.GET("/status", getStatusHandler(s))
}

func getStatusHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		st := s.Pool.Status()

		response := &types.RoundStatusResponse{
			RoundID:          swag.Int64(st.RoundID),
			Phase:            swag.String(string(st.Phase)),
			StartTime:        strfmt.DateTime(st.StartTime),
			EndTime:          strfmt.DateTime(st.EndTime),
			CanDrawNow:       st.CanDrawNow,
			SecondsUntilDraw: st.SecondsUntilDraw,
			BatchPosition:    int64(st.BatchPosition),
			BatchComplete:    st.BatchComplete,
			PrizePool:        decimalString(st.PrizePool),
			RegisteredCount:  int64(st.RegisteredCount),
			TotalDeposited:   decimalString(st.TotalDeposited),
			Emergency: types.EmergencyResponse{
				State:  string(st.Emergency.State),
				Reason: st.Emergency.Reason,
			},
		}

		if st.ActualEndTime != nil {
			at := strfmt.DateTime(*st.ActualEndTime)
			response.ActualEndTime = &at
		}
		if st.Emergency.State == emergency.StateEmergency {
			enabledAt := strfmt.DateTime(st.Emergency.EnabledAt)
			response.Emergency.EnabledAt = &enabledAt
		}

		return util.ValidateAndReturn(c, http.StatusOK, response)
	}
}
