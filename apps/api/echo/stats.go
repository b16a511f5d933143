package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core/stats"
)

type statsApi struct {
	svc *stats.Service
}

func registerStatsAPI(g *echo.Group, svc *stats.Service) {
	api := statsApi{svc: svc}

	sg := g.Group("/stats")
	sg.GET("/overview", api.retrieveOverview)
}

// retrieveOverview returns the community-wide dashboard numbers.
func (api *statsApi) retrieveOverview(ctx echo.Context) error {
	overview, err := api.svc.Overview(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying stats overview")
	}
	return ctx.JSON(http.StatusOK, overview)
}
