package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core/activity"
)

type activityApi struct {
	svc      *activity.Service
	validate *validator.Validate
}

func registerActivityAPI(g *echo.Group, svc *activity.Service, validate *validator.Validate) {
	api := activityApi{
		svc:      svc,
		validate: validate,
	}

	ag := g.Group("/activities")
	ag.GET("", api.query)
	ag.GET("/recent", api.queryRecent)
	ag.POST("", api.record)
}

// Handlers

func (api *activityApi) query(ctx echo.Context) error {
	activities, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying activities")
	}
	return ctx.JSON(http.StatusOK, toActivityFeed(activities))
}

func (api *activityApi) queryRecent(ctx echo.Context) error {
	var q LimitQuery
	q.Bind(ctx)

	activities, err := api.svc.Recent(ctx.Request().Context(), q.Limit)
	if err != nil {
		return errors.Wrap(err, "querying recent activities")
	}
	return ctx.JSON(http.StatusOK, toActivityFeed(activities))
}

func (api *activityApi) record(ctx echo.Context) error {
	var data activity.NewActivity
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewActivity")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	a, err := api.svc.Record(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, newActivityEntry(a))
}

// activityEntry pairs an activity with its display attributes so clients
// render labels, icons and badge colors without their own type tables.
type activityEntry struct {
	activity.Activity
	Display activity.DisplayInfo `json:"display"`
}

func newActivityEntry(a activity.Activity) activityEntry {
	return activityEntry{Activity: a, Display: a.Display()}
}

func toActivityFeed(activities []activity.Activity) []activityEntry {
	feed := make([]activityEntry, 0, len(activities))
	for _, a := range activities {
		feed = append(feed, newActivityEntry(a))
	}
	return feed
}
