package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/stats"
	"github.com/juntaeschool/backend/core/user"
)

// Page endpoints compose one response per screen so clients render a whole
// page from a single request.

var (
	msgSettingsSaved = "설정이 저장되었습니다!"
	msgProfileSaved  = "프로필이 업데이트되었습니다!"
)

// the home screen shows a short upcoming-events card
const homeUpcomingLimit = 5

type (
	pageDeps struct {
		contentSvc  *content.Service
		spaceSvc    *space.Service
		eventSvc    *event.Service
		userSvc     *user.Service
		activitySvc *activity.Service
		statsSvc    *stats.Service
	}

	pageApi struct {
		pageDeps
	}

	homePage struct {
		Feed             []content.Content `json:"feed"`
		Spaces           []space.Space     `json:"spaces"`
		UpcomingEvents   []event.Event     `json:"upcoming_events"`
		RecentActivities []activityEntry   `json:"recent_activities"`
		Overview         stats.Overview    `json:"overview"`
		User             user.User         `json:"user"`
	}

	spacePage struct {
		Space space.Space       `json:"space"`
		Feed  []content.Content `json:"feed"`
		Stats space.Stats       `json:"stats"`
	}

	profilePage struct {
		User       user.User       `json:"user"`
		Stats      stats.UserStats `json:"stats"`
		Activities []activityEntry `json:"activities"`
	}

	settingsResponse struct {
		Message  string        `json:"message"`
		Settings user.Settings `json:"settings"`
	}

	profileResponse struct {
		Message string    `json:"message"`
		User    user.User `json:"user"`
	}
)

func registerPageAPI(g *echo.Group, deps pageDeps) {
	api := pageApi{pageDeps: deps}

	pg := g.Group("/pages")
	pg.GET("/home", api.home)
	pg.GET("/spaces/:id", api.space)
	pg.GET("/profile", api.profile)
	pg.GET("/settings", api.retrieveSettings)
	pg.PUT("/settings", api.saveSettings)
	pg.PUT("/profile", api.saveProfile)
}

// Handlers

func (api *pageApi) home(ctx echo.Context) error {
	var q FeedQuery
	q.Bind(ctx)
	reqCtx := ctx.Request().Context()

	feed, err := api.contentSvc.Feed(reqCtx, "", q.Type, q.Search)
	if err != nil {
		return errors.Wrap(err, "querying feed")
	}
	spaces, err := api.spaceSvc.QueryAll(reqCtx)
	if err != nil {
		return errors.Wrap(err, "querying spaces")
	}
	events, err := api.eventSvc.Upcoming(reqCtx, homeUpcomingLimit)
	if err != nil {
		return errors.Wrap(err, "querying upcoming events")
	}
	activities, err := api.activitySvc.Recent(reqCtx, 0)
	if err != nil {
		return errors.Wrap(err, "querying recent activities")
	}
	overview, err := api.statsSvc.Overview(reqCtx)
	if err != nil {
		return errors.Wrap(err, "querying stats overview")
	}
	usr, err := api.userSvc.Current(reqCtx)
	if err != nil {
		return errors.Wrap(err, "getting session user")
	}

	return ctx.JSON(http.StatusOK, homePage{
		Feed:             feed,
		Spaces:           spaces,
		UpcomingEvents:   events,
		RecentActivities: toActivityFeed(activities),
		Overview:         overview,
		User:             usr,
	})
}

func (api *pageApi) space(ctx echo.Context) error {
	var q FeedQuery
	q.Bind(ctx)
	reqCtx := ctx.Request().Context()
	spaceID := ctx.Param("id")

	sp, err := api.spaceSvc.GetByID(reqCtx, spaceID)
	if err != nil {
		return err
	}
	feed, err := api.contentSvc.Feed(reqCtx, sp.ID, q.Type, q.Search)
	if err != nil {
		return errors.Wrap(err, "querying space feed")
	}
	st, err := api.statsSvc.Space(reqCtx, sp.ID)
	if err != nil {
		return errors.Wrap(err, "querying space stats")
	}

	return ctx.JSON(http.StatusOK, spacePage{Space: sp, Feed: feed, Stats: st})
}

func (api *pageApi) profile(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	usr, err := api.userSvc.Current(reqCtx)
	if err != nil {
		return err
	}
	st, err := api.statsSvc.User(reqCtx, usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying user stats")
	}
	activities, err := api.activitySvc.ByUser(reqCtx, usr.ID)
	if err != nil {
		return errors.Wrap(err, "querying user activities")
	}

	return ctx.JSON(http.StatusOK, profilePage{
		User:       usr,
		Stats:      st,
		Activities: toActivityFeed(activities),
	})
}

func (api *pageApi) retrieveSettings(ctx echo.Context) error {
	usr, err := api.userSvc.Current(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr.Settings)
}

func (api *pageApi) saveSettings(ctx echo.Context) error {
	var data user.Settings
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Settings")
	}

	usr, err := api.userSvc.UpdateCurrent(ctx.Request().Context(), user.UpdateUser{Settings: &data})
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, settingsResponse{Message: msgSettingsSaved, Settings: usr.Settings})
}

func (api *pageApi) saveProfile(ctx echo.Context) error {
	var data user.UpdateUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateUser")
	}
	data.Settings = nil // settings are saved through their own endpoint

	usr, err := api.userSvc.UpdateCurrent(ctx.Request().Context(), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profileResponse{Message: msgProfileSaved, User: usr})
}
