package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/stats"
)

type spaceApi struct {
	svc      *space.Service
	statsSvc *stats.Service
	validate *validator.Validate
}

func registerSpaceAPI(g *echo.Group, svc *space.Service, statsSvc *stats.Service, validate *validator.Validate) {
	api := spaceApi{
		svc:      svc,
		statsSvc: statsSvc,
		validate: validate,
	}

	sg := g.Group("/spaces")
	sg.GET("", api.query)
	sg.POST("", api.create)

	dg := sg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
	dg.GET("/stats", api.retrieveStats)
}

// Handlers

func (api *spaceApi) query(ctx echo.Context) error {
	spaces, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying spaces")
	}
	return ctx.JSON(http.StatusOK, spaces)
}

func (api *spaceApi) create(ctx echo.Context) error {
	var data space.NewSpace
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewSpace")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	sp, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating space")
	}
	return ctx.JSON(http.StatusCreated, sp)
}

func (api *spaceApi) retrieve(ctx echo.Context) error {
	sp, err := api.svc.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sp)
}

func (api *spaceApi) update(ctx echo.Context) error {
	var data space.UpdateSpace
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateSpace")
	}

	sp, err := api.svc.Update(ctx.Request().Context(), ctx.Param("id"), data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sp)
}

// destroy removes a space and returns the removed copy. Content that
// referenced the space is left in place.
func (api *spaceApi) destroy(ctx echo.Context) error {
	sp, err := api.svc.Delete(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, sp)
}

func (api *spaceApi) retrieveStats(ctx echo.Context) error {
	st, err := api.statsSvc.Space(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, st)
}
