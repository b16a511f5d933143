package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/user"
)

var errInvalidID = echo.NewHTTPError(http.StatusBadRequest, "invalid id")

type contentApi struct {
	svc      *content.Service
	usrSvc   *user.Service
	validate *validator.Validate
}

func registerContentAPI(g *echo.Group, svc *content.Service, usrSvc *user.Service, validate *validator.Validate) {
	api := contentApi{
		svc:      svc,
		usrSvc:   usrSvc,
		validate: validate,
	}

	cg := g.Group("/content")
	cg.GET("", api.query)
	cg.POST("", api.create)

	dg := cg.Group("/:id")
	dg.GET("", api.retrieve)
	dg.PUT("", api.update)
	dg.DELETE("", api.destroy)
}

// Handlers

// query returns the feed in display order: pinned items first, then most
// recent, narrowed by the optional type and search filters.
func (api *contentApi) query(ctx echo.Context) error {
	var q FeedQuery
	q.Bind(ctx)

	items, err := api.svc.Feed(ctx.Request().Context(), q.SpaceID, q.Type, q.Search)
	if err != nil {
		return errors.Wrap(err, "querying feed")
	}
	return ctx.JSON(http.StatusOK, items)
}

func (api *contentApi) create(ctx echo.Context) error {
	var data content.NewContent
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewContent")
	}
	if err := api.validate.Struct(&data); err != nil {
		return err
	}

	reqCtx := ctx.Request().Context()
	usr, err := api.usrSvc.Current(reqCtx)
	if err != nil {
		return errors.Wrap(err, "getting session user")
	}

	item, err := api.svc.Create(reqCtx, data, usr.Ref())
	if err != nil {
		return errors.Wrap(err, "creating content")
	}
	return ctx.JSON(http.StatusCreated, item)
}

func (api *contentApi) retrieve(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return errInvalidID
	}

	item, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, item)
}

func (api *contentApi) update(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return errInvalidID
	}

	var data content.UpdateContent
	if err = ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to UpdateContent")
	}

	item, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, item)
}

// destroy removes an item and returns the removed copy.
func (api *contentApi) destroy(ctx echo.Context) error {
	id, err := intParam(ctx, "id")
	if err != nil {
		return errInvalidID
	}

	item, err := api.svc.Delete(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, item)
}
