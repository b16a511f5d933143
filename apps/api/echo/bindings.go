package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/juntaeschool/backend/core/content"
)

var (
	typeParam   = "type"
	searchParam = "q"
	spaceParam  = "space"
	limitParam  = "limit"
)

// FeedQuery carries the display filters of a feed request. An absent type
// means the whole collection.
type FeedQuery struct {
	SpaceID string
	Type    string
	Search  string
}

func (q *FeedQuery) Bind(ctx echo.Context) {
	q.SpaceID = ctx.QueryParam(spaceParam)
	q.Type = ctx.QueryParam(typeParam)
	if q.Type == "" {
		q.Type = content.TypeAll
	}
	q.Search = ctx.QueryParam(searchParam)
}

// LimitQuery carries an optional result cap. Zero means the caller's
// default.
type LimitQuery struct {
	Limit int
}

func (q *LimitQuery) Bind(ctx echo.Context) {
	if val := ctx.QueryParam(limitParam); val != "" {
		if limit, err := strconv.Atoi(val); err == nil && limit > 0 {
			q.Limit = limit
		}
	}
}

func intParam(ctx echo.Context, name string) (int, error) {
	return strconv.Atoi(ctx.Param(name))
}
