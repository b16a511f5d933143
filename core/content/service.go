package content

import (
	"context"
	"errors"
	"time"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/user"
)

// ErrNotFound is surfaced with the product's display message.
var ErrNotFound = errors.New("콘텐츠를 찾을 수 없습니다.")

type (
	Repository interface {
		QueryAllContent(ctx context.Context) ([]Content, error)
		GetContentByID(ctx context.Context, id int) (Content, error)
		// QueryContentBySpace narrows the collection to the space's content
		// type. An unrecognized space falls back to the full collection.
		QueryContentBySpace(ctx context.Context, spaceID string) ([]Content, error)
		CreateContent(ctx context.Context, c Content) (Content, error)
		UpdateContent(ctx context.Context, id int, uc UpdateContent) (Content, error)
		DeleteContent(ctx context.Context, id int) (Content, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll(ctx context.Context) ([]Content, error) {
	return svc.repo.QueryAllContent(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (Content, error) {
	return svc.repo.GetContentByID(ctx, id)
}

func (svc *Service) QueryBySpace(ctx context.Context, spaceID string) ([]Content, error) {
	return svc.repo.QueryContentBySpace(ctx, spaceID)
}

// Feed fetches the full or space-scoped collection and returns the exact
// display ordering for the given filter and search query.
func (svc *Service) Feed(ctx context.Context, spaceID, typeFilter, query string) ([]Content, error) {
	var items []Content
	var err error
	if spaceID != "" {
		items, err = svc.repo.QueryContentBySpace(ctx, spaceID)
	} else {
		items, err = svc.repo.QueryAllContent(ctx)
	}
	if err != nil {
		return nil, err
	}
	return FilterAndSort(items, typeFilter, query), nil
}

func (svc *Service) Create(ctx context.Context, nc NewContent, author user.Ref) (Content, error) {
	c := Content{
		Type:        nc.Type,
		Title:       core.CleanString(nc.Title),
		Body:        nc.Body,
		Description: nc.Description,
		Tag:         core.CleanString(nc.Tag),
		IsPinned:    false,
		Likes:       0,
		Comments:    0,
		Author:      author,
		SpaceID:     nc.SpaceID,
		StartsAt:    nc.StartsAt,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateContent(ctx, c)
}

func (svc *Service) Update(ctx context.Context, id int, uc UpdateContent) (Content, error) {
	return svc.repo.UpdateContent(ctx, id, uc)
}

func (svc *Service) Delete(ctx context.Context, id int) (Content, error) {
	return svc.repo.DeleteContent(ctx, id)
}
