package space

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/juntaeschool/backend/core"
)

// ErrNotFound is surfaced with the product's display message.
var ErrNotFound = errors.New("스페이스를 찾을 수 없습니다.")

type (
	Repository interface {
		QueryAllSpaces(ctx context.Context) ([]Space, error)
		GetSpaceByID(ctx context.Context, id string) (Space, error)
		CreateSpace(ctx context.Context, sp Space) (Space, error)
		UpdateSpace(ctx context.Context, id string, us UpdateSpace) (Space, error)
		DeleteSpace(ctx context.Context, id string) (Space, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// QueryAll returns all spaces in display order.
func (svc *Service) QueryAll(ctx context.Context) ([]Space, error) {
	spaces, err := svc.repo.QueryAllSpaces(ctx)
	if err != nil {
		return nil, err
	}
	return SortSpaces(spaces), nil
}

func (svc *Service) GetByID(ctx context.Context, id string) (Space, error) {
	return svc.repo.GetSpaceByID(ctx, core.CleanString(id, true /* lower */))
}

func (svc *Service) Create(ctx context.Context, ns NewSpace) (Space, error) {
	sp := Space{
		ID:        newSpaceID(),
		Name:      core.CleanString(ns.Name),
		Icon:      ns.Icon,
		SpaceType: ns.SpaceType,
	}
	return svc.repo.CreateSpace(ctx, sp)
}

func (svc *Service) Update(ctx context.Context, id string, us UpdateSpace) (Space, error) {
	return svc.repo.UpdateSpace(ctx, id, us)
}

func (svc *Service) Delete(ctx context.Context, id string) (Space, error) {
	// no cascade: the space's content outlives it
	return svc.repo.DeleteSpace(ctx, id)
}

// newSpaceID generates a store-independent string identity for a Space.
func newSpaceID() string {
	return "space_" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
