package user

import (
	"context"
	"errors"
	"time"

	"github.com/juntaeschool/backend/core"
)

// ErrNotFound is surfaced with the product's display message.
var ErrNotFound = errors.New("사용자를 찾을 수 없습니다.")

type (
	Repository interface {
		QueryAllUsers(ctx context.Context) ([]User, error)
		GetUserByID(ctx context.Context, id int) (User, error)
		CreateUser(ctx context.Context, usr User) (User, error)
		UpdateUser(ctx context.Context, id int, uu UpdateUser) (User, error)
		DeleteUser(ctx context.Context, id int) (User, error)
	}

	Service struct {
		repo          Repository
		currentUserID int
	}
)

// NewService returns a user service. currentUserID identifies the mock
// session user; the session is an explicit configuration value, never
// inferred from collection order.
func NewService(repo Repository, currentUserID int) *Service {
	return &Service{repo: repo, currentUserID: currentUserID}
}

func (svc *Service) QueryAll(ctx context.Context) ([]User, error) {
	return svc.repo.QueryAllUsers(ctx)
}

func (svc *Service) GetByID(ctx context.Context, id int) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

// Current returns the session user.
func (svc *Service) Current(ctx context.Context) (User, error) {
	return svc.repo.GetUserByID(ctx, svc.currentUserID)
}

func (svc *Service) Create(ctx context.Context, nu NewUser) (User, error) {
	usr := User{
		DisplayName:  core.CleanString(nu.DisplayName),
		Email:        core.CleanString(nu.Email, true /* lower */),
		PhotoURL:     core.CleanString(nu.PhotoURL),
		Bio:          nu.Bio,
		ExpertiseTag: core.CleanString(nu.ExpertiseTag),
		Settings:     DefaultSettings(),
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *Service) Update(ctx context.Context, id int, uu UpdateUser) (User, error) {
	return svc.repo.UpdateUser(ctx, id, uu)
}

// UpdateCurrent updates the session user.
func (svc *Service) UpdateCurrent(ctx context.Context, uu UpdateUser) (User, error) {
	return svc.repo.UpdateUser(ctx, svc.currentUserID, uu)
}

func (svc *Service) Delete(ctx context.Context, id int) (User, error) {
	return svc.repo.DeleteUser(ctx, id)
}
