package activity

import (
	"context"
	"errors"
	"time"

	"github.com/juntaeschool/backend/core/user"
)

// ErrNotFound is surfaced with the product's display message.
var ErrNotFound = errors.New("활동을 찾을 수 없습니다.")

// DefaultRecentLimit bounds recent-activity queries that do not name one.
const DefaultRecentLimit = 10

type (
	Repository interface {
		QueryAllActivities(ctx context.Context) ([]Activity, error)
		QueryActivitiesByUser(ctx context.Context, userID int) ([]Activity, error)
		CreateActivity(ctx context.Context, a Activity) (Activity, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

// QueryAll returns the whole stream, most recent first.
func (svc *Service) QueryAll(ctx context.Context) ([]Activity, error) {
	activities, err := svc.repo.QueryAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	return SortRecent(activities, 0), nil
}

// Recent returns the most recent activities, newest first.
func (svc *Service) Recent(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	activities, err := svc.repo.QueryAllActivities(ctx)
	if err != nil {
		return nil, err
	}
	return SortRecent(activities, limit), nil
}

// ByUser returns one user's activities, newest first.
func (svc *Service) ByUser(ctx context.Context, userID int) ([]Activity, error) {
	activities, err := svc.repo.QueryActivitiesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return SortRecent(activities, 0), nil
}

// Record stores a new activity entry, resolving the acting user's display
// reference from the user store.
func (svc *Service) Record(ctx context.Context, na NewActivity) (Activity, error) {
	usr, err := svc.usrRepo.GetUserByID(ctx, na.UserID)
	if err != nil {
		return Activity{}, err
	}
	a := Activity{
		Type:         na.Type,
		User:         usr.Ref(),
		ContentTitle: na.ContentTitle,
		SpaceName:    na.SpaceName,
		CreatedAt:    time.Now().UTC(),
	}
	return svc.repo.CreateActivity(ctx, a)
}
