package inmemdb

import (
	"context"

	"github.com/juntaeschool/backend/core/activity"
)

type activityRepository struct {
	db *DB
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) QueryAllActivities(ctx context.Context) ([]activity.Activity, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	activities := make([]activity.Activity, len(repo.db.activities))
	copy(activities, repo.db.activities)
	return activities, nil
}

func (repo *activityRepository) QueryActivitiesByUser(ctx context.Context, userID int) ([]activity.Activity, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	activities := make([]activity.Activity, 0)
	for _, a := range repo.db.activities {
		if a.User.UserID == userID {
			activities = append(activities, a)
		}
	}
	return activities, nil
}

func (repo *activityRepository) CreateActivity(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var max int
	for _, existing := range repo.db.activities {
		if existing.ID > max {
			max = existing.ID
		}
	}
	a.ID = max + 1
	repo.db.activities = append(repo.db.activities, a)
	return a, nil
}
