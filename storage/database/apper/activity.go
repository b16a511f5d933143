package apperdb

import (
	"context"

	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/user"
)

const activityTable = "activities"

type activityRecord struct {
	ID           int       `json:"Id,omitempty"`
	Type         string    `json:"type"`
	User         user.Ref  `json:"user"`
	ContentTitle string    `json:"content_title,omitempty"`
	SpaceName    string    `json:"space_name,omitempty"`
	CreatedAt    apperTime `json:"created_at"`
}

var activityFields = []string{"Id", "type", "user", "content_title", "space_name", "created_at"}

func (r activityRecord) domain() activity.Activity {
	return activity.Activity{
		ID:           r.ID,
		Type:         activity.Type(r.Type),
		User:         r.User,
		ContentTitle: r.ContentTitle,
		SpaceName:    r.SpaceName,
		CreatedAt:    r.CreatedAt.Time,
	}
}

func newActivityRecord(a activity.Activity) activityRecord {
	return activityRecord{
		ID:           a.ID,
		Type:         string(a.Type),
		User:         a.User,
		ContentTitle: a.ContentTitle,
		SpaceName:    a.SpaceName,
		CreatedAt:    apperTime{a.CreatedAt},
	}
}

type activityRepository struct {
	c *Client
}

var _ activity.Repository = (*activityRepository)(nil) // interface compliance check

func NewActivityRepository(c *Client) activity.Repository {
	return &activityRepository{c: c}
}

func (repo *activityRepository) QueryAllActivities(ctx context.Context) ([]activity.Activity, error) {
	var records []activityRecord
	err := repo.c.fetchRecords(ctx, activityTable, fetchParams{
		Fields:  activityFields,
		OrderBy: []orderBy{{FieldName: "created_at", SortType: sortDesc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(activityTable, err)
		return []activity.Activity{}, nil
	}
	return activityRecordsToDomain(records), nil
}

func (repo *activityRepository) QueryActivitiesByUser(ctx context.Context, userID int) ([]activity.Activity, error) {
	var records []activityRecord
	err := repo.c.fetchRecords(ctx, activityTable, fetchParams{
		Fields:  activityFields,
		Where:   []whereClause{{FieldName: "user.user_id", Operator: "EqualTo", Values: []interface{}{userID}}},
		OrderBy: []orderBy{{FieldName: "created_at", SortType: sortDesc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(activityTable, err)
		return []activity.Activity{}, nil
	}
	return activityRecordsToDomain(records), nil
}

func (repo *activityRepository) CreateActivity(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	rec := newActivityRecord(a)
	rec.ID = 0 // identity is store-generated
	var stored activityRecord
	if err := repo.c.mutateRecords(ctx, activityTable, opCreate, rec, &stored); err != nil {
		return activity.Activity{}, err
	}
	if stored.ID == 0 {
		return rec.domain(), nil
	}
	return stored.domain(), nil
}

func activityRecordsToDomain(records []activityRecord) []activity.Activity {
	activities := make([]activity.Activity, 0, len(records))
	for _, r := range records {
		activities = append(activities, r.domain())
	}
	return activities
}
