package apperdb

import (
	"context"

	"github.com/juntaeschool/backend/core/user"
)

const userTable = "users"

type userRecord struct {
	ID           int            `json:"user_id,omitempty"`
	DisplayName  string         `json:"display_name"`
	Email        string         `json:"email"`
	PhotoURL     string         `json:"photo_url,omitempty"`
	Bio          string         `json:"bio,omitempty"`
	ExpertiseTag string         `json:"expertise_tag,omitempty"`
	Settings     *user.Settings `json:"settings,omitempty"`
	CreatedAt    apperTime      `json:"created_at"`
}

var userFields = []string{
	"user_id", "display_name", "email", "photo_url", "bio", "expertise_tag", "settings", "created_at",
}

func (r userRecord) domain() user.User {
	usr := user.User{
		ID:           r.ID,
		DisplayName:  r.DisplayName,
		Email:        r.Email,
		PhotoURL:     r.PhotoURL,
		Bio:          r.Bio,
		ExpertiseTag: r.ExpertiseTag,
		CreatedAt:    r.CreatedAt.Time,
	}
	if r.Settings != nil {
		usr.Settings = *r.Settings
	} else {
		usr.Settings = user.DefaultSettings()
	}
	return usr
}

func newUserRecord(usr user.User) userRecord {
	settings := usr.Settings
	return userRecord{
		ID:           usr.ID,
		DisplayName:  usr.DisplayName,
		Email:        usr.Email,
		PhotoURL:     usr.PhotoURL,
		Bio:          usr.Bio,
		ExpertiseTag: usr.ExpertiseTag,
		Settings:     &settings,
		CreatedAt:    apperTime{usr.CreatedAt},
	}
}

type userRepository struct {
	c *Client
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(c *Client) user.Repository {
	return &userRepository{c: c}
}

func (repo *userRepository) QueryAllUsers(ctx context.Context) ([]user.User, error) {
	var records []userRecord
	err := repo.c.fetchRecords(ctx, userTable, fetchParams{
		Fields:  userFields,
		OrderBy: []orderBy{{FieldName: "user_id", SortType: sortAsc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(userTable, err)
		return []user.User{}, nil
	}
	users := make([]user.User, 0, len(records))
	for _, r := range records {
		users = append(users, r.domain())
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(ctx context.Context, id int) (user.User, error) {
	var records []userRecord
	err := repo.c.fetchRecords(ctx, userTable, fetchParams{
		Fields: userFields,
		Where:  []whereClause{{FieldName: "user_id", Operator: "EqualTo", Values: []interface{}{id}}},
	}, &records)
	if err != nil {
		return user.User{}, err
	}
	if len(records) == 0 {
		return user.User{}, user.ErrNotFound
	}
	return records[0].domain(), nil
}

func (repo *userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	rec := newUserRecord(usr)
	rec.ID = 0 // identity is store-generated
	var stored userRecord
	if err := repo.c.mutateRecords(ctx, userTable, opCreate, rec, &stored); err != nil {
		return user.User{}, err
	}
	if stored.ID == 0 {
		return rec.domain(), nil
	}
	return stored.domain(), nil
}

func (repo *userRepository) UpdateUser(ctx context.Context, id int, uu user.UpdateUser) (user.User, error) {
	existing, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	merged := uu.Merge(existing)
	if err := repo.c.mutateRecords(ctx, userTable, opUpdate, newUserRecord(merged), nil); err != nil {
		return user.User{}, err
	}
	return merged, nil
}

func (repo *userRepository) DeleteUser(ctx context.Context, id int) (user.User, error) {
	existing, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if err := repo.c.deleteRecords(ctx, userTable, id); err != nil {
		return user.User{}, err
	}
	return existing, nil
}
