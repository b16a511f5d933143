package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/juntaeschool/backend/core"
	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

// NewConfig returns a config suitable for tests, bypassing env loading.
func NewConfig() *core.Config {
	return &core.Config{
		AppName:       "준태스쿨",
		Env:           "TEST",
		TestMode:      true,
		CurrentUserID: 1,
	}
}

// Logger discards everything; it satisfies core.Logger for tests.
type Logger struct{}

var _ core.Logger = (*Logger)(nil)

func (Logger) Enable(bool)                  {}
func (Logger) Debug(string, ...interface{}) {}
func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
func (Logger) Fatal(string, ...interface{}) {}

func CreateUser(t *testing.T, repo user.Repository, name, email string, createdAt ...time.Time) user.User {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr, err := repo.CreateUser(context.Background(), user.User{
		DisplayName: name,
		Email:       email,
		Settings:    user.DefaultSettings(),
		CreatedAt:   tstamp,
	})
	if err != nil {
		t.Fatalf("CreateUser() failed: %v", err)
	}
	return usr
}

func CreateContent(
	t *testing.T,
	repo content.Repository,
	typ content.Type,
	title string,
	pinned bool,
	author user.Ref,
	createdAt ...time.Time,
) content.Content {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	item, err := repo.CreateContent(context.Background(), content.Content{
		Type:      typ,
		Title:     title,
		IsPinned:  pinned,
		Author:    author,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateContent() failed: %v", err)
	}
	return item
}

func CreateSpace(t *testing.T, repo space.Repository, id, name string, typ space.Type) space.Space {
	t.Helper()
	sp, err := repo.CreateSpace(context.Background(), space.Space{
		ID:        id,
		Name:      name,
		SpaceType: typ,
	})
	if err != nil {
		t.Fatalf("CreateSpace() failed: %v", err)
	}
	return sp
}

func CreateEvent(t *testing.T, repo event.Repository, title string, startsAt time.Time) event.Event {
	t.Helper()
	ev, err := repo.CreateEvent(context.Background(), event.Event{
		Title:    title,
		StartsAt: startsAt,
	})
	if err != nil {
		t.Fatalf("CreateEvent() failed: %v", err)
	}
	return ev
}

func CreateActivity(
	t *testing.T,
	repo activity.Repository,
	typ activity.Type,
	usr user.Ref,
	createdAt ...time.Time,
) activity.Activity {
	t.Helper()
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	a, err := repo.CreateActivity(context.Background(), activity.Activity{
		Type:      typ,
		User:      usr,
		CreatedAt: tstamp,
	})
	if err != nil {
		t.Fatalf("CreateActivity() failed: %v", err)
	}
	return a
}
