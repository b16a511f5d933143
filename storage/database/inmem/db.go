// Package inmemdb implements the repository interfaces over seeded
// in-process collections. Tables are ordered slices so insertion order is
// preserved (display tie-breaks depend on it); a single RWMutex serializes
// writers. Nothing persists across process restarts.
package inmemdb

import (
	"sync"

	"github.com/juntaeschool/backend/core/activity"
	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/event"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

type DB struct {
	mu sync.RWMutex

	content    []content.Content
	spaces     []space.Space
	events     []event.Event
	users      []user.User
	activities []activity.Activity
}

// Open returns an empty database.
func Open() (*DB, error) {
	return &DB{}, nil
}

// OpenSeeded returns a database loaded with the community fixtures.
func OpenSeeded() (*DB, error) {
	db := &DB{}
	seed(db)
	return db, nil
}
