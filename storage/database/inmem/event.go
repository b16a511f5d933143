package inmemdb

import (
	"context"

	"github.com/juntaeschool/backend/core/event"
)

type eventRepository struct {
	db *DB
}

var _ event.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(db *DB) event.Repository {
	return &eventRepository{db: db}
}

func (repo *eventRepository) QueryAllEvents(ctx context.Context) ([]event.Event, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	events := make([]event.Event, len(repo.db.events))
	copy(events, repo.db.events)
	return events, nil
}

func (repo *eventRepository) GetEventByID(ctx context.Context, id int) (event.Event, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, ev := range repo.db.events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return event.Event{}, event.ErrNotFound
}

func (repo *eventRepository) CreateEvent(ctx context.Context, ev event.Event) (event.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	var max int
	for _, existing := range repo.db.events {
		if existing.ID > max {
			max = existing.ID
		}
	}
	ev.ID = max + 1
	repo.db.events = append(repo.db.events, ev)
	return ev, nil
}

func (repo *eventRepository) UpdateEvent(ctx context.Context, id int, ue event.UpdateEvent) (event.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, ev := range repo.db.events {
		if ev.ID == id {
			repo.db.events[i] = ue.Merge(ev)
			return repo.db.events[i], nil
		}
	}
	return event.Event{}, event.ErrNotFound
}

func (repo *eventRepository) DeleteEvent(ctx context.Context, id int) (event.Event, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, ev := range repo.db.events {
		if ev.ID == id {
			repo.db.events = append(repo.db.events[:i], repo.db.events[i+1:]...)
			return ev, nil
		}
	}
	return event.Event{}, event.ErrNotFound
}
