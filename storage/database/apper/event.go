package apperdb

import (
	"context"

	"github.com/juntaeschool/backend/core/event"
)

const eventTable = "events"

type eventRecord struct {
	ID           int       `json:"Id,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	StartsAt     apperTime `json:"starts_at"`
	Participants int       `json:"participants"`
	SpaceID      string    `json:"space_id,omitempty"`
}

var eventFields = []string{"Id", "title", "description", "starts_at", "participants", "space_id"}

func (r eventRecord) domain() event.Event {
	return event.Event{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		StartsAt:     r.StartsAt.Time,
		Participants: r.Participants,
		SpaceID:      r.SpaceID,
	}
}

func newEventRecord(ev event.Event) eventRecord {
	return eventRecord{
		ID:           ev.ID,
		Title:        ev.Title,
		Description:  ev.Description,
		StartsAt:     apperTime{ev.StartsAt},
		Participants: ev.Participants,
		SpaceID:      ev.SpaceID,
	}
}

type eventRepository struct {
	c *Client
}

var _ event.Repository = (*eventRepository)(nil) // interface compliance check

func NewEventRepository(c *Client) event.Repository {
	return &eventRepository{c: c}
}

func (repo *eventRepository) QueryAllEvents(ctx context.Context) ([]event.Event, error) {
	var records []eventRecord
	err := repo.c.fetchRecords(ctx, eventTable, fetchParams{
		Fields:  eventFields,
		OrderBy: []orderBy{{FieldName: "starts_at", SortType: sortAsc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(eventTable, err)
		return []event.Event{}, nil
	}
	events := make([]event.Event, 0, len(records))
	for _, r := range records {
		events = append(events, r.domain())
	}
	return events, nil
}

func (repo *eventRepository) GetEventByID(ctx context.Context, id int) (event.Event, error) {
	var records []eventRecord
	err := repo.c.fetchRecords(ctx, eventTable, fetchParams{
		Fields: eventFields,
		Where:  []whereClause{{FieldName: "Id", Operator: "EqualTo", Values: []interface{}{id}}},
	}, &records)
	if err != nil {
		return event.Event{}, err
	}
	if len(records) == 0 {
		return event.Event{}, event.ErrNotFound
	}
	return records[0].domain(), nil
}

func (repo *eventRepository) CreateEvent(ctx context.Context, ev event.Event) (event.Event, error) {
	rec := newEventRecord(ev)
	rec.ID = 0 // identity is store-generated
	var stored eventRecord
	if err := repo.c.mutateRecords(ctx, eventTable, opCreate, rec, &stored); err != nil {
		return event.Event{}, err
	}
	if stored.ID == 0 {
		return rec.domain(), nil
	}
	return stored.domain(), nil
}

func (repo *eventRepository) UpdateEvent(ctx context.Context, id int, ue event.UpdateEvent) (event.Event, error) {
	existing, err := repo.GetEventByID(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	merged := ue.Merge(existing)
	if err := repo.c.mutateRecords(ctx, eventTable, opUpdate, newEventRecord(merged), nil); err != nil {
		return event.Event{}, err
	}
	return merged, nil
}

func (repo *eventRepository) DeleteEvent(ctx context.Context, id int) (event.Event, error) {
	existing, err := repo.GetEventByID(ctx, id)
	if err != nil {
		return event.Event{}, err
	}
	if err := repo.c.deleteRecords(ctx, eventTable, id); err != nil {
		return event.Event{}, err
	}
	return existing, nil
}
