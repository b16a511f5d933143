package event

import (
	"sort"
	"time"

	"github.com/volatiletech/null/v8"
)

type Event struct {
	ID           int       `json:"Id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	StartsAt     time.Time `json:"starts_at"`
	Participants int       `json:"participants"`
	SpaceID      string    `json:"space_id,omitempty"`
}

// NewEvent contains information needed to create a new Event. The
// participants counter is a store default.
type NewEvent struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	SpaceID     string    `json:"space_id"`
}

// UpdateEvent defines what information may be provided to modify an
// existing Event. Absent fields are left untouched.
type UpdateEvent struct {
	Title        null.String `json:"title"`
	Description  null.String `json:"description"`
	StartsAt     *time.Time  `json:"starts_at"`
	Participants null.Int    `json:"participants"`
	SpaceID      null.String `json:"space_id"`
}

// Merge applies the provided fields onto ev.
func (ue UpdateEvent) Merge(ev Event) Event {
	if ue.Title.Valid {
		ev.Title = ue.Title.String
	}
	if ue.Description.Valid {
		ev.Description = ue.Description.String
	}
	if ue.StartsAt != nil {
		ev.StartsAt = *ue.StartsAt
	}
	if ue.Participants.Valid {
		ev.Participants = ue.Participants.Int
	}
	if ue.SpaceID.Valid {
		ev.SpaceID = ue.SpaceID.String
	}
	return ev
}

// SelectUpcoming keeps events starting strictly after now, nearest first,
// truncated to limit. Now is read once by the caller so the cutoff is
// consistent across the whole scan.
func SelectUpcoming(events []Event, now time.Time, limit int) []Event {
	out := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.StartsAt.After(now) {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
