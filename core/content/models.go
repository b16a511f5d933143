package content

import (
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/juntaeschool/backend/core/user"
)

// Type classifies a content item for filtering and card rendering.
type Type string

const (
	TypePost     Type = "post"
	TypeLesson   Type = "lesson"
	TypeEvent    Type = "event"
	TypeResource Type = "resource"
)

// TypeAll is the filter value that matches every content type.
const TypeAll = "all"

func (t Type) Valid() bool {
	switch t {
	case TypePost, TypeLesson, TypeEvent, TypeResource:
		return true
	}
	return false
}

type Content struct {
	ID          int        `json:"Id"`
	Type        Type       `json:"type"`
	Title       string     `json:"title"`
	Body        string     `json:"body,omitempty"`
	Description string     `json:"description,omitempty"`
	Tag         string     `json:"tag,omitempty"`
	IsPinned    bool       `json:"is_pinned"`
	Likes       int        `json:"likes"`
	Comments    int        `json:"comments"`
	Author      user.Ref   `json:"author"`
	SpaceID     string     `json:"space_id,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"` // event-typed content only
	CreatedAt   time.Time  `json:"created_at"`
}

// NewContent contains information needed to create a new Content item.
// Counters and the pinned flag are store defaults, not caller input.
type NewContent struct {
	Type        Type       `json:"type" validate:"required,oneof=post lesson event resource"`
	Title       string     `json:"title" validate:"required"`
	Body        string     `json:"body"`
	Description string     `json:"description"`
	Tag         string     `json:"tag"`
	SpaceID     string     `json:"space_id"`
	StartsAt    *time.Time `json:"starts_at"`
}

// UpdateContent defines what information may be provided to modify an
// existing Content item. Absent fields are left untouched; no field
// validation is applied beyond type coercion.
type UpdateContent struct {
	Type        null.String `json:"type"`
	Title       null.String `json:"title"`
	Body        null.String `json:"body"`
	Description null.String `json:"description"`
	Tag         null.String `json:"tag"`
	IsPinned    null.Bool   `json:"is_pinned"`
	Likes       null.Int    `json:"likes"`
	Comments    null.Int    `json:"comments"`
	SpaceID     null.String `json:"space_id"`
	StartsAt    *time.Time  `json:"starts_at"`
}

// Merge applies the provided fields onto c.
func (uc UpdateContent) Merge(c Content) Content {
	if uc.Type.Valid {
		c.Type = Type(uc.Type.String)
	}
	if uc.Title.Valid {
		c.Title = uc.Title.String
	}
	if uc.Body.Valid {
		c.Body = uc.Body.String
	}
	if uc.Description.Valid {
		c.Description = uc.Description.String
	}
	if uc.Tag.Valid {
		c.Tag = uc.Tag.String
	}
	if uc.IsPinned.Valid {
		c.IsPinned = uc.IsPinned.Bool
	}
	if uc.Likes.Valid {
		c.Likes = uc.Likes.Int
	}
	if uc.Comments.Valid {
		c.Comments = uc.Comments.Int
	}
	if uc.SpaceID.Valid {
		c.SpaceID = uc.SpaceID.String
	}
	if uc.StartsAt != nil {
		c.StartsAt = uc.StartsAt
	}
	return c
}
