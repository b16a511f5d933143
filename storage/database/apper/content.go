package apperdb

import (
	"context"

	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/space"
	"github.com/juntaeschool/backend/core/user"
)

const contentTable = "content"

type contentRecord struct {
	ID          int        `json:"Id,omitempty"`
	Type        string     `json:"type"`
	Title       string     `json:"title"`
	Body        string     `json:"body,omitempty"`
	Description string     `json:"description,omitempty"`
	Tag         string     `json:"tag,omitempty"`
	IsPinned    bool       `json:"is_pinned"`
	Likes       int        `json:"likes"`
	Comments    int        `json:"comments"`
	Author      user.Ref   `json:"author"`
	SpaceID     string     `json:"space_id,omitempty"`
	StartsAt    *apperTime `json:"starts_at,omitempty"`
	CreatedAt   apperTime  `json:"created_at"`
}

var contentFields = []string{
	"Id", "type", "title", "body", "description", "tag",
	"is_pinned", "likes", "comments", "author", "space_id", "starts_at", "created_at",
}

func (r contentRecord) domain() content.Content {
	c := content.Content{
		ID:          r.ID,
		Type:        content.Type(r.Type),
		Title:       r.Title,
		Body:        r.Body,
		Description: r.Description,
		Tag:         r.Tag,
		IsPinned:    r.IsPinned,
		Likes:       r.Likes,
		Comments:    r.Comments,
		Author:      r.Author,
		SpaceID:     r.SpaceID,
		CreatedAt:   r.CreatedAt.Time,
	}
	if r.StartsAt != nil && !r.StartsAt.IsZero() {
		t := r.StartsAt.Time
		c.StartsAt = &t
	}
	return c
}

func newContentRecord(c content.Content) contentRecord {
	r := contentRecord{
		ID:          c.ID,
		Type:        string(c.Type),
		Title:       c.Title,
		Body:        c.Body,
		Description: c.Description,
		Tag:         c.Tag,
		IsPinned:    c.IsPinned,
		Likes:       c.Likes,
		Comments:    c.Comments,
		Author:      c.Author,
		SpaceID:     c.SpaceID,
		CreatedAt:   apperTime{c.CreatedAt},
	}
	if c.StartsAt != nil {
		r.StartsAt = &apperTime{*c.StartsAt}
	}
	return r
}

type contentRepository struct {
	c *Client
}

var _ content.Repository = (*contentRepository)(nil) // interface compliance check

func NewContentRepository(c *Client) content.Repository {
	return &contentRepository{c: c}
}

func (repo *contentRepository) QueryAllContent(ctx context.Context) ([]content.Content, error) {
	var records []contentRecord
	err := repo.c.fetchRecords(ctx, contentTable, fetchParams{
		Fields:  contentFields,
		OrderBy: []orderBy{{FieldName: "created_at", SortType: sortDesc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(contentTable, err)
		return []content.Content{}, nil
	}
	return contentRecordsToDomain(records), nil
}

func (repo *contentRepository) GetContentByID(ctx context.Context, id int) (content.Content, error) {
	var records []contentRecord
	err := repo.c.fetchRecords(ctx, contentTable, fetchParams{
		Fields: contentFields,
		Where:  []whereClause{{FieldName: "Id", Operator: "EqualTo", Values: []interface{}{id}}},
	}, &records)
	if err != nil {
		return content.Content{}, err
	}
	if len(records) == 0 {
		return content.Content{}, content.ErrNotFound
	}
	return records[0].domain(), nil
}

func (repo *contentRepository) QueryContentBySpace(ctx context.Context, spaceID string) ([]content.Content, error) {
	// Resolve the space's hosted content type. An unrecognized space, or
	// one without a mapping (home), falls back to the full collection.
	params := fetchParams{
		Fields:  contentFields,
		OrderBy: []orderBy{{FieldName: "created_at", SortType: sortDesc}},
	}
	if sp, err := fetchSpaceByID(ctx, repo.c, spaceID); err == nil {
		if ct, ok := space.Type(sp.SpaceType).ContentType(); ok {
			params.Where = []whereClause{{
				FieldName: "type", Operator: "EqualTo", Values: []interface{}{string(ct)},
			}}
		}
	}

	var records []contentRecord
	if err := repo.c.fetchRecords(ctx, contentTable, params, &records); err != nil {
		repo.c.degradeList(contentTable, err)
		return []content.Content{}, nil
	}
	return contentRecordsToDomain(records), nil
}

func (repo *contentRepository) CreateContent(ctx context.Context, c content.Content) (content.Content, error) {
	rec := newContentRecord(c)
	rec.ID = 0 // identity is store-generated
	var stored contentRecord
	if err := repo.c.mutateRecords(ctx, contentTable, opCreate, rec, &stored); err != nil {
		return content.Content{}, err
	}
	if stored.ID == 0 {
		return rec.domain(), nil
	}
	return stored.domain(), nil
}

func (repo *contentRepository) UpdateContent(ctx context.Context, id int, uc content.UpdateContent) (content.Content, error) {
	existing, err := repo.GetContentByID(ctx, id)
	if err != nil {
		return content.Content{}, err
	}
	merged := uc.Merge(existing)
	if err := repo.c.mutateRecords(ctx, contentTable, opUpdate, newContentRecord(merged), nil); err != nil {
		return content.Content{}, err
	}
	return merged, nil
}

func (repo *contentRepository) DeleteContent(ctx context.Context, id int) (content.Content, error) {
	existing, err := repo.GetContentByID(ctx, id)
	if err != nil {
		return content.Content{}, err
	}
	if err := repo.c.deleteRecords(ctx, contentTable, id); err != nil {
		return content.Content{}, err
	}
	return existing, nil
}

func contentRecordsToDomain(records []contentRecord) []content.Content {
	items := make([]content.Content, 0, len(records))
	for _, r := range records {
		items = append(items, r.domain())
	}
	return items
}
