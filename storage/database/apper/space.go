package apperdb

import (
	"context"

	"github.com/juntaeschool/backend/core/space"
)

const spaceTable = "spaces"

type spaceRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	SpaceType string `json:"space_type"`
	SortOrder int    `json:"sort_order"`
}

var spaceFields = []string{"id", "name", "icon", "space_type", "sort_order"}

func (r spaceRecord) domain() space.Space {
	return space.Space{
		ID:        r.ID,
		Name:      r.Name,
		Icon:      r.Icon,
		SpaceType: space.Type(r.SpaceType),
		SortOrder: r.SortOrder,
	}
}

func newSpaceRecord(s space.Space) spaceRecord {
	return spaceRecord{
		ID:        s.ID,
		Name:      s.Name,
		Icon:      s.Icon,
		SpaceType: string(s.SpaceType),
		SortOrder: s.SortOrder,
	}
}

func fetchSpaceByID(ctx context.Context, c *Client, id string) (spaceRecord, error) {
	var records []spaceRecord
	err := c.fetchRecords(ctx, spaceTable, fetchParams{
		Fields: spaceFields,
		Where:  []whereClause{{FieldName: "id", Operator: "EqualTo", Values: []interface{}{id}}},
	}, &records)
	if err != nil {
		return spaceRecord{}, err
	}
	if len(records) == 0 {
		return spaceRecord{}, space.ErrNotFound
	}
	return records[0], nil
}

type spaceRepository struct {
	c *Client
}

var _ space.Repository = (*spaceRepository)(nil) // interface compliance check

func NewSpaceRepository(c *Client) space.Repository {
	return &spaceRepository{c: c}
}

func (repo *spaceRepository) QueryAllSpaces(ctx context.Context) ([]space.Space, error) {
	var records []spaceRecord
	err := repo.c.fetchRecords(ctx, spaceTable, fetchParams{
		Fields:  spaceFields,
		OrderBy: []orderBy{{FieldName: "sort_order", SortType: sortAsc}},
	}, &records)
	if err != nil {
		repo.c.degradeList(spaceTable, err)
		return []space.Space{}, nil
	}
	spaces := make([]space.Space, 0, len(records))
	for _, r := range records {
		spaces = append(spaces, r.domain())
	}
	return spaces, nil
}

func (repo *spaceRepository) GetSpaceByID(ctx context.Context, id string) (space.Space, error) {
	rec, err := fetchSpaceByID(ctx, repo.c, id)
	if err != nil {
		return space.Space{}, err
	}
	return rec.domain(), nil
}

func (repo *spaceRepository) CreateSpace(ctx context.Context, s space.Space) (space.Space, error) {
	var stored spaceRecord
	if err := repo.c.mutateRecords(ctx, spaceTable, opCreate, newSpaceRecord(s), &stored); err != nil {
		return space.Space{}, err
	}
	if stored.ID == "" {
		return s, nil
	}
	return stored.domain(), nil
}

func (repo *spaceRepository) UpdateSpace(ctx context.Context, id string, us space.UpdateSpace) (space.Space, error) {
	existing, err := repo.GetSpaceByID(ctx, id)
	if err != nil {
		return space.Space{}, err
	}
	merged := us.Merge(existing)
	if err := repo.c.mutateRecords(ctx, spaceTable, opUpdate, newSpaceRecord(merged), nil); err != nil {
		return space.Space{}, err
	}
	return merged, nil
}

func (repo *spaceRepository) DeleteSpace(ctx context.Context, id string) (space.Space, error) {
	existing, err := repo.GetSpaceByID(ctx, id)
	if err != nil {
		return space.Space{}, err
	}
	if err := repo.c.deleteRecords(ctx, spaceTable, id); err != nil {
		return space.Space{}, err
	}
	return existing, nil
}
