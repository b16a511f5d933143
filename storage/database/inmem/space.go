package inmemdb

import (
	"context"

	"github.com/juntaeschool/backend/core/space"
)

type spaceRepository struct {
	db *DB
}

var _ space.Repository = (*spaceRepository)(nil) // interface compliance check

func NewSpaceRepository(db *DB) space.Repository {
	return &spaceRepository{db: db}
}

func (repo *spaceRepository) QueryAllSpaces(ctx context.Context) ([]space.Space, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	spaces := make([]space.Space, len(repo.db.spaces))
	copy(spaces, repo.db.spaces)
	return spaces, nil
}

func (repo *spaceRepository) GetSpaceByID(ctx context.Context, id string) (space.Space, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, sp := range repo.db.spaces {
		if sp.ID == id {
			return sp, nil
		}
	}
	return space.Space{}, space.ErrNotFound
}

func (repo *spaceRepository) CreateSpace(ctx context.Context, sp space.Space) (space.Space, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	// display order goes after every existing space
	var max int
	for _, existing := range repo.db.spaces {
		if existing.SortOrder > max {
			max = existing.SortOrder
		}
	}
	sp.SortOrder = max + 1
	repo.db.spaces = append(repo.db.spaces, sp)
	return sp, nil
}

func (repo *spaceRepository) UpdateSpace(ctx context.Context, id string, us space.UpdateSpace) (space.Space, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, sp := range repo.db.spaces {
		if sp.ID == id {
			repo.db.spaces[i] = us.Merge(sp)
			return repo.db.spaces[i], nil
		}
	}
	return space.Space{}, space.ErrNotFound
}

func (repo *spaceRepository) DeleteSpace(ctx context.Context, id string) (space.Space, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, sp := range repo.db.spaces {
		if sp.ID == id {
			// no cascade: content referencing the space is kept
			repo.db.spaces = append(repo.db.spaces[:i], repo.db.spaces[i+1:]...)
			return sp, nil
		}
	}
	return space.Space{}, space.ErrNotFound
}
