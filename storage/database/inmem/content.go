package inmemdb

import (
	"context"

	"github.com/juntaeschool/backend/core/content"
	"github.com/juntaeschool/backend/core/space"
)

type contentRepository struct {
	db *DB
}

var _ content.Repository = (*contentRepository)(nil) // interface compliance check

func NewContentRepository(db *DB) content.Repository {
	return &contentRepository{db: db}
}

func (repo *contentRepository) query() []content.Content {
	items := make([]content.Content, len(repo.db.content))
	copy(items, repo.db.content)
	return items
}

func (repo *contentRepository) QueryAllContent(ctx context.Context) ([]content.Content, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()
	return repo.query(), nil
}

func (repo *contentRepository) GetContentByID(ctx context.Context, id int) (content.Content, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, item := range repo.db.content {
		if item.ID == id {
			return item, nil
		}
	}
	return content.Content{}, content.ErrNotFound
}

func (repo *contentRepository) QueryContentBySpace(ctx context.Context, spaceID string) ([]content.Content, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	// An unrecognized space, or one without a content-type mapping (home),
	// falls back to the full collection.
	var sp *space.Space
	for i := range repo.db.spaces {
		if repo.db.spaces[i].ID == spaceID {
			sp = &repo.db.spaces[i]
			break
		}
	}
	if sp == nil {
		return repo.query(), nil
	}
	ct, ok := sp.SpaceType.ContentType()
	if !ok {
		return repo.query(), nil
	}

	items := make([]content.Content, 0)
	for _, item := range repo.db.content {
		if item.Type == ct {
			items = append(items, item)
		}
	}
	return items, nil
}

func (repo *contentRepository) CreateContent(ctx context.Context, c content.Content) (content.Content, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	c.ID = repo.nextID()
	repo.db.content = append(repo.db.content, c)
	return c, nil
}

func (repo *contentRepository) UpdateContent(ctx context.Context, id int, uc content.UpdateContent) (content.Content, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, item := range repo.db.content {
		if item.ID == id {
			repo.db.content[i] = uc.Merge(item)
			return repo.db.content[i], nil
		}
	}
	return content.Content{}, content.ErrNotFound
}

func (repo *contentRepository) DeleteContent(ctx context.Context, id int) (content.Content, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, item := range repo.db.content {
		if item.ID == id {
			repo.db.content = append(repo.db.content[:i], repo.db.content[i+1:]...)
			return item, nil
		}
	}
	return content.Content{}, content.ErrNotFound
}

// nextID is one greater than the current maximum identity; caller must
// hold the write lock.
func (repo *contentRepository) nextID() int {
	var max int
	for _, item := range repo.db.content {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
