package content

import (
	"context"
	"testing"
	"time"

	"github.com/volatiletech/null/v8"

	"github.com/juntaeschool/backend/core/user"
)

// fakeRepo is an in-test Repository; space scoping always returns a fixed
// subset so Feed's dispatch is observable.
type fakeRepo struct {
	items    []Content
	bySpace  []Content
	lastUsed string // "all" or "space"
}

var _ Repository = (*fakeRepo)(nil)

func (r *fakeRepo) QueryAllContent(ctx context.Context) ([]Content, error) {
	r.lastUsed = "all"
	return r.items, nil
}

func (r *fakeRepo) GetContentByID(ctx context.Context, id int) (Content, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return Content{}, ErrNotFound
}

func (r *fakeRepo) QueryContentBySpace(ctx context.Context, spaceID string) ([]Content, error) {
	r.lastUsed = "space"
	return r.bySpace, nil
}

func (r *fakeRepo) CreateContent(ctx context.Context, c Content) (Content, error) {
	c.ID = len(r.items) + 1
	r.items = append(r.items, c)
	return c, nil
}

func (r *fakeRepo) UpdateContent(ctx context.Context, id int, uc UpdateContent) (Content, error) {
	for i, item := range r.items {
		if item.ID == id {
			r.items[i] = uc.Merge(item)
			return r.items[i], nil
		}
	}
	return Content{}, ErrNotFound
}

func (r *fakeRepo) DeleteContent(ctx context.Context, id int) (Content, error) {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return item, nil
		}
	}
	return Content{}, ErrNotFound
}

func TestService_Create_defaults(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	author := user.Ref{UserID: 7, DisplayName: "김개발"}

	item, err := svc.Create(context.Background(), NewContent{
		Type:  TypePost,
		Title: "  첫 글  ",
		Tag:   " 질문 ",
	}, author)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if item.Title != "첫 글" {
		t.Errorf("Title = %q; want %q", item.Title, "첫 글")
	}
	if item.Tag != "질문" {
		t.Errorf("Tag = %q; want %q", item.Tag, "질문")
	}
	if item.IsPinned {
		t.Error("IsPinned = true; new items start unpinned")
	}
	if item.Likes != 0 || item.Comments != 0 {
		t.Errorf("counters = %d/%d; want 0/0", item.Likes, item.Comments)
	}
	if item.Author != author {
		t.Errorf("Author = %+v; want %+v", item.Author, author)
	}
	if item.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestService_Feed_dispatch(t *testing.T) {
	now := time.Now().UTC()
	repo := &fakeRepo{
		items:   []Content{{ID: 1, Type: TypePost, Title: "전체", CreatedAt: now}},
		bySpace: []Content{{ID: 2, Type: TypeLesson, Title: "강의", CreatedAt: now}},
	}
	svc := NewService(repo)
	ctx := context.Background()

	items, err := svc.Feed(ctx, "", TypeAll, "")
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	if repo.lastUsed != "all" || len(items) != 1 || items[0].ID != 1 {
		t.Errorf("Feed() without space = %v via %s; want item 1 via all", ids(items), repo.lastUsed)
	}

	items, err = svc.Feed(ctx, "space_courses", TypeAll, "")
	if err != nil {
		t.Fatalf("Feed() failed: %v", err)
	}
	if repo.lastUsed != "space" || len(items) != 1 || items[0].ID != 2 {
		t.Errorf("Feed() with space = %v via %s; want item 2 via space", ids(items), repo.lastUsed)
	}
}

func TestUpdateContent_Merge(t *testing.T) {
	item := Content{
		ID:        3,
		Type:      TypePost,
		Title:     "원래 제목",
		Body:      "본문",
		Likes:     4,
		CreatedAt: filterBase,
	}

	merged := UpdateContent{
		Title: null.StringFrom("새 제목"),
		Likes: null.IntFrom(5),
	}.Merge(item)

	if merged.Title != "새 제목" || merged.Likes != 5 {
		t.Errorf("Merge() = %q/%d; want %q/5", merged.Title, merged.Likes, "새 제목")
	}
	// untouched fields survive
	if merged.Body != "본문" || merged.Type != TypePost || !merged.CreatedAt.Equal(filterBase) {
		t.Errorf("Merge() clobbered untouched fields: %+v", merged)
	}
}
