package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mkuznecov/bookmarkd/pkg/bookmark"
)

type BookmarkRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]bookmark.Bookmark
}

func NewBookmarkRepository() *BookmarkRepository {
	return &BookmarkRepository{items: make(map[uuid.UUID]bookmark.Bookmark)}
}

func (r *BookmarkRepository) Create(_ context.Context, b bookmark.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[b.ID] = b
	return nil
}

func (r *BookmarkRepository) GetByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (bookmark.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok || b.OwnerID != ownerID {
		return bookmark.Bookmark{}, bookmark.ErrNotFound
	}
	return b, nil
}

func (r *BookmarkRepository) ListByOwner(_ context.Context, ownerID uuid.UUID, limit, offset int) ([]bookmark.Bookmark, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []bookmark.Bookmark
	for _, b := range r.items {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *BookmarkRepository) UpdateForOwner(_ context.Context, b bookmark.Bookmark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev, ok := r.items[b.ID]
	if !ok || prev.OwnerID != b.OwnerID {
		return bookmark.ErrNotFound
	}
	r.items[b.ID] = b
	return nil
}

func (r *BookmarkRepository) DeleteForOwner(_ context.Context, ownerID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok || b.OwnerID != ownerID {
		return bookmark.ErrNotFound
	}
	delete(r.items, id)
	return nil
}
