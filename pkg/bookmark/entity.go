package bookmark

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a bookmark does not exist or belongs to a
// different owner. The two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("bookmark not found")

// Bookmark is a saved link owned by a single account.
type Bookmark struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"-"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Repository is the persistence port for bookmarks. All reads and writes
// are scoped to the owner; implementations enforce ownership in the query
// itself so a foreign id behaves exactly like a missing one.
type Repository interface {
	Create(ctx context.Context, b Bookmark) error
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Bookmark, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Bookmark, error)
	UpdateForOwner(ctx context.Context, b Bookmark) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
}
