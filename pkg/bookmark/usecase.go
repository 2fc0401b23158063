package bookmark

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UseCase encapsulates bookmark operations for a single authenticated owner.
type UseCase interface {
	Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (Bookmark, error)
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (Bookmark, error)
	List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Bookmark, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, in Update) (Bookmark, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type CreateInput struct {
	Title       string
	Link        string
	Description string
}

// Update is a partial edit; nil fields are left unchanged.
type Update struct {
	Title       *string
	Link        *string
	Description *string
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, in CreateInput) (Bookmark, error) {
	now := time.Now().UTC()
	b := Bookmark{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(in.Title),
		Link:        strings.TrimSpace(in.Link),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, ownerID, id uuid.UUID) (Bookmark, error) {
	return s.repo.GetByIDForOwner(ctx, ownerID, id)
}

func (s *service) List(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Bookmark, error) {
	return s.repo.ListByOwner(ctx, ownerID, limit, offset)
}

func (s *service) Update(ctx context.Context, ownerID, id uuid.UUID, in Update) (Bookmark, error) {
	b, err := s.repo.GetByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return Bookmark{}, err
	}
	if in.Title != nil {
		b.Title = strings.TrimSpace(*in.Title)
	}
	if in.Link != nil {
		b.Link = strings.TrimSpace(*in.Link)
	}
	if in.Description != nil {
		b.Description = *in.Description
	}
	b.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateForOwner(ctx, b); err != nil {
		return Bookmark{}, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteForOwner(ctx, ownerID, id)
}
