package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"

	"gorm.io/gorm"
)

type IdeaStore interface {
	Create(ctx context.Context, i *domain.Idea) error
	ByID(ctx context.Context, id string) (*domain.Idea, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Idea, error)
	SetStatus(ctx context.Context, id, status string) error
}

type IdeaSvc struct{ store IdeaStore }

func NewIdeaSvc(store IdeaStore) *IdeaSvc { return &IdeaSvc{store: store} }

func (s *IdeaSvc) Create(ctx context.Context, creatorID, title, problem, solution string) (*domain.Idea, error) {
	if creatorID == "" || title == "" {
		return nil, ErrMissingField
	}
	i := &domain.Idea{
		CreatorID: creatorID,
		Title:     title,
		Problem:   problem,
		Solution:  solution,
		Status:    domain.IdeaStatusOpen,
	}
	if err := s.store.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("create idea: %w", err)
	}
	return i, nil
}

func (s *IdeaSvc) Get(ctx context.Context, id string) (*domain.Idea, error) {
	if id == "" {
		return nil, ErrMissingField
	}
	i, err := s.store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("fetch idea: %w", err)
	}
	return i, nil
}

func (s *IdeaSvc) List(ctx context.Context, limit int) ([]domain.Idea, error) {
	return s.store.ListRecent(ctx, limit)
}
