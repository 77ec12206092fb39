package repository

import (
	"context"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdeaRepo struct{ db *gorm.DB }

func NewIdeaRepo(db *gorm.DB) *IdeaRepo {
	return &IdeaRepo{db: db}
}

func (r *IdeaRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Idea{})
}

func (r *IdeaRepo) Create(ctx context.Context, i *domain.Idea) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *IdeaRepo) ByID(ctx context.Context, id string) (*domain.Idea, error) {
	var i domain.Idea
	if err := r.db.WithContext(ctx).First(&i, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

// ListRecent returns the newest ideas, capped at limit.
func (r *IdeaRepo) ListRecent(ctx context.Context, limit int) ([]domain.Idea, error) {
	if limit <= 0 {
		limit = 20
	}
	var out []domain.Idea
	if err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *IdeaRepo) SetStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).Model(&domain.Idea{}).Where("id = ?", id).Update("status", status).Error
}
