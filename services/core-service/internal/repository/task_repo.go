package repository

import (
	"context"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

func (r *TaskRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Task{})
}

func (r *TaskRepo) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TaskRepo) ByID(ctx context.Context, id string) (*domain.Task, error) {
	var t domain.Task
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepo) ByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	var out []domain.Task
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).
		Order("position ASC, created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TaskRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Task, error) {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&domain.Task{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.ByID(ctx, id)
}
