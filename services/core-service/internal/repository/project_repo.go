package repository

import (
	"context"

	"github.com/gh-aakash/BillionBrains/services/core-service/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepo struct{ db *gorm.DB }

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db: db}
}

func (r *ProjectRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Project{})
}

func (r *ProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProjectRepo) ByID(ctx context.Context, id string) (*domain.Project, error) {
	var p domain.Project
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepo) ByOwner(ctx context.Context, ownerID string) ([]domain.Project, error) {
	var out []domain.Project
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ProjectRepo) ListPublic(ctx context.Context, industry string) ([]domain.Project, error) {
	qb := r.db.WithContext(ctx).Where("is_public = ?", true)
	if industry != "" {
		qb = qb.Where("industry = ?", industry)
	}
	var out []domain.Project
	if err := qb.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateFields writes only the supplied columns, then re-reads so the
// caller sees storage state rather than its own delta.
func (r *ProjectRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.Project, error) {
	if len(fields) > 0 {
		if err := r.db.WithContext(ctx).Model(&domain.Project{}).Where("id = ?", id).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	return r.ByID(ctx, id)
}
