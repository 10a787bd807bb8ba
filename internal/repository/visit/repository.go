package repository

import (
	"context"

	"github.com/aniladanir/qr-sms-service/internal/domain"
	"gorm.io/gorm"
)

type Repository interface {
	Record(ctx context.Context, visit *domain.DispatchVisit) error
	Stats(ctx context.Context) ([]domain.PlatformStats, error)
}

type repo struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) Repository {
	return &repo{db: db}
}

// Record stores a dispatch visit
func (r *repo) Record(ctx context.Context, visit *domain.DispatchVisit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

// Stats returns visit and recipient totals grouped by platform
func (r *repo) Stats(ctx context.Context) ([]domain.PlatformStats, error) {
	var stats []domain.PlatformStats
	err := r.db.WithContext(ctx).
		Model(&domain.DispatchVisit{}).
		Select("platform, COUNT(*) AS visits, COALESCE(SUM(recipients), 0) AS recipients").
		Group("platform").
		Order("platform").
		Scan(&stats).Error
	return stats, err
}
