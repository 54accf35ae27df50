package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"gorm.io/gorm"
)

type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) domainRepo.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) CountLeads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Lead{}).Count(&count).Error
	return count, err
}

// CountLeadsByStage groups leads by their newest history entry. Leads with no
// history count toward new_contact, matching the entity-level default.
func (r *analyticsRepository) CountLeadsByStage(ctx context.Context) ([]domainRepo.StageCountResult, error) {
	var results []domainRepo.StageCountResult
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(h.status, 'new_contact') AS status, COUNT(*) AS count
		FROM leads l
		LEFT JOIN (
			SELECT DISTINCT ON (lead_id) lead_id, status
			FROM lead_status_history
			ORDER BY lead_id, created_at DESC, seq DESC
		) h ON h.lead_id = l.id
		GROUP BY COALESCE(h.status, 'new_contact')
	`).Scan(&results).Error
	return results, err
}

func (r *analyticsRepository) AverageScore(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(AVG(score), 0) FROM lead_details
	`).Scan(&avg).Error
	return avg, err
}

func (r *analyticsRepository) RecentLeads(ctx context.Context, limit int) ([]entity.Lead, error) {
	if limit <= 0 {
		limit = 5
	}
	var leads []entity.Lead
	err := r.db.WithContext(ctx).Preload("Details").
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	return leads, err
}
