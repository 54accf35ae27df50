package repository

import (
	"context"
	"errors"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type statusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository creates a new status history repository
func NewStatusHistoryRepository(db *gorm.DB) domainRepo.StatusHistoryRepository {
	return &statusHistoryRepository{db: db}
}

func (r *statusHistoryRepository) Append(ctx context.Context, record *entity.LeadStatusHistory) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *statusHistoryRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadStatusHistory, error) {
	var history []entity.LeadStatusHistory
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC, seq DESC").
		Find(&history).Error
	return history, err
}

func (r *statusHistoryRepository) Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadStatusHistory, error) {
	var record entity.LeadStatusHistory
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC, seq DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

// LatestByLead returns the current status of every lead in a single query.
// Leads without any history row are absent from the map.
func (r *statusHistoryRepository) LatestByLead(ctx context.Context) (map[uuid.UUID]enum.LeadStatus, error) {
	var rows []struct {
		LeadID uuid.UUID       `gorm:"column:lead_id"`
		Status enum.LeadStatus `gorm:"column:status"`
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (lead_id) lead_id, status
		FROM lead_status_history
		ORDER BY lead_id, created_at DESC, seq DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uuid.UUID]enum.LeadStatus, len(rows))
	for _, row := range rows {
		result[row.LeadID] = row.Status
	}
	return result, nil
}
