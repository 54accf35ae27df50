package repository

import (
	"context"
	"errors"

	"github.com/franlead/franlead-api/internal/domain/entity"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type communicationRepository struct {
	db *gorm.DB
}

// NewCommunicationRepository creates a new communication repository
func NewCommunicationRepository(db *gorm.DB) domainRepo.CommunicationRepository {
	return &communicationRepository{db: db}
}

func (r *communicationRepository) Create(ctx context.Context, communication *entity.Communication) error {
	return r.db.WithContext(ctx).Create(communication).Error
}

func (r *communicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Communication, error) {
	var communication entity.Communication
	err := r.db.WithContext(ctx).First(&communication, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &communication, err
}

func (r *communicationRepository) Update(ctx context.Context, communication *entity.Communication) error {
	return r.db.WithContext(ctx).Save(communication).Error
}

func (r *communicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Communication{}, "id = ?", id).Error
}

func (r *communicationRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Communication, error) {
	var communications []entity.Communication
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&communications).Error
	return communications, err
}
