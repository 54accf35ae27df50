package repository

import (
	"context"
	"errors"

	"github.com/franlead/franlead-api/internal/domain/entity"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"gorm.io/gorm"
)

type emailSettingsRepository struct {
	db *gorm.DB
}

// NewEmailSettingsRepository creates a new email settings repository
func NewEmailSettingsRepository(db *gorm.DB) domainRepo.EmailSettingsRepository {
	return &emailSettingsRepository{db: db}
}

func (r *emailSettingsRepository) Get(ctx context.Context) (*entity.EmailSettings, error) {
	var settings entity.EmailSettings
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *emailSettingsRepository) Save(ctx context.Context, settings *entity.EmailSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
