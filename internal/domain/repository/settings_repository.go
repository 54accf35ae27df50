package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
)

// EmailSettingsRepository defines the interface for SMTP settings storage
type EmailSettingsRepository interface {
	// Get returns the active (newest) settings row, nil if none configured
	Get(ctx context.Context) (*entity.EmailSettings, error)
	// Save inserts or updates the settings row
	Save(ctx context.Context, settings *entity.EmailSettings) error
}
