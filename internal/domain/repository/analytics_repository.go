package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
)

// StageCountResult represents the number of leads currently in a stage
type StageCountResult struct {
	Status enum.LeadStatus
	Count  int64
}

// AnalyticsRepository defines the interface for dashboard aggregation queries
type AnalyticsRepository interface {
	// CountLeads returns the total number of leads
	CountLeads(ctx context.Context) (int64, error)

	// CountLeadsByStage returns lead counts grouped by current status,
	// where current status is the newest history entry per lead
	CountLeadsByStage(ctx context.Context) ([]StageCountResult, error)

	// AverageScore returns the mean lead score across all lead details
	AverageScore(ctx context.Context) (float64, error)

	// RecentLeads returns the most recently created leads with details
	RecentLeads(ctx context.Context, limit int) ([]entity.Lead, error)
}
