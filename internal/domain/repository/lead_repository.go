package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	// GetAggregate loads the lead with details, status history, communications
	// and tasks preloaded.
	GetAggregate(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	// Delete hard-deletes the lead; details, history, communications and
	// tasks go with it via the cascading foreign keys.
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns leads with details preloaded using page-based pagination
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Lead, int64, error)
	// ListWithCursor returns leads using cursor-based pagination
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Lead, error)
	// ListAll returns every lead with details preloaded, for the board view
	ListAll(ctx context.Context) ([]entity.Lead, error)
}

// LeadDetailsRepository defines the interface for lead qualification data.
// The data layer may historically hold duplicate rows per lead; GetByLeadID
// normalizes that to the newest single row so the ambiguity never reaches
// domain logic.
type LeadDetailsRepository interface {
	Create(ctx context.Context, details *entity.LeadDetails) error
	GetByLeadID(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error)
	Update(ctx context.Context, details *entity.LeadDetails) error
}

// StatusHistoryRepository defines the interface for the append-only status
// log. There is deliberately no Update or Delete: transitions only ever add.
type StatusHistoryRepository interface {
	Append(ctx context.Context, entry *entity.LeadStatusHistory) error
	// ListByLead returns a lead's history newest first (created_at, then seq)
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadStatusHistory, error)
	// Latest returns the newest entry for a lead, nil if the lead has none
	Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadStatusHistory, error)
	// LatestByLead returns the current status of every lead that has history
	LatestByLead(ctx context.Context) (map[uuid.UUID]enum.LeadStatus, error)
}
