package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/google/uuid"
)

// CommunicationRepository defines the interface for communication log entries
type CommunicationRepository interface {
	Create(ctx context.Context, comm *entity.Communication) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Communication, error)
	Update(ctx context.Context, comm *entity.Communication) error
	Delete(ctx context.Context, id uuid.UUID) error
	// ListByLead returns a lead's communications newest first
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Communication, error)
}

// TaskFilter narrows task listings
type TaskFilter struct {
	LeadID     *uuid.UUID
	AssignedTo *uuid.UUID
	Completed  *bool
}

// TaskRepository defines the interface for follow-up tasks
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error)
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns tasks matching the filter ordered by due date, earliest
	// first, tasks without a due date last
	List(ctx context.Context, filter *TaskFilter) ([]entity.Task, error)
	CountPending(ctx context.Context) (int64, error)
}
