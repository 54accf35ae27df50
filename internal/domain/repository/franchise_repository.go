package repository

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
)

// FranchiseRepository defines the interface for franchise data operations
type FranchiseRepository interface {
	Create(ctx context.Context, franchise *entity.Franchise) error
	CreateBatch(ctx context.Context, franchises []entity.Franchise) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Franchise, error)
	Update(ctx context.Context, franchise *entity.Franchise) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Franchise, int64, error)
}
