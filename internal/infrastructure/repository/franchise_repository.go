package repository

import (
	"context"
	"errors"

	"github.com/franlead/franlead-api/internal/domain/entity"
	domainRepo "github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type franchiseRepository struct {
	db *gorm.DB
}

// NewFranchiseRepository creates a new franchise repository
func NewFranchiseRepository(db *gorm.DB) domainRepo.FranchiseRepository {
	return &franchiseRepository{db: db}
}

func (r *franchiseRepository) Create(ctx context.Context, franchise *entity.Franchise) error {
	return r.db.WithContext(ctx).Create(franchise).Error
}

func (r *franchiseRepository) CreateBatch(ctx context.Context, franchises []entity.Franchise) error {
	if len(franchises) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(franchises, 100).Error
}

func (r *franchiseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Franchise, error) {
	var franchise entity.Franchise
	err := r.db.WithContext(ctx).First(&franchise, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &franchise, err
}

func (r *franchiseRepository) Update(ctx context.Context, franchise *entity.Franchise) error {
	return r.db.WithContext(ctx).Save(franchise).Error
}

func (r *franchiseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Franchise{}, "id = ?", id).Error
}

func (r *franchiseRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Franchise, int64, error) {
	var franchises []entity.Franchise
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Franchise{})

	if search != "" {
		query = query.Where("name ILIKE ? OR city ILIKE ? OR province ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&franchises).Error

	return franchises, total, err
}
