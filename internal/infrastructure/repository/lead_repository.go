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

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) GetAggregate(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC, seq DESC")
		}).
		Preload("Communications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("due_date ASC NULLS LAST")
		}).
		First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Omit("Details", "StatusHistory", "Communications", "Tasks").
		Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Hard delete. Details, history, communications and tasks are removed by
	// the cascading foreign keys; gorm soft delete is deliberately not used
	// on leads.
	return r.db.WithContext(ctx).Unscoped().Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Lead{})

	if search != "" {
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR location ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Preload("Details").
		Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&leads).Error

	return leads, total, err
}

// ListWithCursor returns leads using cursor-based pagination.
// Fetches limit+1 items to detect if there are more results.
func (r *leadRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Lead, error) {
	var leads []entity.Lead

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Lead{})

	if search != "" {
		query = query.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR location ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Preload("Details").
		Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&leads).Error

	return leads, err
}

func (r *leadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).Preload("Details").
		Order("created_at DESC").
		Find(&leads).Error
	return leads, err
}

type leadDetailsRepository struct {
	db *gorm.DB
}

// NewLeadDetailsRepository creates a new lead details repository
func NewLeadDetailsRepository(db *gorm.DB) domainRepo.LeadDetailsRepository {
	return &leadDetailsRepository{db: db}
}

func (r *leadDetailsRepository) Create(ctx context.Context, details *entity.LeadDetails) error {
	return r.db.WithContext(ctx).Create(details).Error
}

// GetByLeadID normalizes the historical one-to-many shape at the boundary:
// if duplicate detail rows exist for a lead, the newest one is the record.
func (r *leadDetailsRepository) GetByLeadID(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error) {
	var details entity.LeadDetails
	err := r.db.WithContext(ctx).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		First(&details).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &details, err
}

func (r *leadDetailsRepository) Update(ctx context.Context, details *entity.LeadDetails) error {
	return r.db.WithContext(ctx).Save(details).Error
}
