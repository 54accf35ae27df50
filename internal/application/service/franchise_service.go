package service

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
)

// FranchiseService handles franchise location operations
type FranchiseService struct {
	franchiseRepo repository.FranchiseRepository
}

// NewFranchiseService creates a new franchise service
func NewFranchiseService(franchiseRepo repository.FranchiseRepository) *FranchiseService {
	return &FranchiseService{franchiseRepo: franchiseRepo}
}

// CreateFranchiseInput represents the create franchise input
type CreateFranchiseInput struct {
	Name          string
	Address       string
	City          string
	Province      string
	Phone         string
	Email         string
	ContactPerson string
	Website       *string
	TesisCode     *string
	CreatedBy     *uuid.UUID
}

// CreateFranchise creates a new franchise location
func (s *FranchiseService) CreateFranchise(ctx context.Context, input *CreateFranchiseInput) (*entity.Franchise, error) {
	franchise := &entity.Franchise{
		Name:          input.Name,
		Address:       input.Address,
		City:          input.City,
		Province:      input.Province,
		Phone:         input.Phone,
		Email:         input.Email,
		ContactPerson: input.ContactPerson,
		Website:       input.Website,
		TesisCode:     input.TesisCode,
		CreatedBy:     input.CreatedBy,
	}
	if err := s.franchiseRepo.Create(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// GetFranchise retrieves a franchise by ID
func (s *FranchiseService) GetFranchise(ctx context.Context, id uuid.UUID) (*entity.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, apperror.NewNotFoundError("Franchise")
	}
	return franchise, nil
}

// ListFranchises lists franchises with page-based pagination
func (s *FranchiseService) ListFranchises(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Franchise], error) {
	franchises, total, err := s.franchiseRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(franchises, pag), nil
}

// UpdateFranchiseInput represents the update franchise input
type UpdateFranchiseInput struct {
	ID            uuid.UUID
	Name          *string
	Address       *string
	City          *string
	Province      *string
	Phone         *string
	Email         *string
	ContactPerson *string
	Website       *string
	TesisCode     *string
}

// UpdateFranchise updates a franchise's fields
func (s *FranchiseService) UpdateFranchise(ctx context.Context, input *UpdateFranchiseInput) (*entity.Franchise, error) {
	franchise, err := s.franchiseRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if franchise == nil {
		return nil, apperror.NewNotFoundError("Franchise")
	}

	if input.Name != nil {
		franchise.Name = *input.Name
	}
	if input.Address != nil {
		franchise.Address = *input.Address
	}
	if input.City != nil {
		franchise.City = *input.City
	}
	if input.Province != nil {
		franchise.Province = *input.Province
	}
	if input.Phone != nil {
		franchise.Phone = *input.Phone
	}
	if input.Email != nil {
		franchise.Email = *input.Email
	}
	if input.ContactPerson != nil {
		franchise.ContactPerson = *input.ContactPerson
	}
	if input.Website != nil {
		franchise.Website = input.Website
	}
	if input.TesisCode != nil {
		franchise.TesisCode = input.TesisCode
	}

	if err := s.franchiseRepo.Update(ctx, franchise); err != nil {
		return nil, err
	}
	return franchise, nil
}

// DeleteFranchise removes a franchise location
func (s *FranchiseService) DeleteFranchise(ctx context.Context, id uuid.UUID) error {
	franchise, err := s.franchiseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if franchise == nil {
		return apperror.NewNotFoundError("Franchise")
	}
	return s.franchiseRepo.Delete(ctx, id)
}
