package service

import (
	"context"
	"log"
	"time"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
)

// LeadService handles lead-related operations
type LeadService struct {
	leadRepo    repository.LeadRepository
	detailsRepo repository.LeadDetailsRepository
	historyRepo repository.StatusHistoryRepository
}

// NewLeadService creates a new lead service
func NewLeadService(
	leadRepo repository.LeadRepository,
	detailsRepo repository.LeadDetailsRepository,
	historyRepo repository.StatusHistoryRepository,
) *LeadService {
	return &LeadService{
		leadRepo:    leadRepo,
		detailsRepo: detailsRepo,
		historyRepo: historyRepo,
	}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	FullName           string
	Email              string
	Phone              string
	Location           string
	PreviousExperience string
	InvestmentCapacity enum.InvestmentCapacity
	SourceChannel      enum.SourceChannel
	InterestLevel      int
	AdditionalComments string
	CreatedBy          *uuid.UUID
}

// CreateLead creates a lead with its qualification details and the initial
// new_contact history entry. The three writes are sequential and best-effort:
// if details or history fail the lead row stays, and the entity-level
// defaults keep it readable (no details, stage new_contact).
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	if input.InvestmentCapacity == "" {
		input.InvestmentCapacity = enum.InvestmentCapacityNo
	}
	if input.SourceChannel == "" {
		input.SourceChannel = enum.SourceChannelOther
	}
	if !input.InvestmentCapacity.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid investment capacity")
	}
	if !input.SourceChannel.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid source channel")
	}
	if input.InterestLevel < 1 || input.InterestLevel > 5 {
		return nil, apperror.NewBadRequestError("Interest level must be between 1 and 5")
	}

	lead := &entity.Lead{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Location: input.Location,
	}
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	details := &entity.LeadDetails{
		LeadID:             lead.ID,
		PreviousExperience: input.PreviousExperience,
		InvestmentCapacity: input.InvestmentCapacity,
		SourceChannel:      input.SourceChannel,
		InterestLevel:      input.InterestLevel,
		AdditionalComments: input.AdditionalComments,
	}
	details.RefreshScore()
	if err := s.detailsRepo.Create(ctx, details); err != nil {
		log.Printf("lead %s created without details: %v", lead.ID, err)
	} else {
		lead.Details = details
	}

	initial := &entity.LeadStatusHistory{
		LeadID:    lead.ID,
		Status:    enum.LeadStatusNewContact,
		CreatedBy: input.CreatedBy,
	}
	if err := s.historyRepo.Append(ctx, initial); err != nil {
		log.Printf("lead %s created without initial status entry: %v", lead.ID, err)
	} else {
		lead.StatusHistory = []entity.LeadStatusHistory{*initial}
	}

	return lead, nil
}

// GetLead retrieves a lead with its full aggregate
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetAggregate(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeads lists leads using page-based pagination
func (s *LeadService) ListLeads(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Lead], error) {
	leads, total, err := s.leadRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// ListLeadsWithCursor lists leads using cursor-based pagination
func (s *LeadService) ListLeadsWithCursor(ctx context.Context, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Lead], error) {
	leads, err := s.leadRepo.ListWithCursor(ctx, params, search)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(leads, params.Limit,
		func(l entity.Lead) string { return l.ID.String() },
		func(l entity.Lead) time.Time { return l.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateLeadInput represents the update lead input. Nil fields are left
// unchanged.
type UpdateLeadInput struct {
	ID                 uuid.UUID
	FullName           *string
	Email              *string
	Phone              *string
	Location           *string
	PreviousExperience *string
	InvestmentCapacity *enum.InvestmentCapacity
	SourceChannel      *enum.SourceChannel
	InterestLevel      *int
	AdditionalComments *string
}

// UpdateLead updates a lead's contact data and qualification details. Any
// change to a scoring input recomputes the stored score.
func (s *LeadService) UpdateLead(ctx context.Context, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.FullName != nil {
		lead.FullName = *input.FullName
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Location != nil {
		lead.Location = *input.Location
	}
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	touchesDetails := input.PreviousExperience != nil || input.InvestmentCapacity != nil ||
		input.SourceChannel != nil || input.InterestLevel != nil || input.AdditionalComments != nil
	if !touchesDetails {
		lead.Details, err = s.detailsRepo.GetByLeadID(ctx, lead.ID)
		return lead, err
	}

	details, err := s.detailsRepo.GetByLeadID(ctx, lead.ID)
	if err != nil {
		return nil, err
	}
	created := false
	if details == nil {
		// Leads imported or partially created may have no details row yet
		details = &entity.LeadDetails{
			LeadID:             lead.ID,
			InvestmentCapacity: enum.InvestmentCapacityNo,
			SourceChannel:      enum.SourceChannelOther,
			InterestLevel:      1,
		}
		created = true
	}

	if input.PreviousExperience != nil {
		details.PreviousExperience = *input.PreviousExperience
	}
	if input.InvestmentCapacity != nil {
		if !input.InvestmentCapacity.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid investment capacity")
		}
		details.InvestmentCapacity = *input.InvestmentCapacity
	}
	if input.SourceChannel != nil {
		if !input.SourceChannel.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid source channel")
		}
		details.SourceChannel = *input.SourceChannel
	}
	if input.InterestLevel != nil {
		if *input.InterestLevel < 1 || *input.InterestLevel > 5 {
			return nil, apperror.NewBadRequestError("Interest level must be between 1 and 5")
		}
		details.InterestLevel = *input.InterestLevel
	}
	if input.AdditionalComments != nil {
		details.AdditionalComments = *input.AdditionalComments
	}
	details.RefreshScore()

	if created {
		err = s.detailsRepo.Create(ctx, details)
	} else {
		err = s.detailsRepo.Update(ctx, details)
	}
	if err != nil {
		return nil, err
	}

	lead.Details = details
	return lead, nil
}

// DeleteLead permanently removes a lead and everything attached to it
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	return s.leadRepo.Delete(ctx, id)
}
