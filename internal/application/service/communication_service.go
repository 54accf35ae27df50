package service

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/google/uuid"
)

// CommunicationService handles the per-lead interaction log
type CommunicationService struct {
	commRepo repository.CommunicationRepository
	leadRepo repository.LeadRepository
}

// NewCommunicationService creates a new communication service
func NewCommunicationService(commRepo repository.CommunicationRepository, leadRepo repository.LeadRepository) *CommunicationService {
	return &CommunicationService{commRepo: commRepo, leadRepo: leadRepo}
}

// CreateCommunicationInput represents the create communication input
type CreateCommunicationInput struct {
	LeadID    uuid.UUID
	Type      enum.CommunicationType
	Content   string
	CreatedBy *uuid.UUID
}

// CreateCommunication records an interaction with a lead
func (s *CommunicationService) CreateCommunication(ctx context.Context, input *CreateCommunicationInput) (*entity.Communication, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.Type == "" {
		input.Type = enum.CommunicationTypeOther
	}
	if !input.Type.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid communication type")
	}

	comm := &entity.Communication{
		LeadID:    input.LeadID,
		Type:      input.Type,
		Content:   input.Content,
		CreatedBy: input.CreatedBy,
	}
	if err := s.commRepo.Create(ctx, comm); err != nil {
		return nil, err
	}
	return comm, nil
}

// UpdateCommunicationInput represents the update communication input
type UpdateCommunicationInput struct {
	ID      uuid.UUID
	Type    *enum.CommunicationType
	Content *string
}

// UpdateCommunication edits a logged interaction. Unlike status history,
// communications are ordinary mutable records.
func (s *CommunicationService) UpdateCommunication(ctx context.Context, input *UpdateCommunicationInput) (*entity.Communication, error) {
	comm, err := s.commRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if comm == nil {
		return nil, apperror.NewNotFoundError("Communication")
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid communication type")
		}
		comm.Type = *input.Type
	}
	if input.Content != nil {
		comm.Content = *input.Content
	}

	if err := s.commRepo.Update(ctx, comm); err != nil {
		return nil, err
	}
	return comm, nil
}

// DeleteCommunication removes a logged interaction
func (s *CommunicationService) DeleteCommunication(ctx context.Context, id uuid.UUID) error {
	comm, err := s.commRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comm == nil {
		return apperror.NewNotFoundError("Communication")
	}
	return s.commRepo.Delete(ctx, id)
}

// ListByLead lists a lead's communications newest first
func (s *CommunicationService) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Communication, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return s.commRepo.ListByLead(ctx, leadID)
}
