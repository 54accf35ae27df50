package service

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/google/uuid"
)

// PipelineService handles pipeline stage transitions and board views
type PipelineService struct {
	leadRepo    repository.LeadRepository
	historyRepo repository.StatusHistoryRepository
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(leadRepo repository.LeadRepository, historyRepo repository.StatusHistoryRepository) *PipelineService {
	return &PipelineService{leadRepo: leadRepo, historyRepo: historyRepo}
}

// ChangeStatusInput represents a stage transition request
type ChangeStatusInput struct {
	LeadID    uuid.UUID
	Status    enum.LeadStatus
	Notes     string
	CreatedBy *uuid.UUID
}

// ChangeStatus appends a transition to the lead's history. Any stage can move
// to any other stage, including back; re-appending the current stage is
// allowed and recorded.
func (s *PipelineService) ChangeStatus(ctx context.Context, input *ChangeStatusInput) (*entity.LeadStatusHistory, error) {
	if !input.Status.IsValid() {
		return nil, apperror.ErrInvalidStatus
	}

	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	entry := &entity.LeadStatusHistory{
		LeadID:    input.LeadID,
		Status:    input.Status,
		Notes:     input.Notes,
		CreatedBy: input.CreatedBy,
	}
	if err := s.historyRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// CurrentStatus returns the lead's current pipeline stage
func (s *PipelineService) CurrentStatus(ctx context.Context, leadID uuid.UUID) (enum.LeadStatus, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return "", err
	}
	if lead == nil {
		return "", apperror.NewNotFoundError("Lead")
	}

	latest, err := s.historyRepo.Latest(ctx, leadID)
	if err != nil {
		return "", err
	}
	if latest == nil {
		return enum.LeadStatusNewContact, nil
	}
	return latest.Status, nil
}

// History returns the lead's full transition log, newest first
func (s *PipelineService) History(ctx context.Context, leadID uuid.UUID) ([]entity.LeadStatusHistory, error) {
	lead, err := s.leadRepo.GetByID(ctx, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return s.historyRepo.ListByLead(ctx, leadID)
}

// BoardColumn is one column of the kanban board
type BoardColumn struct {
	Status enum.LeadStatus `json:"status"`
	Label  string          `json:"label"`
	Leads  []entity.Lead   `json:"leads"`
}

// Board groups every lead under its current stage. Rejected leads are not a
// board column; they only show up in filtered listings.
func (s *PipelineService) Board(ctx context.Context) ([]BoardColumn, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.historyRepo.LatestByLead(ctx)
	if err != nil {
		return nil, err
	}

	stages := enum.PipelineStages()
	columns := make([]BoardColumn, len(stages))
	index := make(map[enum.LeadStatus]int, len(stages))
	for i, stage := range stages {
		columns[i] = BoardColumn{Status: stage, Label: stage.Label(), Leads: []entity.Lead{}}
		index[stage] = i
	}

	for _, lead := range leads {
		status, ok := current[lead.ID]
		if !ok {
			status = enum.LeadStatusNewContact
		}
		if i, onBoard := index[status]; onBoard {
			columns[i].Leads = append(columns[i].Leads, lead)
		}
	}

	return columns, nil
}
