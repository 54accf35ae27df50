package service

import (
	"context"
	"testing"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestChangeStatusAppends(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	leadID := uuid.New()
	userID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID}, nil)
	historyRepo.On("Append", ctx, mock.AnythingOfType("*entity.LeadStatusHistory")).Return(nil)

	entry, err := svc.ChangeStatus(ctx, &ChangeStatusInput{
		LeadID:    leadID,
		Status:    enum.LeadStatusNegotiation,
		Notes:     "llamada positiva",
		CreatedBy: &userID,
	})

	assert.NoError(t, err)
	assert.Equal(t, enum.LeadStatusNegotiation, entry.Status)
	assert.Equal(t, "llamada positiva", entry.Notes)
	historyRepo.AssertCalled(t, "Append", ctx, mock.AnythingOfType("*entity.LeadStatusHistory"))
}

func TestChangeStatusRejectsUnknownStage(t *testing.T) {
	ctx := context.Background()
	svc := NewPipelineService(new(MockLeadRepository), new(MockStatusHistoryRepository))

	_, err := svc.ChangeStatus(ctx, &ChangeStatusInput{
		LeadID: uuid.New(),
		Status: enum.LeadStatus("closed_won"),
	})

	assert.ErrorIs(t, err, apperror.ErrInvalidStatus)
}

func TestChangeStatusLeadNotFound(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(nil, nil)

	_, err := svc.ChangeStatus(ctx, &ChangeStatusInput{
		LeadID: leadID,
		Status: enum.LeadStatusRejected,
	})

	assert.Error(t, err)
	historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestChangeStatusAllowsRepeatingCurrentStage(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID}, nil)
	historyRepo.On("Append", ctx, mock.Anything).Return(nil)

	// Re-appending the stage the lead is already in is recorded, not rejected
	_, err := svc.ChangeStatus(ctx, &ChangeStatusInput{LeadID: leadID, Status: enum.LeadStatusNewContact})
	assert.NoError(t, err)
}

func TestCurrentStatusDefaultsToNewContact(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID}, nil)
	historyRepo.On("Latest", ctx, leadID).Return(nil, nil)

	status, err := svc.CurrentStatus(ctx, leadID)
	assert.NoError(t, err)
	assert.Equal(t, enum.LeadStatusNewContact, status)
}

func TestCurrentStatusUsesLatestEntry(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID}, nil)
	historyRepo.On("Latest", ctx, leadID).Return(&entity.LeadStatusHistory{
		LeadID: leadID,
		Status: enum.LeadStatusContractSigned,
	}, nil)

	status, err := svc.CurrentStatus(ctx, leadID)
	assert.NoError(t, err)
	assert.Equal(t, enum.LeadStatusContractSigned, status)
}

func TestBoardGroupsLeadsByCurrentStage(t *testing.T) {
	ctx := context.Background()
	leadRepo := new(MockLeadRepository)
	historyRepo := new(MockStatusHistoryRepository)
	svc := NewPipelineService(leadRepo, historyRepo)

	signed := entity.Lead{ID: uuid.New(), FullName: "Ana García"}
	fresh := entity.Lead{ID: uuid.New(), FullName: "Luis Pérez"}
	rejected := entity.Lead{ID: uuid.New(), FullName: "Marta Ruiz"}

	leadRepo.On("ListAll", ctx).Return([]entity.Lead{signed, fresh, rejected}, nil)
	historyRepo.On("LatestByLead", ctx).Return(map[uuid.UUID]enum.LeadStatus{
		signed.ID:   enum.LeadStatusContractSigned,
		rejected.ID: enum.LeadStatusRejected,
	}, nil)

	board, err := svc.Board(ctx)
	assert.NoError(t, err)
	assert.Len(t, board, 8)

	// Lead without history lands in the first column
	assert.Equal(t, enum.LeadStatusNewContact, board[0].Status)
	assert.Len(t, board[0].Leads, 1)
	assert.Equal(t, fresh.ID, board[0].Leads[0].ID)

	last := board[len(board)-1]
	assert.Equal(t, enum.LeadStatusContractSigned, last.Status)
	assert.Len(t, last.Leads, 1)

	// Rejected leads are not on the board at all
	total := 0
	for _, col := range board {
		total += len(col.Leads)
	}
	assert.Equal(t, 2, total)
}
