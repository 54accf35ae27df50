package service

import (
	"context"
	"testing"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLeadService() (*LeadService, *MockLeadRepository, *MockLeadDetailsRepository, *MockStatusHistoryRepository) {
	leadRepo := new(MockLeadRepository)
	detailsRepo := new(MockLeadDetailsRepository)
	historyRepo := new(MockStatusHistoryRepository)
	return NewLeadService(leadRepo, detailsRepo, historyRepo), leadRepo, detailsRepo, historyRepo
}

func TestCreateLeadWritesDetailsAndInitialStatus(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, detailsRepo, historyRepo := newLeadService()

	leadRepo.On("Create", ctx, mock.AnythingOfType("*entity.Lead")).Return(nil)

	var capturedDetails *entity.LeadDetails
	detailsRepo.On("Create", ctx, mock.AnythingOfType("*entity.LeadDetails")).
		Run(func(args mock.Arguments) {
			capturedDetails = args.Get(1).(*entity.LeadDetails)
		}).Return(nil)

	var capturedEntry *entity.LeadStatusHistory
	historyRepo.On("Append", ctx, mock.AnythingOfType("*entity.LeadStatusHistory")).
		Run(func(args mock.Arguments) {
			capturedEntry = args.Get(1).(*entity.LeadStatusHistory)
		}).Return(nil)

	lead, err := svc.CreateLead(ctx, &CreateLeadInput{
		FullName:           "Ana García",
		Email:              "ana@example.com",
		Phone:              "600111222",
		Location:           "Madrid",
		PreviousExperience: "hostelería",
		InvestmentCapacity: enum.InvestmentCapacityYes,
		SourceChannel:      enum.SourceChannelWebsite,
		InterestLevel:      5,
		AdditionalComments: "zona centro",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Ana García", lead.FullName)

	// Score is computed and stored at creation
	assert.NotNil(t, capturedDetails)
	assert.Equal(t, 115, capturedDetails.ComputeScore()) // sanity: 5*10+50+10+5
	assert.Equal(t, capturedDetails.ComputeScore(), capturedDetails.Score)

	// The first history entry is always new_contact
	assert.NotNil(t, capturedEntry)
	assert.Equal(t, enum.LeadStatusNewContact, capturedEntry.Status)
}

func TestCreateLeadDefaultsQualification(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, detailsRepo, historyRepo := newLeadService()

	leadRepo.On("Create", ctx, mock.Anything).Return(nil)
	var capturedDetails *entity.LeadDetails
	detailsRepo.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedDetails = args.Get(1).(*entity.LeadDetails)
		}).Return(nil)
	historyRepo.On("Append", ctx, mock.Anything).Return(nil)

	_, err := svc.CreateLead(ctx, &CreateLeadInput{
		FullName:      "Luis Pérez",
		Email:         "luis@example.com",
		Phone:         "600333444",
		Location:      "Sevilla",
		InterestLevel: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, enum.InvestmentCapacityNo, capturedDetails.InvestmentCapacity)
	assert.Equal(t, enum.SourceChannelOther, capturedDetails.SourceChannel)
	assert.Equal(t, 20, capturedDetails.Score)
}

func TestCreateLeadRejectsInterestLevelOutOfRange(t *testing.T) {
	ctx := context.Background()
	svc, _, _, _ := newLeadService()

	for _, level := range []int{0, 6, -1} {
		_, err := svc.CreateLead(ctx, &CreateLeadInput{
			FullName:      "Ana",
			Email:         "ana@example.com",
			Phone:         "600111222",
			Location:      "Madrid",
			InterestLevel: level,
		})
		assert.Error(t, err)
	}
}

func TestCreateLeadSurvivesDetailsFailure(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, detailsRepo, historyRepo := newLeadService()

	leadRepo.On("Create", ctx, mock.Anything).Return(nil)
	detailsRepo.On("Create", ctx, mock.Anything).Return(assert.AnError)
	historyRepo.On("Append", ctx, mock.Anything).Return(nil)

	// A failed details insert keeps the lead; it just has no details row
	lead, err := svc.CreateLead(ctx, &CreateLeadInput{
		FullName:      "Ana",
		Email:         "ana@example.com",
		Phone:         "600111222",
		Location:      "Madrid",
		InterestLevel: 3,
	})

	assert.NoError(t, err)
	assert.Nil(t, lead.Details)
}

func TestUpdateLeadRecomputesScore(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, detailsRepo, _ := newLeadService()

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID, FullName: "Ana"}, nil)
	leadRepo.On("Update", ctx, mock.Anything).Return(nil)

	existing := &entity.LeadDetails{
		LeadID:             leadID,
		InterestLevel:      2,
		InvestmentCapacity: enum.InvestmentCapacityNo,
		Score:              30,
	}
	detailsRepo.On("GetByLeadID", ctx, leadID).Return(existing, nil)

	var saved *entity.LeadDetails
	detailsRepo.On("Update", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.LeadDetails)
		}).Return(nil)

	capacity := enum.InvestmentCapacityYes
	level := 4
	lead, err := svc.UpdateLead(ctx, &UpdateLeadInput{
		ID:                 leadID,
		InvestmentCapacity: &capacity,
		InterestLevel:      &level,
	})

	assert.NoError(t, err)
	assert.Equal(t, 90, saved.Score)
	assert.Equal(t, 90, lead.Details.Score)
}

func TestUpdateLeadContactOnlyLeavesScoreAlone(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, detailsRepo, _ := newLeadService()

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(&entity.Lead{ID: leadID, FullName: "Ana"}, nil)
	leadRepo.On("Update", ctx, mock.Anything).Return(nil)
	detailsRepo.On("GetByLeadID", ctx, leadID).Return(&entity.LeadDetails{LeadID: leadID, Score: 75}, nil)

	phone := "699000111"
	lead, err := svc.UpdateLead(ctx, &UpdateLeadInput{ID: leadID, Phone: &phone})

	assert.NoError(t, err)
	assert.Equal(t, "699000111", lead.Phone)
	assert.Equal(t, 75, lead.Details.Score)
	detailsRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateLeadNotFound(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, _, _ := newLeadService()

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(nil, nil)

	_, err := svc.UpdateLead(ctx, &UpdateLeadInput{ID: leadID})
	assert.Error(t, err)
}

func TestDeleteLeadNotFound(t *testing.T) {
	ctx := context.Background()
	svc, leadRepo, _, _ := newLeadService()

	leadID := uuid.New()
	leadRepo.On("GetByID", ctx, leadID).Return(nil, nil)

	err := svc.DeleteLead(ctx, leadID)
	assert.Error(t, err)
	leadRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
