package service

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if lead := args.Get(0); lead != nil {
		return lead.(*entity.Lead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) GetAggregate(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if lead := args.Get(0); lead != nil {
		return lead.(*entity.Lead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Lead, int64, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Lead, error) {
	args := m.Called(ctx, params, search)
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Lead), args.Error(1)
}

// MockLeadDetailsRepository
type MockLeadDetailsRepository struct {
	mock.Mock
}

func (m *MockLeadDetailsRepository) Create(ctx context.Context, details *entity.LeadDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockLeadDetailsRepository) GetByLeadID(ctx context.Context, leadID uuid.UUID) (*entity.LeadDetails, error) {
	args := m.Called(ctx, leadID)
	if details := args.Get(0); details != nil {
		return details.(*entity.LeadDetails), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadDetailsRepository) Update(ctx context.Context, details *entity.LeadDetails) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

// MockStatusHistoryRepository
type MockStatusHistoryRepository struct {
	mock.Mock
}

func (m *MockStatusHistoryRepository) Append(ctx context.Context, entry *entity.LeadStatusHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStatusHistoryRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.LeadStatusHistory, error) {
	args := m.Called(ctx, leadID)
	return args.Get(0).([]entity.LeadStatusHistory), args.Error(1)
}

func (m *MockStatusHistoryRepository) Latest(ctx context.Context, leadID uuid.UUID) (*entity.LeadStatusHistory, error) {
	args := m.Called(ctx, leadID)
	if entry := args.Get(0); entry != nil {
		return entry.(*entity.LeadStatusHistory), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatusHistoryRepository) LatestByLead(ctx context.Context) (map[uuid.UUID]enum.LeadStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[uuid.UUID]enum.LeadStatus), args.Error(1)
}

// MockTaskRepository
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Task, error) {
	args := m.Called(ctx, id)
	if task := args.Get(0); task != nil {
		return task.(*entity.Task), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *entity.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) List(ctx context.Context, filter *repository.TaskFilter) ([]entity.Task, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]entity.Task), args.Error(1)
}

func (m *MockTaskRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
