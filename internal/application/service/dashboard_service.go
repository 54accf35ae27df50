package service

import (
	"context"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
)

// DashboardService aggregates the numbers shown on the home screen
type DashboardService struct {
	analyticsRepo repository.AnalyticsRepository
	taskRepo      repository.TaskRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(analyticsRepo repository.AnalyticsRepository, taskRepo repository.TaskRepository) *DashboardService {
	return &DashboardService{analyticsRepo: analyticsRepo, taskRepo: taskRepo}
}

// StageCount is one slice of the pipeline breakdown
type StageCount struct {
	Status enum.LeadStatus `json:"status"`
	Label  string          `json:"label"`
	Count  int64           `json:"count"`
}

// DashboardStats holds the aggregated dashboard numbers
type DashboardStats struct {
	TotalLeads   int64         `json:"total_leads"`
	PendingTasks int64         `json:"pending_tasks"`
	AverageScore float64       `json:"average_score"`
	ByStage      []StageCount  `json:"by_stage"`
	RecentLeads  []entity.Lead `json:"recent_leads"`
}

// GetStats computes the dashboard snapshot. Every pipeline stage appears in
// the breakdown even when its count is zero; rejected is included here since
// the dashboard reports losses too.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	totalLeads, err := s.analyticsRepo.CountLeads(ctx)
	if err != nil {
		return nil, err
	}

	pendingTasks, err := s.taskRepo.CountPending(ctx)
	if err != nil {
		return nil, err
	}

	avgScore, err := s.analyticsRepo.AverageScore(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.analyticsRepo.CountLeadsByStage(ctx)
	if err != nil {
		return nil, err
	}
	countByStatus := make(map[enum.LeadStatus]int64, len(counts))
	for _, c := range counts {
		countByStatus[c.Status] = c.Count
	}

	stages := append(enum.PipelineStages(), enum.LeadStatusRejected)
	byStage := make([]StageCount, 0, len(stages))
	for _, stage := range stages {
		byStage = append(byStage, StageCount{
			Status: stage,
			Label:  stage.Label(),
			Count:  countByStatus[stage],
		})
	}

	recentLeads, err := s.analyticsRepo.RecentLeads(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalLeads:   totalLeads,
		PendingTasks: pendingTasks,
		AverageScore: avgScore,
		ByStage:      byStage,
		RecentLeads:  recentLeads,
	}, nil
}
