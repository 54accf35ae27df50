package entity

import (
	"testing"
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name     string
		details  LeadDetails
		expected int
	}{
		{
			name: "minimal lead",
			details: LeadDetails{
				InterestLevel:      1,
				InvestmentCapacity: enum.InvestmentCapacityNo,
			},
			expected: 20,
		},
		{
			name: "maximum qualification",
			details: LeadDetails{
				InterestLevel:      5,
				InvestmentCapacity: enum.InvestmentCapacityYes,
				PreviousExperience: "10 años en hostelería",
				AdditionalComments: "quiere abrir en Valencia",
			},
			expected: 115,
		},
		{
			name: "top interest and capacity with experience",
			details: LeadDetails{
				InterestLevel:      5,
				InvestmentCapacity: enum.InvestmentCapacityYes,
				PreviousExperience: "franquiciado anterior",
			},
			expected: 110,
		},
		{
			name: "capacity yes without extras",
			details: LeadDetails{
				InterestLevel:      3,
				InvestmentCapacity: enum.InvestmentCapacityYes,
			},
			expected: 80,
		},
		{
			name: "experience only",
			details: LeadDetails{
				InterestLevel:      2,
				InvestmentCapacity: enum.InvestmentCapacityNo,
				PreviousExperience: "franquiciado anterior",
			},
			expected: 40,
		},
		{
			name: "comments only",
			details: LeadDetails{
				InterestLevel:      4,
				InvestmentCapacity: enum.InvestmentCapacityNo,
				AdditionalComments: "llamar por la tarde",
			},
			expected: 55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.details.ComputeScore())
		})
	}
}

func TestRefreshScore(t *testing.T) {
	details := LeadDetails{
		InterestLevel:      5,
		InvestmentCapacity: enum.InvestmentCapacityYes,
	}
	details.RefreshScore()
	assert.Equal(t, 100, details.Score)

	details.InvestmentCapacity = enum.InvestmentCapacityNo
	details.RefreshScore()
	assert.Equal(t, 60, details.Score)
}

func TestCurrentStatusEmptyHistory(t *testing.T) {
	lead := Lead{}
	assert.Equal(t, enum.LeadStatusNewContact, lead.CurrentStatus())
}

func TestCurrentStatusNewestWins(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	lead := Lead{
		StatusHistory: []LeadStatusHistory{
			{Status: enum.LeadStatusNewContact, CreatedAt: base, Seq: 1},
			{Status: enum.LeadStatusInterviewScheduled, CreatedAt: base.Add(48 * time.Hour), Seq: 3},
			{Status: enum.LeadStatusFirstContact, CreatedAt: base.Add(24 * time.Hour), Seq: 2},
		},
	}
	assert.Equal(t, enum.LeadStatusInterviewScheduled, lead.CurrentStatus())
}

func TestCurrentStatusTieBrokenBySeq(t *testing.T) {
	// Two entries written in the same instant: the later insertion wins
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	lead := Lead{
		StatusHistory: []LeadStatusHistory{
			{Status: enum.LeadStatusProposalSent, CreatedAt: at, Seq: 8},
			{Status: enum.LeadStatusNegotiation, CreatedAt: at, Seq: 9},
		},
	}
	assert.Equal(t, enum.LeadStatusNegotiation, lead.CurrentStatus())
}

func TestCurrentStatusOrderIndependent(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	lead := Lead{
		StatusHistory: []LeadStatusHistory{
			{Status: enum.LeadStatusRejected, CreatedAt: at, Seq: 5},
			{Status: enum.LeadStatusNewContact, CreatedAt: at.Add(-time.Hour), Seq: 4},
		},
	}
	assert.Equal(t, enum.LeadStatusRejected, lead.CurrentStatus())
}
