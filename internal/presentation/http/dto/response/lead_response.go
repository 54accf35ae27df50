package response

import (
	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
)

// LeadAggregate decorates a fully loaded lead with the pipeline stage
// derived from its status history.
type LeadAggregate struct {
	*entity.Lead
	CurrentStatus      enum.LeadStatus `json:"current_status"`
	CurrentStatusLabel string          `json:"current_status_label"`
}

// NewLeadAggregate builds the aggregate response for a lead
func NewLeadAggregate(lead *entity.Lead) *LeadAggregate {
	status := lead.CurrentStatus()
	return &LeadAggregate{
		Lead:               lead,
		CurrentStatus:      status,
		CurrentStatusLabel: status.Label(),
	}
}
