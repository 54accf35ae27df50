package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// LeadStatus represents a stage in the sales pipeline
type LeadStatus string

const (
	LeadStatusNewContact         LeadStatus = "new_contact"
	LeadStatusFirstContact       LeadStatus = "first_contact"
	LeadStatusInfoSent           LeadStatus = "info_sent"
	LeadStatusInterviewScheduled LeadStatus = "interview_scheduled"
	LeadStatusInterviewCompleted LeadStatus = "interview_completed"
	LeadStatusProposalSent       LeadStatus = "proposal_sent"
	LeadStatusNegotiation        LeadStatus = "negotiation"
	LeadStatusContractSigned     LeadStatus = "contract_signed"
	LeadStatusRejected           LeadStatus = "rejected"
)

// PipelineStages returns the ordered pipeline stages shown as board columns.
// Rejected is reachable from any stage but is not a board column.
func PipelineStages() []LeadStatus {
	return []LeadStatus{
		LeadStatusNewContact,
		LeadStatusFirstContact,
		LeadStatusInfoSent,
		LeadStatusInterviewScheduled,
		LeadStatusInterviewCompleted,
		LeadStatusProposalSent,
		LeadStatusNegotiation,
		LeadStatusContractSigned,
	}
}

// IsValid checks if the status is one of the known pipeline stages.
// Any stage may transition to any other; there is no transition table.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNewContact, LeadStatusFirstContact, LeadStatusInfoSent,
		LeadStatusInterviewScheduled, LeadStatusInterviewCompleted,
		LeadStatusProposalSent, LeadStatusNegotiation,
		LeadStatusContractSigned, LeadStatusRejected:
		return true
	}
	return false
}

func (s LeadStatus) String() string {
	return string(s)
}

// Label returns the display name for the stage
func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusNewContact:
		return "Nuevo Contacto"
	case LeadStatusFirstContact:
		return "Primer Contacto"
	case LeadStatusInfoSent:
		return "Información Enviada"
	case LeadStatusInterviewScheduled:
		return "Entrevista Programada"
	case LeadStatusInterviewCompleted:
		return "Entrevista Completada"
	case LeadStatusProposalSent:
		return "Propuesta Enviada"
	case LeadStatusNegotiation:
		return "Negociación"
	case LeadStatusContractSigned:
		return "Contrato Firmado"
	case LeadStatusRejected:
		return "Rechazado"
	}
	return string(s)
}

func (s *LeadStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	status := LeadStatus(str)
	if !status.IsValid() {
		return fmt.Errorf("invalid lead status: %q", str)
	}
	*s = status
	return nil
}

func (s LeadStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *LeadStatus) Scan(value interface{}) error {
	if value == nil {
		*s = LeadStatusNewContact
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = LeadStatus(v)
	case []byte:
		*s = LeadStatus(v)
	default:
		return fmt.Errorf("cannot scan %T into LeadStatus", value)
	}
	return nil
}
