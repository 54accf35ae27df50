package enum

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusIsValid(t *testing.T) {
	for _, stage := range PipelineStages() {
		assert.True(t, stage.IsValid(), stage.String())
	}
	assert.True(t, LeadStatusRejected.IsValid())

	assert.False(t, LeadStatus("").IsValid())
	assert.False(t, LeadStatus("closed_won").IsValid())
	assert.False(t, LeadStatus("NEW_CONTACT").IsValid())
}

func TestPipelineStagesExcludesRejected(t *testing.T) {
	stages := PipelineStages()
	assert.Len(t, stages, 8)
	assert.Equal(t, LeadStatusNewContact, stages[0])
	assert.Equal(t, LeadStatusContractSigned, stages[len(stages)-1])
	assert.NotContains(t, stages, LeadStatusRejected)
}

func TestLeadStatusLabel(t *testing.T) {
	assert.Equal(t, "Nuevo Contacto", LeadStatusNewContact.Label())
	assert.Equal(t, "Contrato Firmado", LeadStatusContractSigned.Label())
	assert.Equal(t, "Rechazado", LeadStatusRejected.Label())
}

func TestLeadStatusUnmarshalJSON(t *testing.T) {
	var status LeadStatus
	err := json.Unmarshal([]byte(`"negotiation"`), &status)
	assert.NoError(t, err)
	assert.Equal(t, LeadStatusNegotiation, status)

	err = json.Unmarshal([]byte(`"not_a_stage"`), &status)
	assert.Error(t, err)
}

func TestLeadStatusScan(t *testing.T) {
	var status LeadStatus

	assert.NoError(t, status.Scan("proposal_sent"))
	assert.Equal(t, LeadStatusProposalSent, status)

	assert.NoError(t, status.Scan([]byte("rejected")))
	assert.Equal(t, LeadStatusRejected, status)

	assert.NoError(t, status.Scan(nil))
	assert.Equal(t, LeadStatusNewContact, status)

	assert.Error(t, status.Scan(42))
}
