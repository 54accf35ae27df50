package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewLeadAggregateDerivesCurrentStatus(t *testing.T) {
	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	lead := &entity.Lead{
		ID: uuid.New(),
		StatusHistory: []entity.LeadStatusHistory{
			{Status: enum.LeadStatusNegotiation, CreatedAt: base.Add(time.Hour), Seq: 3},
			{Status: enum.LeadStatusNewContact, CreatedAt: base, Seq: 1},
			{Status: enum.LeadStatusInfoSent, CreatedAt: base.Add(30 * time.Minute), Seq: 2},
		},
	}

	agg := NewLeadAggregate(lead)

	assert.Equal(t, enum.LeadStatusNegotiation, agg.CurrentStatus)
	assert.Equal(t, enum.LeadStatusNegotiation.Label(), agg.CurrentStatusLabel)
}

func TestNewLeadAggregateDefaultsToNewContact(t *testing.T) {
	agg := NewLeadAggregate(&entity.Lead{ID: uuid.New()})

	assert.Equal(t, enum.LeadStatusNewContact, agg.CurrentStatus)
}

func TestLeadAggregateSerializesCurrentStatus(t *testing.T) {
	lead := &entity.Lead{
		ID:       uuid.New(),
		FullName: "Ana García",
		StatusHistory: []entity.LeadStatusHistory{
			{Status: enum.LeadStatusContractSigned, CreatedAt: time.Now(), Seq: 1},
		},
	}

	data, err := json.Marshal(NewLeadAggregate(lead))
	assert.NoError(t, err)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, "contract_signed", body["current_status"])
	assert.Equal(t, "Ana García", body["full_name"])
}
