package entity

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadStatusHistory is an immutable, append-only record of a pipeline stage
// transition. Moving a card on the board inserts one of these; rows are never
// updated or removed. Seq is a monotonic tie-break for entries sharing the
// same created_at, since timestamps come from whichever session wrote them.
type LeadStatusHistory struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Seq       int64           `gorm:"autoIncrement;uniqueIndex" json:"-"`
	LeadID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"lead_id"`
	Status    enum.LeadStatus `gorm:"size:50;not null" json:"status"`
	Notes     string          `gorm:"type:text" json:"notes"`
	CreatedBy *uuid.UUID      `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// BeforeCreate generates a UUID before creating a new history entry
func (h *LeadStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LeadStatusHistory model
func (LeadStatusHistory) TableName() string {
	return "lead_status_history"
}
