package entity

import (
	"time"

	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Communication is a free-form log entry of an interaction with a lead.
// Unlike status history, communications may be edited and deleted.
type Communication struct {
	ID        uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	LeadID    uuid.UUID              `gorm:"type:uuid;not null;index" json:"lead_id"`
	Type      enum.CommunicationType `gorm:"size:50;not null" json:"type"`
	Content   string                 `gorm:"type:text;not null" json:"content"`
	CreatedBy *uuid.UUID             `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new communication
func (c *Communication) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Communication model
func (Communication) TableName() string {
	return "communications"
}
