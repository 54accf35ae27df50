package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Franchise is an operating franchise location. Franchises are independent of
// leads; a signed lead is not linked back to the franchise record.
type Franchise struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name          string     `gorm:"size:255;not null" json:"name"`
	Address       string     `gorm:"size:255;not null" json:"address"`
	City          string     `gorm:"size:100;not null" json:"city"`
	Province      string     `gorm:"size:100;not null" json:"province"`
	Phone         string     `gorm:"size:50;not null" json:"phone"`
	Email         string     `gorm:"size:255;not null" json:"email"`
	ContactPerson string     `gorm:"size:255;not null" json:"contact_person"`
	Website       *string    `gorm:"size:255" json:"website,omitempty"`
	TesisCode     *string    `gorm:"size:50;column:tesis_code" json:"tesis_code,omitempty"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new franchise
func (f *Franchise) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Franchise model
func (Franchise) TableName() string {
	return "franchises"
}
