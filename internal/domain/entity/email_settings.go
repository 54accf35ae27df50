package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmailSettings holds the SMTP configuration used for outbound mail. There is
// a single active row; the newest one wins.
type EmailSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SMTPHost     string    `gorm:"size:255;not null;column:smtp_host" json:"smtp_host"`
	SMTPPort     int       `gorm:"default:587;column:smtp_port" json:"smtp_port"`
	SMTPUser     string    `gorm:"size:255;not null;column:smtp_user" json:"smtp_user"`
	SMTPPassword string    `gorm:"size:255;not null;column:smtp_password" json:"-"`
	SMTPSecure   bool      `gorm:"default:true;column:smtp_secure" json:"smtp_secure"`
	FromEmail    string    `gorm:"size:255;not null" json:"from_email"`
	FromName     string    `gorm:"size:255;not null" json:"from_name"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating new email settings
func (s *EmailSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EmailSettings model
func (EmailSettings) TableName() string {
	return "email_settings"
}

// IsComplete reports whether the settings are usable for sending
func (s *EmailSettings) IsComplete() bool {
	return s.SMTPHost != "" && s.SMTPPort > 0 && s.SMTPUser != "" &&
		s.SMTPPassword != "" && s.FromEmail != ""
}
