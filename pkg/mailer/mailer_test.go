package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() SMTPConfig {
	return SMTPConfig{
		Host:      "smtp.example.com",
		Port:      587,
		User:      "crm@example.com",
		Password:  "secret",
		FromEmail: "crm@example.com",
		FromName:  "FranLead CRM",
	}
}

func TestMockSenderSuccess(t *testing.T) {
	sender := NewMockSender(0)
	err := sender.Send(validConfig(), &Message{
		To:      "lead@example.com",
		Subject: "Bienvenido",
		Body:    "Gracias por tu interés",
	})
	assert.NoError(t, err)
}

func TestMockSenderSimulatesDelay(t *testing.T) {
	sender := NewMockSender(50 * time.Millisecond)
	start := time.Now()
	err := sender.Send(validConfig(), &Message{
		To:      "lead@example.com",
		Subject: "Bienvenido",
		Body:    "Gracias por tu interés",
	})
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestValidateRejectsMissingFields(t *testing.T) {
	cfg := validConfig()

	assert.Error(t, Validate(cfg, &Message{Subject: "s", Body: "b"}))
	assert.Error(t, Validate(cfg, &Message{To: "lead@example.com", Body: "b"}))
	assert.Error(t, Validate(cfg, &Message{To: "lead@example.com", Subject: "s"}))
}

func TestValidateRejectsBadAddress(t *testing.T) {
	err := Validate(validConfig(), &Message{To: "not-an-address", Subject: "s", Body: "b"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email address")
}

func TestValidateRejectsIncompleteSettings(t *testing.T) {
	cfg := validConfig()
	cfg.Host = ""
	err := Validate(cfg, &Message{To: "lead@example.com", Subject: "s", Body: "b"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid SMTP settings")
}

func TestPasswordResetEmail(t *testing.T) {
	msg, err := PasswordResetEmail("http://localhost:5173", "ana@example.com", "tok123")
	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", msg.To)
	assert.True(t, msg.HTML)
	assert.Contains(t, msg.Body, "reset-password?token=tok123&email=ana%40example.com")
	assert.Contains(t, msg.Body, "ana@example.com")
}
