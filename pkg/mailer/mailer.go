// Package mailer sends outbound email. The SMTP configuration is not fixed at
// startup: it is stored per-installation in the database and handed to the
// sender on every call, so changing settings never requires a restart.
package mailer

import (
	"fmt"
	"log"
	"net/mail"
	"time"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the connection settings for one send
type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	Secure    bool
	FromEmail string
	FromName  string
}

// Message is a single outbound email
type Message struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Sender delivers messages over some transport
type Sender interface {
	Send(cfg SMTPConfig, msg *Message) error
}

// Validate checks that a message and config are sendable
func Validate(cfg SMTPConfig, msg *Message) error {
	if msg.To == "" || msg.Subject == "" || msg.Body == "" {
		return fmt.Errorf("missing required fields")
	}
	if _, err := mail.ParseAddress(msg.To); err != nil {
		return fmt.Errorf("invalid email address: %q", msg.To)
	}
	if cfg.Host == "" || cfg.Port <= 0 || cfg.User == "" || cfg.Password == "" || cfg.FromEmail == "" {
		return fmt.Errorf("invalid SMTP settings")
	}
	return nil
}

// SMTPSender delivers mail over SMTP using gomail
type SMTPSender struct{}

// NewSMTPSender creates a new SMTP sender
func NewSMTPSender() *SMTPSender {
	return &SMTPSender{}
}

func (s *SMTPSender) Send(cfg SMTPConfig, msg *Message) error {
	if err := Validate(cfg, msg); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", cfg.FromEmail, cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Secure && cfg.Port == 465

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// MockSender simulates delivery without touching the network: it validates
// the message, logs what would have been sent and waits for Delay to mimic a
// slow SMTP round trip. Used in development and tests.
type MockSender struct {
	Delay time.Duration
}

// NewMockSender creates a new mock sender
func NewMockSender(delay time.Duration) *MockSender {
	return &MockSender{Delay: delay}
}

func (s *MockSender) Send(cfg SMTPConfig, msg *Message) error {
	if err := Validate(cfg, msg); err != nil {
		return err
	}

	contentType := "Text"
	if msg.HTML {
		contentType = "HTML"
	}
	log.Printf("mailer(mock): sending to %s subject=%q", msg.To, msg.Subject)
	log.Printf("mailer(mock): from %s <%s> via %s:%d type=%s", cfg.FromName, cfg.FromEmail, cfg.Host, cfg.Port, contentType)

	if s.Delay > 0 {
		time.Sleep(s.Delay)
	}
	return nil
}
