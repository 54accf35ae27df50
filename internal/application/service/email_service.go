package service

import (
	"context"
	"log"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/apperror"
	"github.com/franlead/franlead-api/pkg/mailer"
	"github.com/google/uuid"
)

// EmailService manages SMTP settings and outbound mail to leads
type EmailService struct {
	settingsRepo repository.EmailSettingsRepository
	leadRepo     repository.LeadRepository
	historyRepo  repository.StatusHistoryRepository
	commRepo     repository.CommunicationRepository
	sender       mailer.Sender
}

// NewEmailService creates a new email service
func NewEmailService(
	settingsRepo repository.EmailSettingsRepository,
	leadRepo repository.LeadRepository,
	historyRepo repository.StatusHistoryRepository,
	commRepo repository.CommunicationRepository,
	sender mailer.Sender,
) *EmailService {
	return &EmailService{
		settingsRepo: settingsRepo,
		leadRepo:     leadRepo,
		historyRepo:  historyRepo,
		commRepo:     commRepo,
		sender:       sender,
	}
}

// GetSettings returns the active SMTP settings, nil if none configured
func (s *EmailService) GetSettings(ctx context.Context) (*entity.EmailSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// SaveSettingsInput represents the SMTP settings payload
type SaveSettingsInput struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPSecure   bool
	FromEmail    string
	FromName     string
}

// SaveSettings creates or replaces the active SMTP settings. An empty
// password keeps the stored one, so the UI never has to round-trip secrets.
func (s *EmailService) SaveSettings(ctx context.Context, input *SaveSettingsInput) (*entity.EmailSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.EmailSettings{}
	}

	settings.SMTPHost = input.SMTPHost
	settings.SMTPPort = input.SMTPPort
	settings.SMTPUser = input.SMTPUser
	if input.SMTPPassword != "" {
		settings.SMTPPassword = input.SMTPPassword
	}
	settings.SMTPSecure = input.SMTPSecure
	settings.FromEmail = input.FromEmail
	settings.FromName = input.FromName

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// SendEmailInput represents a single outbound email to a lead
type SendEmailInput struct {
	LeadID    uuid.UUID
	Subject   string
	Body      string
	HTML      bool
	CreatedBy *uuid.UUID
}

// SendToLead sends one email to a lead's address and logs it as an email
// communication.
func (s *EmailService) SendToLead(ctx context.Context, input *SendEmailInput) error {
	lead, err := s.leadRepo.GetByID(ctx, input.LeadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}

	cfg, err := s.smtpConfig(ctx)
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		To:      lead.Email,
		Subject: input.Subject,
		Body:    input.Body,
		HTML:    input.HTML,
	}
	if err := s.sender.Send(cfg, msg); err != nil {
		return apperror.NewBadRequestError(err.Error())
	}

	comm := &entity.Communication{
		LeadID:    lead.ID,
		Type:      enum.CommunicationTypeEmail,
		Content:   input.Subject,
		CreatedBy: input.CreatedBy,
	}
	if err := s.commRepo.Create(ctx, comm); err != nil {
		log.Printf("email to lead %s sent but not logged: %v", lead.ID, err)
	}

	return nil
}

// SendDirectInput represents a one-off email to an arbitrary address
type SendDirectInput struct {
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Send delivers one email to an arbitrary address. Unlike SendToLead it
// logs no communication, the recipient is not tracked.
func (s *EmailService) Send(ctx context.Context, input *SendDirectInput) error {
	cfg, err := s.smtpConfig(ctx)
	if err != nil {
		return err
	}

	msg := &mailer.Message{
		To:      input.To,
		Subject: input.Subject,
		Body:    input.Body,
		HTML:    input.HTML,
	}
	if err := s.sender.Send(cfg, msg); err != nil {
		return apperror.NewBadRequestError(err.Error())
	}
	return nil
}

// MassSendInput represents a bulk email request. Recipients are either an
// explicit lead list or every lead currently in a pipeline stage.
type MassSendInput struct {
	LeadIDs   []uuid.UUID
	Status    *enum.LeadStatus
	Subject   string
	Body      string
	HTML      bool
	CreatedBy *uuid.UUID
}

// MassSendResult summarizes a bulk send
type MassSendResult struct {
	Sent   int      `json:"sent"`
	Failed int      `json:"failed"`
	Errors []string `json:"errors,omitempty"`
}

// MassSend emails a set of leads one by one; a failed recipient never stops
// the rest.
func (s *EmailService) MassSend(ctx context.Context, input *MassSendInput) (*MassSendResult, error) {
	cfg, err := s.smtpConfig(ctx)
	if err != nil {
		return nil, err
	}

	leads, err := s.resolveRecipients(ctx, input)
	if err != nil {
		return nil, err
	}

	result := &MassSendResult{}
	for _, lead := range leads {
		msg := &mailer.Message{
			To:      lead.Email,
			Subject: input.Subject,
			Body:    input.Body,
			HTML:    input.HTML,
		}
		if err := s.sender.Send(cfg, msg); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, lead.Email+": "+err.Error())
			continue
		}

		comm := &entity.Communication{
			LeadID:    lead.ID,
			Type:      enum.CommunicationTypeEmail,
			Content:   input.Subject,
			CreatedBy: input.CreatedBy,
		}
		if err := s.commRepo.Create(ctx, comm); err != nil {
			log.Printf("email to lead %s sent but not logged: %v", lead.ID, err)
		}
		result.Sent++
	}

	return result, nil
}

func (s *EmailService) resolveRecipients(ctx context.Context, input *MassSendInput) ([]entity.Lead, error) {
	if len(input.LeadIDs) > 0 {
		leads := make([]entity.Lead, 0, len(input.LeadIDs))
		for _, id := range input.LeadIDs {
			lead, err := s.leadRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
			if lead == nil {
				return nil, apperror.NewNotFoundError("Lead")
			}
			leads = append(leads, *lead)
		}
		return leads, nil
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, apperror.ErrInvalidStatus
		}
		all, err := s.leadRepo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		current, err := s.historyRepo.LatestByLead(ctx)
		if err != nil {
			return nil, err
		}
		var leads []entity.Lead
		for _, lead := range all {
			status, ok := current[lead.ID]
			if !ok {
				status = enum.LeadStatusNewContact
			}
			if status == *input.Status {
				leads = append(leads, lead)
			}
		}
		return leads, nil
	}

	return nil, apperror.NewBadRequestError("Either lead_ids or status is required")
}

func (s *EmailService) smtpConfig(ctx context.Context) (mailer.SMTPConfig, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return mailer.SMTPConfig{}, err
	}
	if settings == nil || !settings.IsComplete() {
		return mailer.SMTPConfig{}, apperror.ErrEmailNotConfigured
	}
	return mailer.SMTPConfig{
		Host:      settings.SMTPHost,
		Port:      settings.SMTPPort,
		User:      settings.SMTPUser,
		Password:  settings.SMTPPassword,
		Secure:    settings.SMTPSecure,
		FromEmail: settings.FromEmail,
		FromName:  settings.FromName,
	}, nil
}
