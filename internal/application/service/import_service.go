package service

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/franlead/franlead-api/internal/domain/entity"
	"github.com/franlead/franlead-api/internal/domain/enum"
	"github.com/franlead/franlead-api/internal/domain/repository"
	"github.com/franlead/franlead-api/pkg/csvutil"
	"github.com/google/uuid"
)

// Required CSV columns for a lead import
var leadRequiredFields = []string{"full_name", "email", "phone", "location"}

// Required CSV columns for a franchise import
var franchiseRequiredFields = []string{"name", "address", "city", "province", "phone", "email", "contact_person"}

// ImportService handles bulk CSV imports of leads and franchises
type ImportService struct {
	leadRepo      repository.LeadRepository
	detailsRepo   repository.LeadDetailsRepository
	historyRepo   repository.StatusHistoryRepository
	franchiseRepo repository.FranchiseRepository
}

// NewImportService creates a new import service
func NewImportService(
	leadRepo repository.LeadRepository,
	detailsRepo repository.LeadDetailsRepository,
	historyRepo repository.StatusHistoryRepository,
	franchiseRepo repository.FranchiseRepository,
) *ImportService {
	return &ImportService{
		leadRepo:      leadRepo,
		detailsRepo:   detailsRepo,
		historyRepo:   historyRepo,
		franchiseRepo: franchiseRepo,
	}
}

// ImportResult summarizes a bulk import
type ImportResult struct {
	Imported int      `json:"imported"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// ImportLeads validates CSV text and inserts one lead per row. Validation is
// all-or-nothing: any missing column or empty required cell rejects the whole
// file. Inserts are per-row best-effort; a failed row is reported and the
// rest continue.
func (s *ImportService) ImportLeads(ctx context.Context, csvText string, createdBy *uuid.UUID) (*ImportResult, *csvutil.ValidationResult, error) {
	rows, err := csvutil.Parse(csvText)
	if err != nil {
		return nil, nil, err
	}

	validation := csvutil.Validate(rows, leadRequiredFields)
	if !validation.IsValid {
		return nil, &validation, nil
	}

	result := &ImportResult{}
	for i, row := range rows {
		lead := &entity.Lead{
			FullName: row["full_name"],
			Email:    row["email"],
			Phone:    row["phone"],
			Location: row["location"],
		}
		if err := s.leadRepo.Create(ctx, lead); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("fila %d: %v", i+1, err))
			continue
		}

		details := &entity.LeadDetails{
			LeadID:             lead.ID,
			PreviousExperience: row["previous_experience"],
			InvestmentCapacity: parseInvestmentCapacity(row["investment_capacity"]),
			SourceChannel:      parseSourceChannel(row["source_channel"]),
			InterestLevel:      parseInterestLevel(row["interest_level"]),
			AdditionalComments: row["additional_comments"],
		}
		details.RefreshScore()
		if err := s.detailsRepo.Create(ctx, details); err != nil {
			log.Printf("imported lead %s without details: %v", lead.ID, err)
		}

		initial := &entity.LeadStatusHistory{
			LeadID:    lead.ID,
			Status:    enum.LeadStatusNewContact,
			CreatedBy: createdBy,
		}
		if err := s.historyRepo.Append(ctx, initial); err != nil {
			log.Printf("imported lead %s without initial status entry: %v", lead.ID, err)
		}

		result.Imported++
	}

	return result, &validation, nil
}

// ImportFranchises validates CSV text and inserts franchises in a single
// batch.
func (s *ImportService) ImportFranchises(ctx context.Context, csvText string, createdBy *uuid.UUID) (*ImportResult, *csvutil.ValidationResult, error) {
	rows, err := csvutil.Parse(csvText)
	if err != nil {
		return nil, nil, err
	}

	validation := csvutil.Validate(rows, franchiseRequiredFields)
	if !validation.IsValid {
		return nil, &validation, nil
	}

	franchises := make([]entity.Franchise, 0, len(rows))
	for _, row := range rows {
		franchise := entity.Franchise{
			Name:          row["name"],
			Address:       row["address"],
			City:          row["city"],
			Province:      row["province"],
			Phone:         row["phone"],
			Email:         row["email"],
			ContactPerson: row["contact_person"],
			CreatedBy:     createdBy,
		}
		if website := row["website"]; website != "" {
			franchise.Website = &website
		}
		if code := row["tesis_code"]; code != "" {
			franchise.TesisCode = &code
		}
		franchises = append(franchises, franchise)
	}

	if err := s.franchiseRepo.CreateBatch(ctx, franchises); err != nil {
		return nil, nil, err
	}

	return &ImportResult{Imported: len(franchises)}, &validation, nil
}

func parseInvestmentCapacity(value string) enum.InvestmentCapacity {
	capacity := enum.InvestmentCapacity(value)
	if !capacity.IsValid() {
		return enum.InvestmentCapacityNo
	}
	return capacity
}

func parseSourceChannel(value string) enum.SourceChannel {
	channel := enum.SourceChannel(value)
	if !channel.IsValid() {
		return enum.SourceChannelOther
	}
	return channel
}

func parseInterestLevel(value string) int {
	level, err := strconv.Atoi(value)
	if err != nil || level < 1 || level > 5 {
		return 1
	}
	return level
}
