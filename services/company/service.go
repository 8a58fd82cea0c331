package company

import (
	"context"
	"errors"
	"fmt"
	"time"

	companyRepo "slotbook/database/repository/company"
	"slotbook/models"
	"slotbook/services/scheduling"

	"github.com/google/uuid"
)

// Defaults applied when a company is created without schedule settings.
const (
	DefaultWorkingHoursStart   = "08:00"
	DefaultWorkingHoursEnd     = "18:00"
	DefaultSlotDurationMinutes = 30
)

// CreateInput carries a company registration request.
type CreateInput struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	ImageURL            string `json:"imageUrl"`
	WorkingHoursStart   string `json:"workingHoursStart"`
	WorkingHoursEnd     string `json:"workingHoursEnd"`
	SlotDurationMinutes int    `json:"reservationSlotDuration"`
}

// UpdateInput carries a partial company update. Empty fields are left
// untouched.
type UpdateInput struct {
	Name                string `json:"name"`
	Description         string `json:"description"`
	ImageURL            string `json:"imageUrl"`
	WorkingHoursStart   string `json:"workingHoursStart"`
	WorkingHoursEnd     string `json:"workingHoursEnd"`
	SlotDurationMinutes int    `json:"reservationSlotDuration"`
}

// CompanyService manages company profiles and their schedule configuration.
type CompanyService interface {
	// Create registers the caller's company. One per owner.
	Create(ctx context.Context, identity models.Identity, input CreateInput) (*models.Company, error)
	// Update applies a partial owner-only update.
	Update(ctx context.Context, identity models.Identity, id string, input UpdateInput) (*models.Company, error)
	// GetMine returns the caller's company, or nil when they have none.
	GetMine(ctx context.Context, identity models.Identity) (*models.Company, error)
	// List returns all companies, newest first.
	List(ctx context.Context) ([]models.Company, error)
}

// DefaultCompanyService is the production CompanyService.
type DefaultCompanyService struct {
	Repo companyRepo.CompanyRepository
}

// validateSchedule rejects unusable schedule configuration at write time
// instead of letting it surface later as a silently empty grid.
func validateSchedule(start, end string, duration int) error {
	if duration <= 0 {
		return fmt.Errorf("%w: slot duration must be positive", ErrInvalidInput)
	}
	startMin, err := scheduling.ParseClock(start)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMin, err := scheduling.ParseClock(end)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if startMin >= endMin {
		return fmt.Errorf("%w: working hours start must be before end", ErrInvalidInput)
	}
	return nil
}

func (s *DefaultCompanyService) Create(ctx context.Context, identity models.Identity, input CreateInput) (*models.Company, error) {
	if input.Name == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrInvalidInput)
	}

	if input.WorkingHoursStart == "" {
		input.WorkingHoursStart = DefaultWorkingHoursStart
	}
	if input.WorkingHoursEnd == "" {
		input.WorkingHoursEnd = DefaultWorkingHoursEnd
	}
	if input.SlotDurationMinutes == 0 {
		input.SlotDurationMinutes = DefaultSlotDurationMinutes
	}
	if err := validateSchedule(input.WorkingHoursStart, input.WorkingHoursEnd, input.SlotDurationMinutes); err != nil {
		return nil, err
	}

	now := time.Now()
	company := &models.Company{
		ID:                  uuid.New().String(),
		OwnerID:             identity.UserID,
		Name:                input.Name,
		Description:         input.Description,
		ImageURL:            input.ImageURL,
		WorkingHoursStart:   input.WorkingHoursStart,
		WorkingHoursEnd:     input.WorkingHoursEnd,
		SlotDurationMinutes: input.SlotDurationMinutes,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.Repo.Create(ctx, company); err != nil {
		if errors.Is(err, companyRepo.ErrOwnerTaken) {
			return nil, ErrOwnerHasCompany
		}
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (s *DefaultCompanyService) Update(ctx context.Context, identity models.Identity, id string, input UpdateInput) (*models.Company, error) {
	company, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, companyRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	if company.OwnerID != identity.UserID {
		return nil, ErrForbidden
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Description != "" {
		company.Description = input.Description
	}
	if input.ImageURL != "" {
		company.ImageURL = input.ImageURL
	}
	if input.WorkingHoursStart != "" {
		company.WorkingHoursStart = input.WorkingHoursStart
	}
	if input.WorkingHoursEnd != "" {
		company.WorkingHoursEnd = input.WorkingHoursEnd
	}
	if input.SlotDurationMinutes != 0 {
		company.SlotDurationMinutes = input.SlotDurationMinutes
	}
	if err := validateSchedule(company.WorkingHoursStart, company.WorkingHoursEnd, company.SlotDurationMinutes); err != nil {
		return nil, err
	}
	company.UpdatedAt = time.Now()

	if err := s.Repo.Update(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

func (s *DefaultCompanyService) GetMine(ctx context.Context, identity models.Identity) (*models.Company, error) {
	return s.Repo.GetByOwnerID(ctx, identity.UserID)
}

func (s *DefaultCompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.Repo.GetAll(ctx)
}
