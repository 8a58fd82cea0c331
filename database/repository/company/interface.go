package companyRepo

import (
	"context"

	"slotbook/models"
)

// CompanyRepository defines methods for company data access.
type CompanyRepository interface {
	// Create inserts a new company record. Returns ErrOwnerTaken when the
	// owner already has a company.
	Create(ctx context.Context, company *models.Company) error
	// GetByID retrieves a company by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Company, error)
	// GetByOwnerID retrieves the company owned by the given user, or nil
	// when the owner has none.
	GetByOwnerID(ctx context.Context, ownerID string) (*models.Company, error)
	// GetAll retrieves all companies, newest first.
	GetAll(ctx context.Context) ([]models.Company, error)
	// Update replaces an existing company record.
	Update(ctx context.Context, company *models.Company) error
}
