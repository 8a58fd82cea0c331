package companyRepo

import (
	"context"
	"sort"
	"sync"

	"slotbook/models"
)

// MemoryCompanyRepo is an in-memory CompanyRepository used by tests and by
// local development without a MongoDB instance.
type MemoryCompanyRepo struct {
	mu        sync.RWMutex
	companies map[string]models.Company
}

// NewMemoryCompanyRepo creates an empty in-memory company repository.
func NewMemoryCompanyRepo() *MemoryCompanyRepo {
	return &MemoryCompanyRepo{companies: make(map[string]models.Company)}
}

func (r *MemoryCompanyRepo) Create(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.companies {
		if c.OwnerID == company.OwnerID {
			return ErrOwnerTaken
		}
	}
	r.companies[company.ID] = *company
	return nil
}

func (r *MemoryCompanyRepo) GetByID(ctx context.Context, id string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.companies[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (r *MemoryCompanyRepo) GetByOwnerID(ctx context.Context, ownerID string) (*models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			company := c
			return &company, nil
		}
	}
	return nil, nil
}

func (r *MemoryCompanyRepo) GetAll(ctx context.Context) ([]models.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	companies := make([]models.Company, 0, len(r.companies))
	for _, c := range r.companies {
		companies = append(companies, c)
	}
	sort.Slice(companies, func(i, j int) bool {
		return companies[i].CreatedAt.After(companies[j].CreatedAt)
	})
	return companies, nil
}

func (r *MemoryCompanyRepo) Update(ctx context.Context, company *models.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.companies[company.ID]; !ok {
		return ErrNotFound
	}
	r.companies[company.ID] = *company
	return nil
}
