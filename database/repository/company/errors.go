package companyRepo

import "errors"

var (
	// ErrNotFound is returned when no company matches the query.
	ErrNotFound = errors.New("company not found")
	// ErrOwnerTaken is returned when the owner already has a company.
	ErrOwnerTaken = errors.New("owner already has a company")
)
