package company

import "errors"

var (
	// ErrNotFound signals that the company id has no record.
	ErrNotFound = errors.New("company not found")
	// ErrForbidden signals an authenticated caller who is not the owner.
	ErrForbidden = errors.New("not allowed to modify this company")
	// ErrOwnerHasCompany signals the one-company-per-owner constraint.
	ErrOwnerHasCompany = errors.New("user already has a company")
	// ErrInvalidInput signals missing or malformed company fields.
	ErrInvalidInput = errors.New("invalid company input")
)
