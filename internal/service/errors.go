package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned when there's a conflict (e.g., duplicate)
	ErrConflict = errors.New("resource conflict")

	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")

	// ErrEnquiryNotFound is returned when an enquiry is not found
	ErrEnquiryNotFound = errors.New("enquiry not found")

	// ErrLocationMismatch is returned when a contact person references an
	// office or plant that belongs to a different company
	ErrLocationMismatch = errors.New("office or plant does not belong to the company")
)
