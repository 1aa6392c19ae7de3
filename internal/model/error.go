package model

import "errors"

// ErrorKind classifies a domain error for callers that need to map it to a
// transport status or a retry decision. Storage-level failures are not
// represented here: any error that is not a DomainError is an infrastructure
// failure, and the whole operation is safe to retry.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindConflict   ErrorKind = "conflict"
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeNameRequired      = "NAME_REQUIRED"
	ErrCodeEmptyOrder        = "EMPTY_ORDER"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeCustomerNotFound  = "CUSTOMER_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeCategoryNameTaken = "CATEGORY_NAME_TAKEN"
	ErrCodeAlreadyMember     = "ALREADY_MEMBER"
	ErrCodePasswordRequired  = "PASSWORD_REQUIRED"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure attributable to the caller.
type DomainError struct {
	Kind    ErrorKind
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNameRequired      = NewDomainError(KindValidation, ErrCodeNameRequired, "Name is required")
	ErrEmptyOrder        = NewDomainError(KindValidation, ErrCodeEmptyOrder, "Order must contain at least one line")
	ErrInvalidQuantity   = NewDomainError(KindValidation, ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrPasswordRequired  = NewDomainError(KindValidation, ErrCodePasswordRequired, "Password is required")
	ErrProductNotFound   = NewDomainError(KindNotFound, ErrCodeProductNotFound, "One or more products not found")
	ErrCustomerNotFound  = NewDomainError(KindNotFound, ErrCodeCustomerNotFound, "Customer not found")
	ErrOrderNotFound     = NewDomainError(KindNotFound, ErrCodeOrderNotFound, "Order not found")
	ErrCategoryNameTaken = NewDomainError(KindConflict, ErrCodeCategoryNameTaken, "Category name already exists")
	ErrAlreadyMember     = NewDomainError(KindConflict, ErrCodeAlreadyMember, "Customer is already a member")
)

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == kind
}

// IsNotFound reports whether err represents a missing entity.
func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// IsValidation reports whether err represents malformed caller input.
func IsValidation(err error) bool { return IsKind(err, KindValidation) }

// IsConflict reports whether err represents a uniqueness conflict.
func IsConflict(err error) bool { return IsKind(err, KindConflict) }

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
