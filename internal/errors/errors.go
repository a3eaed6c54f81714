// internal/errors/errors.go
package appErrors

import (
    "errors"
    "fmt"
)

// ValidationError reports a malformed or out-of-bounds input field.
// Reason is safe to return to the caller verbatim.
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string {
    return e.Reason
}

// Helper constructor
func NewValidation(reason string) error {
    return &ValidationError{Reason: reason}
}

// DuplicateEmailError reports a violation of the unique email constraint.
type DuplicateEmailError struct {
    Email string
}

func (e *DuplicateEmailError) Error() string {
    return "email already exists"
}

func NewDuplicateEmail(email string) error {
    return &DuplicateEmailError{Email: email}
}

// CustomerNotFoundError is returned when no customer matches the given ID.
type CustomerNotFoundError struct {
    CustomerID int
}

func (e *CustomerNotFoundError) Error() string {
    return fmt.Sprintf("customer with ID %d not found", e.CustomerID)
}

func NewCustomerNotFound(id int) error {
    return &CustomerNotFoundError{CustomerID: id}
}

// errors.As helpers so handlers can branch without knowing concrete types.

func IsValidation(err error) bool {
    var ve *ValidationError
    return errors.As(err, &ve)
}

func IsDuplicateEmail(err error) bool {
    var de *DuplicateEmailError
    return errors.As(err, &de)
}

func IsNotFound(err error) bool {
    var nf *CustomerNotFoundError
    return errors.As(err, &nf)
}
