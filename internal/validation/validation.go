// internal/validation/validation.go
package validation

import (
    "fmt"
    "strings"
    "unicode/utf8"

    appErrors "github.com/unclebandit/customer-registry/internal/errors"
)

// Field length limits mirror the storage column sizes.
const (
    MaxNameLen   = 200
    MaxPhoneLen  = 50
    MaxStatusLen = 50
    MaxNotesLen  = 500
)

const DefaultStatus = "active"

// CreateCustomerInput is the decoded POST /customers payload. Optional fields
// are pointers so an absent field is distinguishable from an empty string.
type CreateCustomerInput struct {
    Name   string  `json:"name"`
    Email  string  `json:"email"`
    Phone  *string `json:"phone"`
    Status *string `json:"status"`
    Notes  *string `json:"notes"`
}

// UpdateCustomerInput is the decoded PUT /customers/{id} payload. Every field
// is optional; only non-nil fields are applied to the stored record.
type UpdateCustomerInput struct {
    Name   *string `json:"name"`
    Email  *string `json:"email"`
    Phone  *string `json:"phone"`
    Status *string `json:"status"`
    Notes  *string `json:"notes"`
}

// Validate checks a create payload and applies defaults: status becomes
// "active" when absent, phone/notes stay null. It is pure — no I/O.
func (in *CreateCustomerInput) Validate() error {
    if in.Name == "" {
        return appErrors.NewValidation("name is required")
    }
    if in.Email == "" {
        return appErrors.NewValidation("email is required")
    }
    if err := checkLength(&in.Name, MaxNameLen, "name"); err != nil {
        return err
    }
    if err := checkEmail(in.Email); err != nil {
        return err
    }
    if err := checkLength(in.Phone, MaxPhoneLen, "phone"); err != nil {
        return err
    }
    if err := checkLength(in.Status, MaxStatusLen, "status"); err != nil {
        return err
    }
    if err := checkLength(in.Notes, MaxNotesLen, "notes"); err != nil {
        return err
    }

    if in.Status == nil {
        def := DefaultStatus
        in.Status = &def
    }
    return nil
}

// Validate checks an update payload. A payload with no fields at all is
// rejected; the store would treat it as a no-op, but callers should never
// get that far.
func (in *UpdateCustomerInput) Validate() error {
    if err := checkLength(in.Name, MaxNameLen, "name"); err != nil {
        return err
    }
    if in.Email != nil {
        if err := checkEmail(*in.Email); err != nil {
            return err
        }
    }
    if err := checkLength(in.Phone, MaxPhoneLen, "phone"); err != nil {
        return err
    }
    if err := checkLength(in.Status, MaxStatusLen, "status"); err != nil {
        return err
    }
    if err := checkLength(in.Notes, MaxNotesLen, "notes"); err != nil {
        return err
    }

    if in.Name == nil && in.Email == nil && in.Phone == nil && in.Status == nil && in.Notes == nil {
        return appErrors.NewValidation("no fields provided for update")
    }
    return nil
}

// checkLength bounds the field in characters, not bytes, so multi-byte names
// within the limit are accepted.
func checkLength(value *string, max int, field string) error {
    if value == nil {
        return nil
    }
    if utf8.RuneCountInString(*value) > max {
        return appErrors.NewValidation(fmt.Sprintf("%s exceeds %d characters", field, max))
    }
    return nil
}

// checkEmail is a minimal syntactic check, not full RFC validation: the value
// must contain '@' with a non-empty local part before the first one.
func checkEmail(email string) error {
    if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") {
        return appErrors.NewValidation("email must contain '@' and a local part")
    }
    return nil
}
