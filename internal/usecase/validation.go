package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateCreateLeadInput checks the caller-supplied lead fields. City is
// optional; everything else must be present before any upstream call.
func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.CompanyName) == "" {
		errors = append(errors, ValidationError{"company_name", "is required"})
	}
	if strings.TrimSpace(input.Country) == "" {
		errors = append(errors, ValidationError{"country", "is required"})
	}
	if strings.TrimSpace(input.PartnerID) == "" {
		errors = append(errors, ValidationError{"partner_id", "is required"})
	}
	if strings.TrimSpace(input.PartnerName) == "" {
		errors = append(errors, ValidationError{"partner_name", "is required"})
	}
	if strings.TrimSpace(input.RegistrationDate) == "" {
		errors = append(errors, ValidationError{"registration_date", "is required"})
	}
	if strings.TrimSpace(input.ProtectionEnd) == "" {
		errors = append(errors, ValidationError{"protection_end", "is required"})
	}

	return errors
}

func validationError(errs []ValidationError) error {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "validation failed: " + strings.Join(msgs, ", "),
	}
}
