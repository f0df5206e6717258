package usecase

import (
	"errors"

	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

// DomainError is a business-rule failure: the request was understood and
// rejected. Codes: NOT_FOUND, INVALID_PASSWORD, VALIDATION_ERROR.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure: the upstream base could not
// be reached or refused us. Codes: AUTHENTICATION_FAILED, UPSTREAM_UNAVAILABLE.
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

// gatewayError maps seatable sentinel errors to technical errors with a
// fixed, short message. Upstream 4xx and 5xx are deliberately not
// distinguished; the source never did and the code leaves room to split
// them later.
func gatewayError(err error) error {
	if errors.Is(err, seatable.ErrAuthentication) {
		return &TechnicalError{Code: "AUTHENTICATION_FAILED", Message: "upstream authentication failed"}
	}
	return &TechnicalError{Code: "UPSTREAM_UNAVAILABLE", Message: "database connection failed"}
}
