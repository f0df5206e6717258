package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

type LoginPartnerUseCase struct {
	Gateway TableGateway
}

func NewLoginPartnerUseCase(gateway TableGateway) *LoginPartnerUseCase {
	return &LoginPartnerUseCase{Gateway: gateway}
}

// Execute looks the partner up by email (trimmed, case-insensitive) and
// optionally verifies the password. If either the supplied password or the
// stored credential is absent, no check happens; legacy rows have no
// credential at all and must stay reachable.
func (uc *LoginPartnerUseCase) Execute(ctx context.Context, input LoginInput) (*entity.Partner, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "email is required"}
	}

	rows, err := uc.Gateway.ListRows(ctx, tablePartners)
	if err != nil {
		return nil, gatewayError(err)
	}

	var match seatable.Row
	for _, row := range rows {
		stored := strings.ToLower(strings.TrimSpace(row.Str("", colPartnerEmail...)))
		if stored == email {
			match = row
			break
		}
	}
	if match == nil {
		return nil, &DomainError{Code: "NOT_FOUND", Message: "partner not found"}
	}

	storedCredential := match.Str("", colPartnerPassword...)
	if input.Password != "" && storedCredential != "" {
		if !credentialMatches(storedCredential, input.Password) {
			return nil, &DomainError{Code: "INVALID_PASSWORD", Message: "invalid password"}
		}
	}

	return assemblePartner(match), nil
}

// credentialMatches verifies the supplied password against the stored
// credential. Rows written since the 2024 migration hold bcrypt hashes;
// older rows still carry the value verbatim.
func credentialMatches(stored, password string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored == password
}
