package usecase

import (
	"context"

	"github.com/amiracx/partner-portal-api/internal/entity"
)

type ListCompaniesUseCase struct {
	Gateway TableGateway
}

func NewListCompaniesUseCase(gateway TableGateway) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{Gateway: gateway}
}

// Execute returns the global name/partner projection of every company row
// that has a resolvable name.
func (uc *ListCompaniesUseCase) Execute(ctx context.Context) ([]entity.CompanySummary, error) {
	rows, err := uc.Gateway.ListRows(ctx, tableCompanies)
	if err != nil {
		return nil, gatewayError(err)
	}

	companies := []entity.CompanySummary{}
	for _, row := range rows {
		name := row.Str("", colCompanyName...)
		if name == "" {
			continue
		}
		companies = append(companies, entity.CompanySummary{
			Name:      name,
			PartnerID: row.Str("", colCompanyPartnerID...),
		})
	}
	return companies, nil
}

type ListPartnerCompaniesUseCase struct {
	Gateway TableGateway
}

func NewListPartnerCompaniesUseCase(gateway TableGateway) *ListPartnerCompaniesUseCase {
	return &ListPartnerCompaniesUseCase{Gateway: gateway}
}

// Execute returns the partner's active companies, fully assembled. A row
// with a set end date has left the partner's book and is skipped.
func (uc *ListPartnerCompaniesUseCase) Execute(ctx context.Context, partnerID string) ([]entity.Company, error) {
	rows, err := uc.Gateway.ListRows(ctx, tableCompanies)
	if err != nil {
		return nil, gatewayError(err)
	}

	companies := []entity.Company{}
	for _, row := range rows {
		if row.Str("", colCompanyPartnerID...) != partnerID {
			continue
		}
		if !companyActive(row) {
			continue
		}
		companies = append(companies, assembleCompany(row))
	}
	return companies, nil
}

type FindCompanyUseCase struct {
	Gateway TableGateway
}

func NewFindCompanyUseCase(gateway TableGateway) *FindCompanyUseCase {
	return &FindCompanyUseCase{Gateway: gateway}
}

// Execute finds the first active company matching name and partner and
// returns its identity projection.
func (uc *FindCompanyUseCase) Execute(ctx context.Context, name, partnerID string) (*entity.CompanyRef, error) {
	rows, err := uc.Gateway.ListRows(ctx, tableCompanies)
	if err != nil {
		return nil, gatewayError(err)
	}

	for _, row := range rows {
		if row.Str("", colCompanyName...) != name {
			continue
		}
		if row.Str("", colCompanyPartnerID...) != partnerID {
			continue
		}
		if !companyActive(row) {
			continue
		}
		return &entity.CompanyRef{
			ID:        row.ID(),
			Name:      name,
			PartnerID: partnerID,
		}, nil
	}
	return nil, &DomainError{Code: "NOT_FOUND", Message: "company not found"}
}
