package usecase

import (
	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

// Row -> entity assembly. Each assembler pulls every semantic field through
// the candidate lists in schema.go and the normalizers in normalize.go.

func assemblePartner(row seatable.Row) *entity.Partner {
	name := row.Str("", colPartnerName...)
	return &entity.Partner{
		Email:        row.Str("", colPartnerEmail...),
		Name:         name,
		Company:      name,
		MessagePrice: row.Float(0.95, colPartnerPrice...),
		Type:         row.Str("white_label", colPartnerType...),
	}
}

func assembleCompany(row seatable.Row) entity.Company {
	freeMinutes := int(row.Float(0, colCompanyFreeMinutes...))

	// The minute allowance is the more trustworthy tier signal; the stored
	// package column only breaks ties when inference comes up empty.
	monthlyTier := TierFromMinutes(freeMinutes)
	if monthlyTier == "" {
		monthlyTier = TranslateTier(row.Str("", colCompanyPkgMonthly...))
	}

	return entity.Company{
		ID:        row.ID(),
		PartnerID: row.Str("", colCompanyPartnerID...),
		Name:      row.Str("", colCompanyName...),
		Email:     row.Str("", colCompanyEmail...),

		PackageSetup:   TranslateTier(row.Str("", colCompanyPkgSetup...)),
		PackageMonthly: monthlyTier,

		SetupFee:          row.Float(0, colCompanySetupFee...),
		MonthlyFee:        row.Float(0, colCompanyMonthlyFee...),
		WhatsappFee:       row.Float(0, colCompanyWAFee...),
		EmailFee:          row.Float(0, colCompanyEmailFee...),
		AdditionalLineFee: row.Float(0, colCompanyLineFee...),
		AdditionalNumFee:  row.Float(0, colCompanyNumFee...),
		TotalMonthly:      row.Float(0, colCompanyTotal...),

		WhatsappEnabled: row.Flag(colCompanyWAEnabled...),
		EmailEnabled:    row.Flag(colCompanyEmailEnabled...),

		FreeMinutes:       freeMinutes,
		AdditionalLines:   int(row.Float(0, colCompanyAddLines...)),
		AdditionalNumbers: int(row.Float(0, colCompanyAddNumbers...)),

		StartDate:         DayOnly(row.Str("", colCompanyStartDate...)),
		ContractStartDate: DayOnly(row.Str("", colCompanyContractStart...)),
		EndDate:           DayOnly(row.Str("", colCompanyEndDate...)),

		Status:         TranslateStatus(row.Str("", colCompanyStatus...)),
		Notes:          row.Str("", colCompanyNotes...),
		AccountManager: row.Str("", colCompanyManager...),
	}
}

func assembleLead(row seatable.Row) entity.Lead {
	return entity.Lead{
		ID:               row.ID(),
		CompanyName:      row.Str("", colLeadCompanyName...),
		City:             row.Str("", colLeadCity...),
		Country:          row.Str("", colLeadCountry...),
		PartnerID:        row.Str("", colLeadPartnerID...),
		PartnerName:      row.Str("", colLeadPartnerName...),
		RegistrationDate: DayOnly(row.Str("", colLeadRegistration...)),
		ProtectionEnd:    DayOnly(row.Str("", colLeadProtectionEnd...)),
		Extended:         row.Flag(colLeadExtended...),
		Status:           row.Str("protected", colLeadStatus...),
	}
}

// companyActive applies the active-company invariant: no resolved end date
// means the company still belongs to the partner's active book.
func companyActive(row seatable.Row) bool {
	return !EndDateSet(row.Str("", colCompanyEndDate...))
}
