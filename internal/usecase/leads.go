package usecase

import (
	"context"

	"github.com/amiracx/partner-portal-api/internal/entity"
	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

type ListLeadsUseCase struct {
	Gateway TableGateway
}

func NewListLeadsUseCase(gateway TableGateway) *ListLeadsUseCase {
	return &ListLeadsUseCase{Gateway: gateway}
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context) ([]entity.Lead, error) {
	rows, err := uc.Gateway.ListRows(ctx, tableLeads)
	if err != nil {
		return nil, gatewayError(err)
	}

	leads := make([]entity.Lead, 0, len(rows))
	for _, row := range rows {
		leads = append(leads, assembleLead(row))
	}
	return leads, nil
}

type CreateLeadUseCase struct {
	Gateway TableGateway
}

func NewCreateLeadUseCase(gateway TableGateway) *CreateLeadUseCase {
	return &CreateLeadUseCase{Gateway: gateway}
}

// Execute registers a new protected lead. Validation fails before anything
// goes upstream; extended and status are forced to their initial values no
// matter what the caller sent.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) error {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return validationError(errs)
	}

	row := seatable.Row{
		"company_name":      input.CompanyName,
		"city":              input.City,
		"country":           input.Country,
		"partner_id":        input.PartnerID,
		"partner_name":      input.PartnerName,
		"registration_date": input.RegistrationDate,
		"protection_end":    input.ProtectionEnd,
		"extended":          false,
		"status":            "protected",
	}

	if err := uc.Gateway.AppendRows(ctx, tableLeads, []seatable.Row{row}); err != nil {
		return gatewayError(err)
	}
	return nil
}

type UpdateLeadUseCase struct {
	Gateway TableGateway
}

func NewUpdateLeadUseCase(gateway TableGateway) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Gateway: gateway}
}

// Execute patches a lead. Any field outside the mutable set is silently
// dropped; everything but the protection window and status is immutable
// after creation.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, input UpdateLeadInput) error {
	if input.LeadID == "" {
		return &DomainError{Code: "VALIDATION_ERROR", Message: "lead id is required"}
	}

	patch := seatable.Row{}
	for field, value := range input.Fields {
		if leadMutableFields[field] {
			patch[field] = value
		}
	}

	update := seatable.RowUpdate{RowID: input.LeadID, Row: patch}
	if err := uc.Gateway.UpdateRows(ctx, tableLeads, []seatable.RowUpdate{update}); err != nil {
		return gatewayError(err)
	}
	return nil
}
