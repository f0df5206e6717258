package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amiracx/partner-portal-api/internal/infra/integration/seatable"
)

func TestListLeadsNormalizesRows(t *testing.T) {
	gateway := new(MockTableGateway)
	gateway.On("ListRows", mock.Anything, "LeadProtection").Return([]seatable.Row{
		{
			"_id":  "l1",
			"0000": "ACME GmbH",
			"gOM7": "Berlin",
			"ld4j": "DE",
			"uBXT": "P1",
			"WDY8": "Alpha Comms",
			"86us": "2025-01-10T08:00:00+01:00",
			"5niV": "2025-07-10T00:00:00+02:00",
			"37u2": true,
			"j0p2": "extended",
		},
		{"_id": "l2", "company_name": "Beta AG", "country": "AT", "partner_id": "P2"},
	}, nil)

	uc := NewListLeadsUseCase(gateway)

	leads, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 2)

	assert.Equal(t, "l1", leads[0].ID)
	assert.Equal(t, "2025-01-10", leads[0].RegistrationDate)
	assert.Equal(t, "2025-07-10", leads[0].ProtectionEnd)
	assert.True(t, leads[0].Extended)
	assert.Equal(t, "extended", leads[0].Status)

	assert.Equal(t, "Beta AG", leads[1].CompanyName)
	assert.False(t, leads[1].Extended)
	assert.Equal(t, "protected", leads[1].Status, "status defaults to protected")
}

func TestCreateLeadForcesInitialState(t *testing.T) {
	gateway := new(MockTableGateway)

	var sent []seatable.Row
	gateway.On("AppendRows", mock.Anything, "LeadProtection", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).([]seatable.Row)
		}).
		Return(nil)

	uc := NewCreateLeadUseCase(gateway)

	err := uc.Execute(context.Background(), CreateLeadInput{
		CompanyName:      "ACME GmbH",
		Country:          "DE",
		PartnerID:        "P1",
		PartnerName:      "Alpha Comms",
		RegistrationDate: "2025-01-10",
		ProtectionEnd:    "2025-07-10",
		// the caller tries to smuggle in a different initial state
		Extended: true,
		Status:   "modified-by-partner",
	})
	require.NoError(t, err)

	require.Len(t, sent, 1)
	assert.Equal(t, false, sent[0]["extended"])
	assert.Equal(t, "protected", sent[0]["status"])
	assert.Equal(t, "", sent[0]["city"], "city defaults to empty")
}

func TestCreateLeadValidationFailsBeforeUpstream(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := NewCreateLeadUseCase(gateway)

	err := uc.Execute(context.Background(), CreateLeadInput{
		Country:   "DE",
		PartnerID: "P1",
	})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*DomainError).Code)
	assert.Contains(t, err.Error(), "company_name")

	gateway.AssertNotCalled(t, "AppendRows", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateLeadDropsImmutableFields(t *testing.T) {
	gateway := new(MockTableGateway)

	var sent []seatable.RowUpdate
	gateway.On("UpdateRows", mock.Anything, "LeadProtection", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).([]seatable.RowUpdate)
		}).
		Return(nil)

	uc := NewUpdateLeadUseCase(gateway)

	err := uc.Execute(context.Background(), UpdateLeadInput{
		LeadID: "l1",
		Fields: map[string]interface{}{
			"protection_end": "2025-10-10",
			"extended":       true,
			"status":         "modified-by-partner",
			"company_name":   "Hijacked Name", // must never reach the base
			"partner_id":     "P9",
		},
	})
	require.NoError(t, err)

	require.Len(t, sent, 1)
	assert.Equal(t, "l1", sent[0].RowID)
	assert.Equal(t, seatable.Row{
		"protection_end": "2025-10-10",
		"extended":       true,
		"status":         "modified-by-partner",
	}, sent[0].Row)
}

func TestUpdateLeadRequiresID(t *testing.T) {
	gateway := new(MockTableGateway)
	uc := NewUpdateLeadUseCase(gateway)

	err := uc.Execute(context.Background(), UpdateLeadInput{Fields: map[string]interface{}{"extended": true}})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*DomainError).Code)
	gateway.AssertNotCalled(t, "UpdateRows", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateLeadUpstreamFailure(t *testing.T) {
	gateway := new(MockTableGateway)
	gateway.On("AppendRows", mock.Anything, "LeadProtection", mock.Anything).Return(seatable.ErrUpstream)

	uc := NewCreateLeadUseCase(gateway)

	err := uc.Execute(context.Background(), CreateLeadInput{
		CompanyName:      "ACME GmbH",
		Country:          "DE",
		PartnerID:        "P1",
		PartnerName:      "Alpha Comms",
		RegistrationDate: "2025-01-10",
		ProtectionEnd:    "2025-07-10",
	})
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", err.(*TechnicalError).Code)
}
