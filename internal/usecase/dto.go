package usecase

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateLeadInput struct {
	CompanyName      string `json:"company_name"`
	City             string `json:"city"`
	Country          string `json:"country"`
	PartnerID        string `json:"partner_id"`
	PartnerName      string `json:"partner_name"`
	RegistrationDate string `json:"registration_date"`
	ProtectionEnd    string `json:"protection_end"`

	// Accepted on the wire but always overridden at creation.
	Extended bool   `json:"extended"`
	Status   string `json:"status"`
}

// UpdateLeadInput carries an arbitrary field set; everything outside the
// mutable lead fields is dropped before the patch goes upstream.
type UpdateLeadInput struct {
	LeadID string
	Fields map[string]interface{}
}
