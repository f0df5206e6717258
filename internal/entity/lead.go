package entity

// Lead is a protected sales lead registered by a partner.
// After creation only ProtectionEnd, Extended and Status may change.
type Lead struct {
	ID               string `json:"id"`
	CompanyName      string `json:"company_name"`
	City             string `json:"city"`
	Country          string `json:"country"`
	PartnerID        string `json:"partner_id"`
	PartnerName      string `json:"partner_name"`
	RegistrationDate string `json:"registration_date"`
	ProtectionEnd    string `json:"protection_end"`
	Extended         bool   `json:"extended"`
	Status           string `json:"status"` // "protected" on creation
}
