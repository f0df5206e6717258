package entity

// Company is a partner's customer account as stored in SeaTable.
// A company is active for its partner while EndDate is unset.
type Company struct {
	ID        string `json:"id"`
	PartnerID string `json:"partner_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`

	PackageSetup   string `json:"package_setup"`
	PackageMonthly string `json:"package_monthly"`

	SetupFee          float64 `json:"setup_fee"`
	MonthlyFee        float64 `json:"monthly_fee"`
	WhatsappFee       float64 `json:"whatsapp_fee"`
	EmailFee          float64 `json:"email_fee"`
	AdditionalLineFee float64 `json:"additional_line_fee"`
	AdditionalNumFee  float64 `json:"additional_number_fee"`
	TotalMonthly      float64 `json:"total_monthly"`

	WhatsappEnabled bool `json:"whatsapp_enabled"`
	EmailEnabled    bool `json:"email_enabled"`

	FreeMinutes       int `json:"free_minutes"`
	AdditionalLines   int `json:"additional_lines"`
	AdditionalNumbers int `json:"additional_numbers"`

	StartDate         string `json:"start_date"`
	ContractStartDate string `json:"contract_start_date"`
	EndDate           string `json:"end_date"`

	Status         string `json:"status"` // active, cancelled, pending
	Notes          string `json:"notes"`
	AccountManager string `json:"account_manager"`
}

// CompanySummary is the minimal projection used by the global listing.
type CompanySummary struct {
	Name      string `json:"name"`
	PartnerID string `json:"partner_id"`
}

// CompanyRef identifies a single company row for follow-up writes.
type CompanyRef struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	PartnerID string `json:"partner_id"`
}
