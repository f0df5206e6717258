package usecase

// Column candidate lists for each table the portal reads. SeaTable renames
// columns to opaque alias tokens between base revisions, so every semantic
// field carries its full alias history here: most current key first, older
// aliases after. Rows carry at most one of them. Extending these lists is a
// data change, not a code change.

const (
	tablePartners  = "Partners"
	tableCompanies = "Companies"
	tableLeads     = "LeadProtection"
)

var (
	colPartnerEmail    = []string{"email", "s9S4"}
	colPartnerName     = []string{"name", "Doq7"}
	colPartnerPrice    = []string{"message_price", "774a"}
	colPartnerType     = []string{"type"}
	colPartnerPassword = []string{"password_hash", "xK33"}
)

var (
	colCompanyName       = []string{"ma2n", "company_name"}
	colCompanyPartnerID  = []string{"0000", "partner_id"}
	colCompanyEmail      = []string{"bQ3x", "contact_email"}
	colCompanyPkgSetup   = []string{"Hk2f", "package_setup"}
	colCompanyPkgMonthly = []string{"t9Lw", "package_monthly"}

	colCompanySetupFee   = []string{"Rz41", "setup_fee"}
	colCompanyMonthlyFee = []string{"cW8d", "monthly_fee"}
	colCompanyWAFee      = []string{"p6Tk", "whatsapp_fee"}
	colCompanyEmailFee   = []string{"eM2r", "email_fee"}
	colCompanyLineFee    = []string{"L3vq", "additional_line_fee"}
	colCompanyNumFee     = []string{"n8Jc", "additional_number_fee"}
	colCompanyTotal      = []string{"xT0a", "total_monthly"}

	colCompanyWAEnabled    = []string{"wA7p", "whatsapp_enabled"}
	colCompanyEmailEnabled = []string{"eN4b", "email_enabled"}

	colCompanyFreeMinutes = []string{"fM1n", "free_minutes"}
	colCompanyAddLines    = []string{"aL5x", "additional_lines"}
	colCompanyAddNumbers  = []string{"aN6y", "additional_numbers"}

	colCompanyStartDate     = []string{"sD8t", "start_date"}
	colCompanyContractStart = []string{"cS9u", "contract_start"}
	colCompanyEndDate       = []string{"eD2z", "end_date"}

	colCompanyStatus  = []string{"sT3k", "status"}
	colCompanyNotes   = []string{"nO1e", "notes"}
	colCompanyManager = []string{"aM4g", "account_manager"}
)

var (
	colLeadCompanyName   = []string{"0000", "company_name"}
	colLeadCity          = []string{"gOM7", "city"}
	colLeadCountry       = []string{"ld4j", "country"}
	colLeadPartnerID     = []string{"uBXT", "partner_id"}
	colLeadPartnerName   = []string{"WDY8", "partner_name"}
	colLeadRegistration  = []string{"86us", "registration_date"}
	colLeadProtectionEnd = []string{"5niV", "protection_end"}
	colLeadExtended      = []string{"37u2", "extended"}
	colLeadStatus        = []string{"j0p2", "status"}
)

// Lead updates go out under the semantic key names; only these three fields
// are mutable after creation.
var leadMutableFields = map[string]bool{
	"protection_end": true,
	"extended":       true,
	"status":         true,
}
