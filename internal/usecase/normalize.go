package usecase

import "strings"

// Value normalizers. Each is a pure function from a raw SeaTable value to
// the semantic value the portal serves. The ID->label tables are living
// data: single-select columns get new internal option IDs whenever the base
// schema migrates, and new IDs belong here, not at call sites.

// packageTierLabels maps SeaTable single-select option IDs to package tier
// labels.
var packageTierLabels = map[string]string{
	"453188": "starter",
	"453189": "business",
	"453190": "premium",
	"621904": "starter",  // post-migration option IDs, 2024 base rebuild
	"621905": "business",
	"621906": "premium",
}

// companyStatusLabels maps SeaTable single-select option IDs to company
// status labels.
var companyStatusLabels = map[string]string{
	"890217": "active",
	"890218": "cancelled",
	"890219": "pending",
}

// Free-minute thresholds for tier inference. The stored package column has
// been through enough migrations that the minute allowance is the more
// reliable signal.
const (
	premiumMinutes  = 1000
	businessMinutes = 500
	starterMinutes  = 100
)

// DayOnly truncates a raw timestamp string to its calendar-date portion.
// Already day-only strings pass through unchanged; absent stays empty.
func DayOnly(raw string) string {
	if i := strings.IndexByte(raw, 'T'); i >= 0 {
		return raw[:i]
	}
	return raw
}

// TranslateTier resolves a stored package value to a tier label: option IDs
// translate through the table, recognized labels pass through, anything
// else non-empty collapses to "custom". Empty stays empty.
func TranslateTier(raw string) string {
	if raw == "" {
		return ""
	}
	if label, ok := packageTierLabels[raw]; ok {
		return label
	}
	if isTierLabel(raw) {
		return raw
	}
	return "custom"
}

// TranslateStatus resolves a stored status value to one of the known
// labels, defaulting to "active" for anything unrecognized or absent.
func TranslateStatus(raw string) string {
	if label, ok := companyStatusLabels[raw]; ok {
		return label
	}
	switch raw {
	case "active", "cancelled", "pending":
		return raw
	}
	return "active"
}

// TierFromMinutes infers the package tier from the free-minute allowance by
// descending threshold band. Below the lowest band the tier is unknown and
// the caller falls back to the stored package column.
func TierFromMinutes(minutes int) string {
	switch {
	case minutes >= premiumMinutes:
		return "premium"
	case minutes >= businessMinutes:
		return "business"
	case minutes >= starterMinutes:
		return "starter"
	default:
		return ""
	}
}

// EndDateSet reports whether a resolved end-date value actually marks a
// termination. Absent, empty and the textual null sentinel all mean the
// company is still active.
func EndDateSet(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	return !strings.EqualFold(trimmed, "null")
}

func isTierLabel(s string) bool {
	for _, label := range packageTierLabels {
		if s == label {
			return true
		}
	}
	return false
}
