package entity

// Partner is an identity record owned entirely by the SeaTable base.
// The API only ever reads it for login lookups.
type Partner struct {
	Email        string  `json:"email"`
	Name         string  `json:"name"`
	Company      string  `json:"company"`
	MessagePrice float64 `json:"message_price"` // price per message unit, defaults to 0.95
	Type         string  `json:"type"`          // "white_label" when unset
}
