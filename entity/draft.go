package entity

// Draft is the creator's tier selection, held in local storage between
// selecting a tier and completing payment. It exists if and only if the user
// is mid-wizard; Tier carries the display label (e.g. "Premium"), the same
// value the selection card showed.
type Draft struct {
	EventID string `json:"eventId"`
	StallID string `json:"stallId"`
	Tier    string `json:"tier"`
	Price   int    `json:"price"`
}
