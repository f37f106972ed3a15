package models

// Profile is a farmer profile as submitted through the profile form.
//
// The password is persisted exactly as submitted, without hashing; this
// is a known limitation (see DESIGN.md). Do not rely on this table for
// real credentials.
type Profile struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	FarmingType string `json:"farmingtype"`
	Description string `json:"description"`
}
