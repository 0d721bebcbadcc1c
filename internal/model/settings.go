package model

import "time"

// Settings are per-user display preferences. They are loaded once per
// request and passed down explicitly; no package-level state.
type Settings struct {
	UserID    string    `json:"user_id"`
	Theme     string    `json:"theme"`    // dark / light
	Currency  string    `json:"currency"` // ISO 4217 code
	WeekStart string    `json:"week_start"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DefaultSettings returns the preferences applied before a user saves any.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:    userID,
		Theme:     "dark",
		Currency:  "USD",
		WeekStart: "sunday",
	}
}
