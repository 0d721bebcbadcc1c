package model

import "time"

// Client is a directory entry. Projects reference clients by name only;
// there is no foreign key between the two.
type Client struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Company      string    `json:"company,omitempty"`
	YoutubeURL   string    `json:"youtube_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
