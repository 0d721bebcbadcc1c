package model

import "time"

// ProjectType selects the workflow-step catalog a project follows.
type ProjectType string

const (
	TypeVideo     ProjectType = "video"
	TypeThumbnail ProjectType = "thumbnail"
	TypeOther     ProjectType = "other"
)

// ProjectStatus is a free-standing lifecycle field. There is no transition
// graph: status changes only through explicit edits, and it is never derived
// from step completion.
type ProjectStatus string

const (
	StatusNotStarted ProjectStatus = "not_started"
	StatusWorking    ProjectStatus = "working"
	StatusDelay      ProjectStatus = "delay"
	StatusComplete   ProjectStatus = "complete"
	StatusCancel     ProjectStatus = "cancel"
)

type Project struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	Title          string          `json:"title"`
	Type           ProjectType     `json:"type"`
	ClientName     string          `json:"client_name"`
	Price          float64         `json:"price"`
	Quantity       int             `json:"quantity"`
	Link           string          `json:"link,omitempty"`
	SourceLink     string          `json:"source_link,omitempty"`
	Notes          string          `json:"notes,omitempty"`
	Status         ProjectStatus   `json:"status"`
	VideoSteps     map[string]bool `json:"video_steps,omitempty"`
	ThumbnailSteps map[string]bool `json:"thumbnail_steps,omitempty"`
	StartDate      *time.Time      `json:"start_date,omitempty"`
	Deadline       *time.Time      `json:"deadline,omitempty"`
	DelayDays      *int            `json:"delay_days,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Steps returns the step-completion map for the project's type,
// or nil for type "other".
func (p *Project) Steps() map[string]bool {
	switch p.Type {
	case TypeVideo:
		return p.VideoSteps
	case TypeThumbnail:
		return p.ThumbnailSteps
	}
	return nil
}
