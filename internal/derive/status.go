package derive

import "focalflow/internal/model"

// StatusCategory is the normalized bucket a project's status falls into.
type StatusCategory string

const (
	CategoryComplete   StatusCategory = "complete"
	CategoryCancelled  StatusCategory = "cancelled"
	CategoryDelayed    StatusCategory = "delayed"
	CategoryNotStarted StatusCategory = "not_started"
	CategoryInProgress StatusCategory = "in_progress"
	CategoryUnknown    StatusCategory = "unknown"
)

// StatusMeta describes how a project's status renders: badge category,
// icon name, color tag, label, and the resolved stage as sub-label.
type StatusMeta struct {
	Category StatusCategory `json:"category"`
	Icon     string         `json:"icon"`
	Color    string         `json:"color"`
	Label    string         `json:"label"`
	SubLabel string         `json:"sub_label"`
}

// ClassifyStatus maps the lifecycle status to a fixed descriptor. Any value
// outside the known enum besides the terminal ones counts as in-progress;
// the empty string falls through to the unknown descriptor.
func ClassifyStatus(p *model.Project) StatusMeta {
	stage := StageLabel(p)

	switch p.Status {
	case model.StatusComplete:
		return StatusMeta{CategoryComplete, "check-circle", "#3B82F6", "Complete", stage}
	case model.StatusCancel:
		return StatusMeta{CategoryCancelled, "x-circle", "#EF4444", "Cancelled", stage}
	case model.StatusDelay:
		return StatusMeta{CategoryDelayed, "clock", "#F97316", "Delayed", stage}
	case model.StatusNotStarted:
		return StatusMeta{CategoryNotStarted, "play-circle", "#64748B", "Not started", stage}
	case "":
		return StatusMeta{CategoryUnknown, "circle", "#94A3B8", "Unknown", stage}
	default:
		// working, plus any unrecognized non-terminal value
		return StatusMeta{CategoryInProgress, "settings", "#10B981", "In progress", stage}
	}
}
