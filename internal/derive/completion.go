package derive

import (
	"time"

	"focalflow/internal/model"
)

// CompletionDays returns how many whole days the project took, rounding
// partial days up. The end bound is the last-update timestamp, or now when
// the record has none. ok is false unless the status is complete and a
// start date is present.
func CompletionDays(p *model.Project, now time.Time) (int, bool) {
	if p.Status != model.StatusComplete || p.StartDate == nil {
		return 0, false
	}

	end := p.UpdatedAt
	if end.IsZero() {
		end = now
	}

	diff := end.Sub(*p.StartDate)
	if diff < 0 {
		diff = -diff
	}

	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) != 0 {
		days++
	}
	return days, true
}
