package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focalflow/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCompletionDays(t *testing.T) {
	now := date(2024, time.June, 1)
	start := date(2024, time.January, 1)
	updated := date(2024, time.January, 11)

	tests := []struct {
		name     string
		project  model.Project
		wantDays int
		wantOK   bool
	}{
		{
			name:     "complete with start and update",
			project:  model.Project{Status: model.StatusComplete, StartDate: &start, UpdatedAt: updated},
			wantDays: 10,
			wantOK:   true,
		},
		{
			name:    "not complete",
			project: model.Project{Status: model.StatusWorking, StartDate: &start, UpdatedAt: updated},
		},
		{
			name:    "cancelled",
			project: model.Project{Status: model.StatusCancel, StartDate: &start, UpdatedAt: updated},
		},
		{
			name:    "complete without start date",
			project: model.Project{Status: model.StatusComplete, UpdatedAt: updated},
		},
		{
			name:     "start equals update",
			project:  model.Project{Status: model.StatusComplete, StartDate: &start, UpdatedAt: start},
			wantDays: 0,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, ok := CompletionDays(&tt.project, now)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantDays, days)
			}
		})
	}
}

func TestCompletionDaysPartialDayRoundsUp(t *testing.T) {
	start := date(2024, time.March, 1)
	updated := start.Add(36 * time.Hour)
	p := model.Project{Status: model.StatusComplete, StartDate: &start, UpdatedAt: updated}

	days, ok := CompletionDays(&p, date(2024, time.June, 1))
	assert.True(t, ok)
	assert.Equal(t, 2, days)
}

func TestCompletionDaysZeroUpdateFallsBackToNow(t *testing.T) {
	start := date(2024, time.May, 28)
	p := model.Project{Status: model.StatusComplete, StartDate: &start}

	days, ok := CompletionDays(&p, date(2024, time.June, 1))
	assert.True(t, ok)
	assert.Equal(t, 4, days)
}
