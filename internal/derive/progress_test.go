package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focalflow/internal/model"
)

func TestProgressFromSteps(t *testing.T) {
	p := &model.Project{Type: model.TypeThumbnail, ThumbnailSteps: NewStepMap(model.TypeThumbnail)}
	assert.Equal(t, 0, Progress(p))

	p.ThumbnailSteps = stepMapWith(model.TypeThumbnail, "brief", "concept", "design", "review", "revison_2")
	assert.Equal(t, 50, Progress(p))

	for k := range p.ThumbnailSteps {
		p.ThumbnailSteps[k] = true
	}
	assert.Equal(t, 100, Progress(p))
}

func TestProgressOtherTypeUsesStatus(t *testing.T) {
	tests := []struct {
		status model.ProjectStatus
		want   int
	}{
		{model.StatusNotStarted, 0},
		{model.StatusWorking, 50},
		{model.StatusDelay, 50},
		{model.StatusCancel, 50},
		{model.StatusComplete, 100},
	}

	for _, tt := range tests {
		p := &model.Project{Type: model.TypeOther, Status: tt.status}
		assert.Equal(t, tt.want, Progress(p), "status %s", tt.status)
	}
}
