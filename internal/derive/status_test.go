package derive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focalflow/internal/model"
)

func TestClassifyStatusTable(t *testing.T) {
	tests := []struct {
		status       model.ProjectStatus
		wantCategory StatusCategory
		wantLabel    string
		wantColor    string
	}{
		{model.StatusComplete, CategoryComplete, "Complete", "#3B82F6"},
		{model.StatusCancel, CategoryCancelled, "Cancelled", "#EF4444"},
		{model.StatusDelay, CategoryDelayed, "Delayed", "#F97316"},
		{model.StatusNotStarted, CategoryNotStarted, "Not started", "#64748B"},
		{model.StatusWorking, CategoryInProgress, "In progress", "#10B981"},
		// non-terminal values outside the enum count as in progress
		{"reviewing", CategoryInProgress, "In progress", "#10B981"},
		// missing status degrades to the neutral descriptor
		{"", CategoryUnknown, "Unknown", "#94A3B8"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &model.Project{Type: model.TypeVideo, Status: tt.status}
			meta := ClassifyStatus(p)
			assert.Equal(t, tt.wantCategory, meta.Category)
			assert.Equal(t, tt.wantLabel, meta.Label)
			assert.Equal(t, tt.wantColor, meta.Color)
		})
	}
}

func TestClassifyStatusSubLabelIsStage(t *testing.T) {
	p := &model.Project{
		Type:       model.TypeVideo,
		Status:     model.StatusDelay,
		VideoSteps: stepMapWith(model.TypeVideo, "brief", "script"),
	}
	meta := ClassifyStatus(p)
	assert.Equal(t, CategoryDelayed, meta.Category)
	assert.Equal(t, "Cuts", meta.SubLabel)
}

func TestClassifyInvoice(t *testing.T) {
	paid := &model.Project{
		Type:       model.TypeVideo,
		Price:      1500,
		VideoSteps: stepMapWith(model.TypeVideo, "get_paid"),
	}
	meta := ClassifyInvoice(paid)
	assert.True(t, meta.Paid)
	assert.Equal(t, "Paid", meta.Title)
	assert.Equal(t, "#10B981", meta.Color)
	assert.Equal(t, 0.0, RemainingAmount(paid))

	unpaid := &model.Project{
		Type:       model.TypeVideo,
		Price:      1500,
		VideoSteps: stepMapWith(model.TypeVideo, "brief", "send_invoice"),
	}
	meta = ClassifyInvoice(unpaid)
	assert.False(t, meta.Paid)
	assert.Equal(t, "Not paid", meta.Title)
	assert.Equal(t, "#6B7280", meta.Color)
	assert.Equal(t, 1500.0, RemainingAmount(unpaid))
}

func TestClassifyInvoiceMissingStepMap(t *testing.T) {
	// nil map and type other are both unpaid
	for _, p := range []*model.Project{
		{Type: model.TypeVideo, Price: 200},
		{Type: model.TypeOther, Price: 200, Status: model.StatusComplete},
	} {
		assert.False(t, ClassifyInvoice(p).Paid)
		assert.Equal(t, 200.0, RemainingAmount(p))
	}
}
