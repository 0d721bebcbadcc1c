// Package derive computes display state from project snapshots: workflow
// stage, status descriptors, invoice state, completion time, and relative
// time-window filtering. Every function is pure; callers pass immutable
// record values plus "now" and get plain descriptor values back.
package derive

import "focalflow/internal/model"

// Step is one workflow checkpoint: a stored boolean key and its label.
type Step struct {
	Key   string
	Label string
}

// Ordered step catalogs. Order defines stage precedence; nothing enforces
// that earlier steps are completed before later ones.
var videoSteps = []Step{
	{"brief", "Client Brief"},
	{"script", "Script / Plan"},
	{"cuts", "Cuts"},
	{"color_grade", "Color Grade"},
	{"motion_graphics", "Motion Graphics"},
	{"sound_design", "Sound Design"},
	{"review", "Client Review"},
	{"revison_2", "Revision 2"}, // key spelling matches stored data
	{"final_export", "Final Export"},
	{"deliver_files", "Deliver Final Files"},
	{"send_invoice", "Send Invoice"},
	{"get_paid", "Get Paid"},
	{"feedback", "Collect Feedback"},
}

var thumbnailSteps = []Step{
	{"brief", "Client Brief"},
	{"concept", "Concept"},
	{"design", "Design"},
	{"review", "Client Review"},
	{"revison_2", "Revision 2"},
	{"finalize", "Finalize Design"},
	{"deliver_files", "Deliver Final Files"},
	{"send_invoice", "Send Invoice"},
	{"get_paid", "Get Paid"},
	{"feedback", "Collect Feedback"},
}

// StepsFor returns the ordered step catalog for a project type.
// Type "other" has no workflow and gets an empty catalog.
func StepsFor(t model.ProjectType) []Step {
	switch t {
	case model.TypeVideo:
		return videoSteps
	case model.TypeThumbnail:
		return thumbnailSteps
	}
	return nil
}

// NewStepMap returns an all-false completion map for a project type,
// the state a freshly created project starts in. Nil for type "other".
func NewStepMap(t model.ProjectType) map[string]bool {
	steps := StepsFor(t)
	if len(steps) == 0 {
		return nil
	}
	m := make(map[string]bool, len(steps))
	for _, s := range steps {
		m[s.Key] = false
	}
	return m
}

// ValidStepKey reports whether key belongs to the catalog for type t.
func ValidStepKey(t model.ProjectType, key string) bool {
	for _, s := range StepsFor(t) {
		if s.Key == key {
			return true
		}
	}
	return false
}
