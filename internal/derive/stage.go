package derive

import "focalflow/internal/model"

const (
	stageComplete   = "Complete"
	stageNotStarted = "Not started"
)

// ResolveStage returns the label of the step after the last completed one,
// or "Complete" when the last catalog step is done.
//
// The tie-break is the position of the last true flag, not the first false
// one: a late step marked done while earlier ones are not resolves as if
// the earlier steps were complete. Out-of-order completion is tolerated,
// not corrected.
func ResolveStage(t model.ProjectType, steps map[string]bool) string {
	catalog := StepsFor(t)
	if len(catalog) == 0 {
		return stageNotStarted
	}

	lastDone := -1
	for i, s := range catalog {
		if steps[s.Key] {
			lastDone = i
		}
	}

	if lastDone == len(catalog)-1 {
		return stageComplete
	}
	return catalog[lastDone+1].Label
}

// StageLabel resolves the current stage for a project. A missing step map
// is treated as all-false.
func StageLabel(p *model.Project) string {
	return ResolveStage(p.Type, p.Steps())
}
