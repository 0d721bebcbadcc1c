package derive

import "focalflow/internal/model"

// Progress returns percent of catalog steps completed. Type "other" has no
// steps, so it reports 0, 50 or 100 from status alone.
func Progress(p *model.Project) int {
	catalog := StepsFor(p.Type)
	if len(catalog) == 0 {
		switch p.Status {
		case model.StatusComplete:
			return 100
		case model.StatusNotStarted:
			return 0
		default:
			return 50
		}
	}

	steps := p.Steps()
	done := 0
	for _, s := range catalog {
		if steps[s.Key] {
			done++
		}
	}
	return done * 100 / len(catalog)
}
