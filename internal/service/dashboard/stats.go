package dashboard

import (
	"time"

	"focalflow/internal/derive"
	"focalflow/internal/model"
)

// Stats are the aggregates behind the dashboard cards, computed over one
// user's records narrowed to a time window.
type Stats struct {
	Window             derive.Window      `json:"window"`
	TotalIncome        float64            `json:"total_income"`
	TotalExpenses      float64            `json:"total_expenses"`
	Profit             float64            `json:"profit"`
	Remaining          float64            `json:"remaining"`
	ActiveProjects     int                `json:"active_projects"`
	CompleteProjects   int                `json:"complete_projects"`
	ExpensesByCategory map[string]float64 `json:"expenses_by_category"`
	Earnings           []MonthEarnings    `json:"earnings"`
}

// MonthEarnings is one point of the six-month earnings series.
type MonthEarnings struct {
	Month    string  `json:"month"`
	Year     int     `json:"year"`
	Earnings float64 `json:"earnings"`
}

// Compute derives dashboard stats from record snapshots. Pure: safe to run
// per request, and per cache miss.
func Compute(projects []model.Project, expenses []model.Expense, w derive.Window, now time.Time) Stats {
	projects = derive.FilterByWindow(projects, func(p model.Project) (time.Time, bool) {
		return p.CreatedAt, !p.CreatedAt.IsZero()
	}, w, now)
	expenses = derive.FilterByWindow(expenses, func(e model.Expense) (time.Time, bool) {
		return e.Date, !e.Date.IsZero()
	}, w, now)

	stats := Stats{
		Window:             w,
		ExpensesByCategory: make(map[string]float64),
	}

	for i := range projects {
		p := &projects[i]
		switch p.Status {
		case model.StatusComplete:
			stats.CompleteProjects++
			stats.TotalIncome += p.Price
		case model.StatusWorking, model.StatusDelay:
			stats.ActiveProjects++
		}
		if p.Status != model.StatusCancel {
			stats.Remaining += derive.RemainingAmount(p)
		}
	}

	for i := range expenses {
		e := &expenses[i]
		stats.TotalExpenses += e.Amount
		stats.ExpensesByCategory[string(e.Category)] += e.Amount
	}

	stats.Profit = stats.TotalIncome - stats.TotalExpenses
	stats.Earnings = monthlySeries(projects, now)
	return stats
}

// monthlySeries buckets completed projects' prices by creation month over
// the trailing six months, oldest first.
func monthlySeries(projects []model.Project, now time.Time) []MonthEarnings {
	byMonth := make(map[string]float64)
	for i := range projects {
		p := &projects[i]
		if p.Status != model.StatusComplete {
			continue
		}
		byMonth[monthKey(p.CreatedAt)] += p.Price
	}

	series := make([]MonthEarnings, 0, 6)
	for i := 5; i >= 0; i-- {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		series = append(series, MonthEarnings{
			Month:    m.Month().String()[:3],
			Year:     m.Year(),
			Earnings: byMonth[monthKey(m)],
		})
	}
	return series
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
