package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focalflow/internal/derive"
	"focalflow/internal/model"
)

func projectAt(status model.ProjectStatus, price float64, created time.Time, paid bool) model.Project {
	p := model.Project{
		Type:      model.TypeVideo,
		Status:    status,
		Price:     price,
		CreatedAt: created,
		UpdatedAt: created,
	}
	p.VideoSteps = map[string]bool{"get_paid": paid}
	return p
}

func TestComputeTotals(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

	projects := []model.Project{
		projectAt(model.StatusComplete, 1000, now.AddDate(0, 0, -1), true),
		projectAt(model.StatusComplete, 500, now.AddDate(0, 0, -2), false),
		projectAt(model.StatusWorking, 300, now.AddDate(0, 0, -3), false),
		projectAt(model.StatusCancel, 900, now.AddDate(0, 0, -4), false),
	}
	expenses := []model.Expense{
		{Amount: 120, Category: model.CategorySoftware, Date: now.AddDate(0, 0, -1)},
		{Amount: 80, Category: model.CategoryGear, Date: now.AddDate(0, 0, -2)},
		{Amount: 40, Category: model.CategorySoftware, Date: now.AddDate(0, 0, -3)},
	}

	stats := Compute(projects, expenses, derive.WindowAll, now)

	assert.Equal(t, 1500.0, stats.TotalIncome)
	assert.Equal(t, 240.0, stats.TotalExpenses)
	assert.Equal(t, 1260.0, stats.Profit)
	// unpaid complete + unpaid working; cancelled excluded
	assert.Equal(t, 800.0, stats.Remaining)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 2, stats.CompleteProjects)
	assert.Equal(t, 160.0, stats.ExpensesByCategory["software"])
	assert.Equal(t, 80.0, stats.ExpensesByCategory["gear"])
}

func TestComputeHonorsWindow(t *testing.T) {
	// Wednesday; week window opens Sunday June 9.
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

	projects := []model.Project{
		projectAt(model.StatusComplete, 1000, now.AddDate(0, 0, -1), true),
		projectAt(model.StatusComplete, 500, now.AddDate(0, 0, -10), true),
	}
	expenses := []model.Expense{
		{Amount: 50, Category: model.CategoryTravel, Date: now.AddDate(0, 0, -10)},
	}

	stats := Compute(projects, expenses, derive.WindowWeek, now)
	assert.Equal(t, 1000.0, stats.TotalIncome)
	assert.Equal(t, 0.0, stats.TotalExpenses)
	assert.Equal(t, 1, stats.CompleteProjects)
}

func TestComputeMonthlySeries(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)

	projects := []model.Project{
		projectAt(model.StatusComplete, 700, time.Date(2024, time.June, 2, 0, 0, 0, 0, time.UTC), true),
		projectAt(model.StatusComplete, 300, time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC), true),
		// working projects never count as earnings
		projectAt(model.StatusWorking, 999, time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), false),
	}

	stats := Compute(projects, nil, derive.WindowAll, now)
	assert.Len(t, stats.Earnings, 6)
	assert.Equal(t, "Jan", stats.Earnings[0].Month)
	assert.Equal(t, "Jun", stats.Earnings[5].Month)
	assert.Equal(t, 700.0, stats.Earnings[5].Earnings)
	assert.Equal(t, 300.0, stats.Earnings[3].Earnings)
	assert.Equal(t, 0.0, stats.Earnings[2].Earnings)
}

func TestComputeEmptyInput(t *testing.T) {
	now := time.Date(2024, time.June, 12, 10, 0, 0, 0, time.UTC)
	stats := Compute(nil, nil, derive.WindowMonth, now)

	assert.Equal(t, 0.0, stats.TotalIncome)
	assert.Equal(t, 0.0, stats.Profit)
	assert.Empty(t, stats.ExpensesByCategory)
	assert.Len(t, stats.Earnings, 6)
}
