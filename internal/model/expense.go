package model

import "time"

type ExpenseCategory string

const (
	CategoryGear      ExpenseCategory = "gear"
	CategorySoftware  ExpenseCategory = "software"
	CategoryMarketing ExpenseCategory = "marketing"
	CategoryTravel    ExpenseCategory = "travel"
	CategoryOther     ExpenseCategory = "other"
)

type Expense struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Title     string          `json:"title"`
	Amount    float64         `json:"amount"`
	Category  ExpenseCategory `json:"category"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
