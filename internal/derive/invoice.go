package derive

import "focalflow/internal/model"

// The one step flag invoice state is inferred from. There is no separate
// billing entity.
const paidStepKey = "get_paid"

// InvoiceMeta describes the derived paid/unpaid badge.
type InvoiceMeta struct {
	Paid  bool   `json:"paid"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Title string `json:"title"`
}

// ClassifyInvoice reads the get_paid flag for the project's type. A missing
// step map or absent key means unpaid.
func ClassifyInvoice(p *model.Project) InvoiceMeta {
	if p.Steps()[paidStepKey] {
		return InvoiceMeta{Paid: true, Icon: "currency-inr", Color: "#10B981", Title: "Paid"}
	}
	return InvoiceMeta{Paid: false, Icon: "currency-inr", Color: "#6B7280", Title: "Not paid"}
}

// RemainingAmount returns what the client still owes: zero once the
// get_paid step is done, the full price otherwise.
func RemainingAmount(p *model.Project) float64 {
	if p.Steps()[paidStepKey] {
		return 0
	}
	return p.Price
}
