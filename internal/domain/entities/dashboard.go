package entities

// DashboardStats summarizes one searched page of payments.
//
// Revenue only counts approved payments. SuccessRate is a percentage in
// [0, 100] of approved over all transactions in the page.
type DashboardStats struct {
	TotalRevenue         float64 `json:"total_revenue"`
	TotalTransactions    int     `json:"total_transactions"`
	ApprovedTransactions int     `json:"approved_transactions"`
	SuccessRate          float64 `json:"success_rate"`
	AverageTicket        float64 `json:"average_ticket"`
	CurrencyID           string  `json:"currency_id,omitempty"`
}
