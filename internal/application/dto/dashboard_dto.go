package dto

import "github.com/shopspring/decimal"

// TopCustomerDTO fila del ranking de clientes del dashboard.
type TopCustomerDTO struct {
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalReceived decimal.Decimal `json:"total_received"`
	TotalDue      decimal.Decimal `json:"total_due"`
	BillCount     int             `json:"bill_count"`
}

// DashboardSummaryDTO resumen financiero del mes en curso.
// CollectionRate = total_received / total_revenue × 100.
type DashboardSummaryDTO struct {
	MonthlyRevenue  decimal.Decimal  `json:"monthly_revenue"`
	MonthlyReceived decimal.Decimal  `json:"monthly_received"`
	MonthlyDue      decimal.Decimal  `json:"monthly_due"`
	CollectionRate  decimal.Decimal  `json:"collection_rate"`
	ActiveCustomers int              `json:"active_customers"`
	TopCustomers    []TopCustomerDTO `json:"top_customers"`
}
