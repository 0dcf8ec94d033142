package dto

import "github.com/shopspring/decimal"

// CreateBillRequest body para POST /api/bills.
//
// TotalBill y TotalDue son punteros: si vienen nil el servidor los calcula;
// si vienen con valor se validan contra los invariantes financieros y un
// conflicto responde 400 CALCULATION_ERROR.
type CreateBillRequest struct {
	CustomerID      string           `json:"customer_id" validate:"required"`
	IIGPrice        decimal.Decimal  `json:"iig_price"`
	FNAPrice        decimal.Decimal  `json:"fna_price"`
	GGCPrice        decimal.Decimal  `json:"ggc_price"`
	CDNPrice        decimal.Decimal  `json:"cdn_price"`
	BDIXPrice       decimal.Decimal  `json:"bdix_price"`
	BaishanPrice    decimal.Decimal  `json:"baishan_price"`
	Discount        decimal.Decimal  `json:"discount"`
	TotalReceived   decimal.Decimal  `json:"total_received"`
	TotalBill       *decimal.Decimal `json:"total_bill,omitempty"`
	TotalDue        *decimal.Decimal `json:"total_due,omitempty"`
	Status          string           `json:"status" validate:"omitempty,oneof=Active Inactive Terminated"`
	BillingDate     string           `json:"billing_date" validate:"required"` // YYYY-MM-DD, no futura
	ActiveDate      string           `json:"active_date,omitempty"`
	TerminationDate string           `json:"termination_date,omitempty"` // estrictamente posterior a active_date
}

// UpdateBillRequest body para PUT /api/bills/:id (reemplazo completo, mismas reglas).
type UpdateBillRequest = CreateBillRequest

// BillResponse factura en respuestas.
type BillResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	IIGPrice        decimal.Decimal `json:"iig_price"`
	FNAPrice        decimal.Decimal `json:"fna_price"`
	GGCPrice        decimal.Decimal `json:"ggc_price"`
	CDNPrice        decimal.Decimal `json:"cdn_price"`
	BDIXPrice       decimal.Decimal `json:"bdix_price"`
	BaishanPrice    decimal.Decimal `json:"baishan_price"`
	Discount        decimal.Decimal `json:"discount"`
	TotalBill       decimal.Decimal `json:"total_bill"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	TotalDue        decimal.Decimal `json:"total_due"`
	Status          string          `json:"status"`
	BillingDate     string          `json:"billing_date"`
	ActiveDate      string          `json:"active_date,omitempty"`
	TerminationDate string          `json:"termination_date,omitempty"`
}

// CalculationErrorResponse cuerpo del 400 CALCULATION_ERROR: el total
// declarado contradice el calculado.
type CalculationErrorResponse struct {
	Code       string          `json:"code"` // siempre "CALCULATION_ERROR"
	Message    string          `json:"message"`
	Provided   decimal.Decimal `json:"provided"`
	Calculated decimal.Decimal `json:"calculated"`
	Difference decimal.Decimal `json:"difference"`
}

// BillVerificationResponse resultado del evaluador para GET /api/calculations/verify/:billId.
type BillVerificationResponse struct {
	BillID                   string          `json:"bill_id"`
	CalculatedTotal          decimal.Decimal `json:"calculated_total"`
	TotalCalculationStatus   string          `json:"total_calculation_status"`
	ExpectedDue              decimal.Decimal `json:"expected_due"`
	BalanceCalculationStatus string          `json:"balance_calculation_status"`
}
