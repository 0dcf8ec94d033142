package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de factura.
const (
	BillStatusActive     = "Active"
	BillStatusInactive   = "Inactive"
	BillStatusTerminated = "Terminated"
)

// Bill representa la factura mensual de un cliente, desglosada en los seis
// servicios de ancho de banda que comercializa el ISP (IIG, FNA, GGC, CDN,
// BDIX y Baishan).
//
// Invariantes financieros (tolerancia 0.01):
//
//	total_bill = round2(iig + fna + ggc + cdn + bdix + baishan)
//	total_due  = round2(max(0, total_bill - total_received - discount))
type Bill struct {
	ID              string
	CustomerID      string
	IIGPrice        decimal.Decimal
	FNAPrice        decimal.Decimal
	GGCPrice        decimal.Decimal
	CDNPrice        decimal.Decimal
	BDIXPrice       decimal.Decimal
	BaishanPrice    decimal.Decimal
	Discount        decimal.Decimal
	TotalBill       decimal.Decimal
	TotalReceived   decimal.Decimal
	TotalDue        decimal.Decimal
	Status          string // Active | Inactive | Terminated
	BillingDate     time.Time
	ActiveDate      *time.Time
	TerminationDate *time.Time
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServicePrices devuelve los seis precios en orden fijo (IIG, FNA, GGC, CDN, BDIX, Baishan).
func (b *Bill) ServicePrices() []decimal.Decimal {
	return []decimal.Decimal{b.IIGPrice, b.FNAPrice, b.GGCPrice, b.CDNPrice, b.BDIXPrice, b.BaishanPrice}
}
