package billing

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
)

// GroupBy dimensión de agrupación del agregador de ingresos.
type GroupBy string

const (
	GroupByMonth    GroupBy = "month"    // mes calendario (YYYY-MM)
	GroupByWeek     GroupBy = "week"     // semana ISO 8601 (YYYY-Wnn)
	GroupByYear     GroupBy = "year"     // año calendario (YYYY)
	GroupByCustomer GroupBy = "customer" // customer_id
)

// DateRange rango inclusivo [Start, End] sobre billing_date. Nil = sin límite.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

func (r DateRange) contains(t time.Time) bool {
	if r.Start != nil && t.Before(*r.Start) {
		return false
	}
	if r.End != nil && t.After(*r.End) {
		return false
	}
	return true
}

// RevenueBucket agregado de facturas para un período o cliente. Derivado, no
// se persiste.
type RevenueBucket struct {
	Key           string          `json:"period"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalReceived decimal.Decimal `json:"total_received"`
	TotalDue      decimal.Decimal `json:"total_due"`
	BillCount     int             `json:"bill_count"`
}

// CollectionRate porcentaje cobrado sobre lo facturado (0 si no hay ingresos).
func (b RevenueBucket) CollectionRate() decimal.Decimal {
	if b.TotalRevenue.IsZero() {
		return decimal.Zero
	}
	return b.TotalReceived.Div(b.TotalRevenue).Mul(decimal.New(100, 0)).Round(2)
}

// Aggregate agrupa facturas Active dentro del rango por la dimensión pedida.
//
// Orden determinista: clave de período ascendente para agrupaciones
// temporales; total_revenue descendente (desempate por customer_id
// ascendente) para la agrupación por cliente. Nunca depende del orden de
// iteración de un map.
func Aggregate(bills []*entity.Bill, by GroupBy, dateRange DateRange) []RevenueBucket {
	buckets := make(map[string]*RevenueBucket)
	for _, b := range bills {
		if b.Status != entity.BillStatusActive {
			continue
		}
		if !dateRange.contains(b.BillingDate) {
			continue
		}
		key := bucketKey(b, by)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &RevenueBucket{
				Key:           key,
				TotalRevenue:  decimal.Zero,
				TotalReceived: decimal.Zero,
				TotalDue:      decimal.Zero,
			}
			buckets[key] = bucket
		}
		bucket.TotalRevenue = bucket.TotalRevenue.Add(b.TotalBill)
		bucket.TotalReceived = bucket.TotalReceived.Add(b.TotalReceived)
		bucket.TotalDue = bucket.TotalDue.Add(b.TotalDue)
		bucket.BillCount++
	}

	out := make([]RevenueBucket, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	if by == GroupByCustomer {
		sort.Slice(out, func(i, j int) bool {
			if !out[i].TotalRevenue.Equal(out[j].TotalRevenue) {
				return out[i].TotalRevenue.GreaterThan(out[j].TotalRevenue)
			}
			return out[i].Key < out[j].Key
		})
	} else {
		sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	}
	return out
}

// bucketKey deriva la clave del bucket desde billing_date o customer_id.
func bucketKey(b *entity.Bill, by GroupBy) string {
	switch by {
	case GroupByWeek:
		year, week := b.BillingDate.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GroupByYear:
		return b.BillingDate.Format("2006")
	case GroupByCustomer:
		return b.CustomerID
	default:
		return b.BillingDate.Format("2006-01")
	}
}
