package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/netbill-api/internal/domain/billing"
)

func TestFutureBillingDate(t *testing.T) {
	// Las fechas de facturación se parsean como medianoche UTC; el reloj
	// del servidor puede ir en otra zona.
	dhaka := time.FixedZone("UTC+6", 6*60*60)
	utcDate := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("fecha de fixture inválida %q", s)
		}
		return d
	}

	tests := []struct {
		name   string
		d      time.Time
		now    time.Time
		future bool
	}{
		{
			name:   "mismo día en UTC",
			d:      utcDate("2024-03-15"),
			now:    time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
			future: false,
		},
		{
			name: "hoy local con UTC aún en ayer",
			// Madrugada del 15 en UTC+6: en UTC todavía es 14. La factura
			// fechada 15 es de hoy, no futura.
			d:      utcDate("2024-03-15"),
			now:    time.Date(2024, 3, 15, 0, 30, 0, 0, dhaka),
			future: false,
		},
		{
			name:   "mañana",
			d:      utcDate("2024-03-16"),
			now:    time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC),
			future: true,
		},
		{
			name:   "ayer",
			d:      utcDate("2024-03-14"),
			now:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			future: false,
		},
		{
			name:   "mes siguiente",
			d:      utcDate("2024-04-01"),
			now:    time.Date(2024, 3, 31, 10, 0, 0, 0, time.UTC),
			future: true,
		},
		{
			name:   "año siguiente",
			d:      utcDate("2025-01-01"),
			now:    time.Date(2024, 12, 31, 10, 0, 0, 0, time.UTC),
			future: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.future, billing.FutureBillingDate(tt.d, tt.now))
		})
	}
}
