package billing

import "time"

// FutureBillingDate indica si d cae en un día calendario posterior al de
// now. Compara fechas (año, mes, día), no instantes: una factura fechada
// hoy nunca es futura aunque la fecha UTC vaya por detrás del día local
// del servidor.
func FutureBillingDate(d, now time.Time) bool {
	dy, dm, dd := d.Date()
	ny, nm, nd := now.Date()
	if dy != ny {
		return dy > ny
	}
	if dm != nm {
		return dm > nm
	}
	return dd > nd
}
