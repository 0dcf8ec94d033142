// Package billing contiene los casos de uso de clientes, facturas y las
// operaciones de cálculo/verificación expuestas por la API.
package billing

import (
	"context"

	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// BillTxRunner ejecuta una función dentro de una transacción que incluye el
// repo de facturas y el de actividad, para que la escritura y su auditoría
// queden atómicas.
type BillTxRunner interface {
	RunBill(ctx context.Context, fn func(
		billRepo repository.BillRepository,
		activityRepo repository.ActivityLogRepository,
	) error) error
}

// StatementPDFGenerator genera el estado de cuenta PDF de una factura.
type StatementPDFGenerator interface {
	GenerateStatementPDF(ctx context.Context, bill *entity.Bill, customer *entity.Customer) ([]byte, error)
}

// BillsXMLBuilder construye el documento XML de exportación de facturas.
type BillsXMLBuilder interface {
	Build(bills []*entity.Bill, customers map[string]*entity.Customer) ([]byte, error)
}
