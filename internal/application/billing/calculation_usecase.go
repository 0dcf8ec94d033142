package billing

import (
	"context"
	"time"

	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	corebilling "github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// CalculationUseCase expone el evaluador financiero y el agregador de
// ingresos sobre las facturas persistidas. Las filas se traen una vez y el
// cálculo es puro en memoria.
type CalculationUseCase struct {
	billRepo repository.BillRepository
}

// NewCalculationUseCase construye el caso de uso.
func NewCalculationUseCase(billRepo repository.BillRepository) *CalculationUseCase {
	return &CalculationUseCase{billRepo: billRepo}
}

// VerifyBill corre la validación cruzada sobre una factura persistida.
func (uc *CalculationUseCase) VerifyBill(ctx context.Context, billID string) (*dto.BillVerificationResponse, error) {
	bill, err := uc.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	ev := corebilling.Evaluate(corebilling.FiguresFromBill(bill))
	return &dto.BillVerificationResponse{
		BillID:                   bill.ID,
		CalculatedTotal:          ev.CalculatedTotal,
		TotalCalculationStatus:   ev.TotalCalculationStatus,
		ExpectedDue:              ev.ExpectedDue,
		BalanceCalculationStatus: ev.BalanceCalculationStatus,
	}, nil
}

// VerifyAll corre la validación sobre todas las facturas del filtro (verificación batch de lectura).
func (uc *CalculationUseCase) VerifyAll(ctx context.Context, filter repository.BillFilter) ([]*dto.BillVerificationResponse, error) {
	bills, err := uc.billRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillVerificationResponse, 0, len(bills))
	for _, b := range bills {
		ev := corebilling.Evaluate(corebilling.FiguresFromBill(b))
		out = append(out, &dto.BillVerificationResponse{
			BillID:                   b.ID,
			CalculatedTotal:          ev.CalculatedTotal,
			TotalCalculationStatus:   ev.TotalCalculationStatus,
			ExpectedDue:              ev.ExpectedDue,
			BalanceCalculationStatus: ev.BalanceCalculationStatus,
		})
	}
	return out, nil
}

// Aggregate agrupa los ingresos por la dimensión pedida dentro del rango.
// El repo solo acota por fecha; el filtro Active y la agrupación son del
// núcleo puro.
func (uc *CalculationUseCase) Aggregate(ctx context.Context, by corebilling.GroupBy, start, end *time.Time) ([]corebilling.RevenueBucket, error) {
	bills, err := uc.billRepo.ListByFilter(ctx, repository.BillFilter{From: start, To: end, Limit: -1})
	if err != nil {
		return nil, err
	}
	return corebilling.Aggregate(bills, by, corebilling.DateRange{Start: start, End: end}), nil
}
