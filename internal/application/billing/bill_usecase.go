package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	corebilling "github.com/jhoicas/netbill-api/internal/domain/billing"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// CalculationError señala que un total explícito contradice el calculado.
// El handler lo serializa como 400 CALCULATION_ERROR con {provided,
// calculated, difference}.
type CalculationError struct {
	Mismatch corebilling.Mismatch
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("los totales no cuadran: declarado %s, calculado %s",
		e.Mismatch.Provided, e.Mismatch.Calculated)
}

// Unwrap permite tratarlo como el centinela de dominio con errors.Is.
func (e *CalculationError) Unwrap() error {
	return domain.ErrCalculationMismatch
}

// BillUseCase casos de uso de facturas. Toda escritura pasa por la validación
// financiera de totales y deja su entrada de auditoría en la misma
// transacción.
type BillUseCase struct {
	txRunner     BillTxRunner
	billRepo     repository.BillRepository
	customerRepo repository.CustomerRepository
}

// NewBillUseCase construye el caso de uso.
func NewBillUseCase(txRunner BillTxRunner, billRepo repository.BillRepository, customerRepo repository.CustomerRepository) *BillUseCase {
	return &BillUseCase{txRunner: txRunner, billRepo: billRepo, customerRepo: customerRepo}
}

// Create valida y persiste una factura nueva. Los totales ausentes se
// autocompletan; un total explícito que no cuadra produce *CalculationError.
func (uc *BillUseCase) Create(ctx context.Context, callerID string, in dto.CreateBillRequest) (*dto.BillResponse, error) {
	bill, err := uc.buildBill(ctx, in)
	if err != nil {
		return nil, err
	}
	bill.ID = uuid.New().String()
	bill.CreatedBy = callerID
	now := time.Now()
	bill.CreatedAt = now
	bill.UpdatedAt = now

	err = uc.txRunner.RunBill(ctx, func(billRepo repository.BillRepository, activityRepo repository.ActivityLogRepository) error {
		if err := billRepo.Create(ctx, bill); err != nil {
			return err
		}
		return activityRepo.Create(ctx, newActivity(callerID, entity.ActionCreate, bill.ID, "factura de "+bill.BillingDate.Format(dateLayout)))
	})
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// GetByID devuelve una factura.
func (uc *BillUseCase) GetByID(ctx context.Context, id string) (*dto.BillResponse, error) {
	bill, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, domain.ErrNotFound
	}
	return toBillResponse(bill), nil
}

// List lista facturas según el filtro.
func (uc *BillUseCase) List(ctx context.Context, filter repository.BillFilter) ([]*dto.BillResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	list, err := uc.billRepo.ListByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.BillResponse, 0, len(list))
	for _, b := range list {
		out = append(out, toBillResponse(b))
	}
	return out, nil
}

// Update reemplaza todos los campos de la factura, con el mismo gate que Create.
func (uc *BillUseCase) Update(ctx context.Context, callerID, id string, in dto.UpdateBillRequest) (*dto.BillResponse, error) {
	existing, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	bill, err := uc.buildBill(ctx, in)
	if err != nil {
		return nil, err
	}
	bill.ID = existing.ID
	bill.CreatedBy = existing.CreatedBy
	bill.CreatedAt = existing.CreatedAt
	bill.UpdatedAt = time.Now()

	err = uc.txRunner.RunBill(ctx, func(billRepo repository.BillRepository, activityRepo repository.ActivityLogRepository) error {
		if err := billRepo.Update(ctx, bill); err != nil {
			return err
		}
		return activityRepo.Create(ctx, newActivity(callerID, entity.ActionUpdate, bill.ID, ""))
	})
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill), nil
}

// Delete elimina la factura.
func (uc *BillUseCase) Delete(ctx context.Context, callerID, id string) error {
	existing, err := uc.billRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.txRunner.RunBill(ctx, func(billRepo repository.BillRepository, activityRepo repository.ActivityLogRepository) error {
		if err := billRepo.Delete(ctx, id); err != nil {
			return err
		}
		return activityRepo.Create(ctx, newActivity(callerID, entity.ActionDelete, id, ""))
	})
}

// buildBill valida el request y produce la entidad con totales ya resueltos.
func (uc *BillUseCase) buildBill(ctx context.Context, in dto.CreateBillRequest) (*entity.Bill, error) {
	for _, p := range []decimal.Decimal{in.IIGPrice, in.FNAPrice, in.GGCPrice, in.CDNPrice, in.BDIXPrice, in.BaishanPrice, in.Discount, in.TotalReceived} {
		if p.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}

	billingDate, err := time.Parse(dateLayout, in.BillingDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	// billing_date no puede caer en un día posterior al de hoy.
	if corebilling.FutureBillingDate(billingDate, time.Now()) {
		return nil, domain.ErrInvalidInput
	}

	var activeDate, terminationDate *time.Time
	if in.ActiveDate != "" {
		d, err := time.Parse(dateLayout, in.ActiveDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		activeDate = &d
	}
	if in.TerminationDate != "" {
		d, err := time.Parse(dateLayout, in.TerminationDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		terminationDate = &d
	}
	// La terminación debe ser estrictamente posterior a la activación.
	if activeDate != nil && terminationDate != nil && !terminationDate.After(*activeDate) {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(ctx, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}

	totalBill, totalDue, mismatch := corebilling.CheckTotals(corebilling.Figures{
		IIG:           in.IIGPrice,
		FNA:           in.FNAPrice,
		GGC:           in.GGCPrice,
		CDN:           in.CDNPrice,
		BDIX:          in.BDIXPrice,
		Baishan:       in.BaishanPrice,
		Discount:      in.Discount,
		TotalReceived: in.TotalReceived,
		TotalBill:     in.TotalBill,
		TotalDue:      in.TotalDue,
	})
	if mismatch != nil {
		return nil, &CalculationError{Mismatch: *mismatch}
	}

	status := in.Status
	if status == "" {
		status = entity.BillStatusActive
	}
	return &entity.Bill{
		CustomerID:      in.CustomerID,
		IIGPrice:        in.IIGPrice,
		FNAPrice:        in.FNAPrice,
		GGCPrice:        in.GGCPrice,
		CDNPrice:        in.CDNPrice,
		BDIXPrice:       in.BDIXPrice,
		BaishanPrice:    in.BaishanPrice,
		Discount:        in.Discount,
		TotalBill:       totalBill,
		TotalReceived:   in.TotalReceived,
		TotalDue:        totalDue,
		Status:          status,
		BillingDate:     billingDate,
		ActiveDate:      activeDate,
		TerminationDate: terminationDate,
	}, nil
}

func newActivity(userID, action, billID, detail string) *entity.ActivityLog {
	return &entity.ActivityLog{
		ID:        uuid.New().String(),
		UserID:    userID,
		Action:    action,
		Entity:    "bill",
		EntityID:  billID,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
}

func toBillResponse(b *entity.Bill) *dto.BillResponse {
	resp := &dto.BillResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		IIGPrice:      b.IIGPrice,
		FNAPrice:      b.FNAPrice,
		GGCPrice:      b.GGCPrice,
		CDNPrice:      b.CDNPrice,
		BDIXPrice:     b.BDIXPrice,
		BaishanPrice:  b.BaishanPrice,
		Discount:      b.Discount,
		TotalBill:     b.TotalBill,
		TotalReceived: b.TotalReceived,
		TotalDue:      b.TotalDue,
		Status:        b.Status,
		BillingDate:   b.BillingDate.Format(dateLayout),
	}
	if b.ActiveDate != nil {
		resp.ActiveDate = b.ActiveDate.Format(dateLayout)
	}
	if b.TerminationDate != nil {
		resp.TerminationDate = b.TerminationDate.Format(dateLayout)
	}
	return resp
}
