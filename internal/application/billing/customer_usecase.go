package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/netbill-api/internal/application/activity"
	"github.com/jhoicas/netbill-api/internal/application/dto"
	"github.com/jhoicas/netbill-api/internal/domain"
	"github.com/jhoicas/netbill-api/internal/domain/entity"
	"github.com/jhoicas/netbill-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	recorder *activity.Recorder
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, recorder *activity.Recorder) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, recorder: recorder}
}

// Create crea un nuevo cliente. El serial number es único.
func (uc *CustomerUseCase) Create(ctx context.Context, callerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	existing, _ := uc.repo.GetBySerialNumber(ctx, in.SerialNumber)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = entity.CustomerStatusActive
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		SerialNumber: in.SerialNumber,
		Name:         in.Name,
		Status:       status,
		KAM:          in.KAM,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		CreatedBy:    callerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionCreate, "customer", customer.ID, "serial "+customer.SerialNumber)
	return toCustomerResponse(customer), nil
}

// GetByID devuelve un cliente.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes, opcionalmente filtrados por estado.
func (uc *CustomerUseCase) List(ctx context.Context, status string, limit, offset int) ([]*dto.CustomerResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, status, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(c))
	}
	return out, nil
}

// Update reemplaza todos los campos del cliente.
func (uc *CustomerUseCase) Update(ctx context.Context, callerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.SerialNumber != customer.SerialNumber {
		existing, _ := uc.repo.GetBySerialNumber(ctx, in.SerialNumber)
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	customer.SerialNumber = in.SerialNumber
	customer.Name = in.Name
	customer.Status = in.Status
	customer.KAM = in.KAM
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionUpdate, "customer", customer.ID, "")
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Las cascadas sobre sus facturas son cosa del store.
func (uc *CustomerUseCase) Delete(ctx context.Context, callerID, id string) error {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, callerID, entity.ActionDelete, "customer", id, "serial "+customer.SerialNumber)
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:           c.ID,
		SerialNumber: c.SerialNumber,
		Name:         c.Name,
		Status:       c.Status,
		KAM:          c.KAM,
		Email:        c.Email,
		Phone:        c.Phone,
		Address:      c.Address,
	}
}
