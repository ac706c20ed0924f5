package usecase

import (
	"context"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/shared/clock"

	"github.com/google/uuid"
)

// Casos de uso de gestión de clientes

// ListCustomersUseCase lista los clientes activos
type ListCustomersUseCase struct {
	customerRepo port.CustomerRepository
}

// NewListCustomersUseCase crea una nueva instancia del caso de uso
func NewListCustomersUseCase(customerRepo port.CustomerRepository) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo}
}

// Execute retorna los clientes activos ordenados por nombre
func (uc *ListCustomersUseCase) Execute(ctx context.Context) ([]*entity.Customer, error) {
	return uc.customerRepo.List(ctx)
}

// GetCustomerUseCase obtiene un cliente activo por ID
type GetCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewGetCustomerUseCase crea una nueva instancia del caso de uso
func NewGetCustomerUseCase(customerRepo port.CustomerRepository) *GetCustomerUseCase {
	return &GetCustomerUseCase{customerRepo: customerRepo}
}

// Execute retorna el cliente o entity.ErrCustomerNotFound
func (uc *GetCustomerUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return uc.customerRepo.GetByID(ctx, id)
}

// CreateCustomerUseCase registra un cliente nuevo
type CreateCustomerUseCase struct {
	customerRepo port.CustomerRepository
	clock        clock.Clock
}

// NewCreateCustomerUseCase crea una nueva instancia del caso de uso
func NewCreateCustomerUseCase(customerRepo port.CustomerRepository, clk clock.Clock) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo, clock: clk}
}

// Execute valida y persiste el cliente
func (uc *CreateCustomerUseCase) Execute(ctx context.Context, req *request.CreateCustomerRequest) (*entity.Customer, error) {
	customer, err := entity.NewCustomer(req.Name, req.Document, req.Phone, req.Address, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// UpdateCustomerUseCase actualiza los datos de un cliente
type UpdateCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewUpdateCustomerUseCase crea una nueva instancia del caso de uso
func NewUpdateCustomerUseCase(customerRepo port.CustomerRepository) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo}
}

// Execute aplica los cambios sobre el cliente activo
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if len(req.Name) < 2 {
		return nil, entity.ErrNameTooShort
	}

	customer.Name = req.Name
	customer.Document = req.Document
	customer.Phone = req.Phone
	customer.Address = req.Address

	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomerUseCase da de baja un cliente (soft delete)
type DeleteCustomerUseCase struct {
	customerRepo port.CustomerRepository
}

// NewDeleteCustomerUseCase crea una nueva instancia del caso de uso
func NewDeleteCustomerUseCase(customerRepo port.CustomerRepository) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo}
}

// Execute marca el cliente como inactivo
// Sus ventas históricas no se ven afectadas
func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.customerRepo.Deactivate(ctx, id)
}

// CustomerHistoryUseCase retorna el historial de compras de un cliente
type CustomerHistoryUseCase struct {
	customerRepo port.CustomerRepository
	saleRepo     port.SaleRepository
}

// NewCustomerHistoryUseCase crea una nueva instancia del caso de uso
func NewCustomerHistoryUseCase(customerRepo port.CustomerRepository, saleRepo port.SaleRepository) *CustomerHistoryUseCase {
	return &CustomerHistoryUseCase{
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
	}
}

// Execute retorna las ventas del cliente, más recientes primero
func (uc *CustomerHistoryUseCase) Execute(ctx context.Context, customerID uuid.UUID) ([]response.SaleListItem, error) {
	// Verificar que el cliente exista
	if _, err := uc.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, err
	}

	sales, err := uc.saleRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]response.SaleListItem, 0, len(sales))
	for _, sale := range sales {
		items = append(items, response.SaleListItem{
			SaleID:        sale.ID,
			CustomerID:    sale.CustomerID,
			SaleType:      string(sale.SaleType),
			PaymentMethod: string(sale.PaymentMethod),
			TotalAmount:   sale.TotalAmount,
			Status:        string(sale.Status),
			TotalItems:    sale.TotalItems(),
			CreatedAt:     sale.CreatedAt,
		})
	}

	return items, nil
}
