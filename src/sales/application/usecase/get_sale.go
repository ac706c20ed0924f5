package usecase

import (
	"context"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// GetSaleUseCase caso de uso para obtener una venta por ID
type GetSaleUseCase struct {
	saleRepo     port.SaleRepository
	customerRepo port.CustomerRepository
}

// NewGetSaleUseCase crea una nueva instancia del caso de uso
func NewGetSaleUseCase(saleRepo port.SaleRepository, customerRepo port.CustomerRepository) *GetSaleUseCase {
	return &GetSaleUseCase{
		saleRepo:     saleRepo,
		customerRepo: customerRepo,
	}
}

// Execute retorna la venta con sus items en el orden original y, si la venta
// tiene cliente asociado, su nombre y teléfono
func (uc *GetSaleUseCase) Execute(ctx context.Context, saleID uuid.UUID) (*response.SaleResponse, error) {
	sale, err := uc.saleRepo.FindByID(ctx, saleID)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	if sale.CustomerID != nil {
		customer, err = uc.customerRepo.GetByID(ctx, *sale.CustomerID)
		if err != nil && !errors.Is(err, entity.ErrCustomerNotFound) {
			logrus.Warnf("⚠️ No se pudo cargar el cliente %s de la venta %s: %v", *sale.CustomerID, saleID, err)
		}
	}

	return newSaleResponse(sale, customer), nil
}
