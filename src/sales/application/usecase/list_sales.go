package usecase

import (
	"context"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/port"
)

// ListSalesUseCase caso de uso para listar ventas con filtros opcionales
type ListSalesUseCase struct {
	saleRepo port.SaleRepository
}

// NewListSalesUseCase crea una nueva instancia del caso de uso
func NewListSalesUseCase(saleRepo port.SaleRepository) *ListSalesUseCase {
	return &ListSalesUseCase{
		saleRepo: saleRepo,
	}
}

// Execute retorna las ventas que cumplen el filtro, más recientes primero
func (uc *ListSalesUseCase) Execute(ctx context.Context, filter port.SaleFilter) ([]response.SaleListItem, error) {
	sales, err := uc.saleRepo.List(ctx, filter)
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
