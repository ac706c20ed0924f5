package usecase

import (
	"context"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UpdateSaleStatusUseCase caso de uso para marcar una venta como cobrada
// La única transición permitida es pending -> paid, una sola vez
type UpdateSaleStatusUseCase struct {
	saleRepo port.SaleRepository
}

// NewUpdateSaleStatusUseCase crea una nueva instancia del caso de uso
func NewUpdateSaleStatusUseCase(saleRepo port.SaleRepository) *UpdateSaleStatusUseCase {
	return &UpdateSaleStatusUseCase{
		saleRepo: saleRepo,
	}
}

// Execute marca la venta como cobrada
func (uc *UpdateSaleStatusUseCase) Execute(ctx context.Context, saleID uuid.UUID, status string) error {
	if entity.SaleStatus(status) != entity.SaleStatusPaid {
		return entity.ErrInvalidSaleStatus
	}

	if err := uc.saleRepo.MarkPaid(ctx, saleID); err != nil {
		return err
	}

	logrus.Infof("💵 Venta %s marcada como cobrada", saleID)
	return nil
}
