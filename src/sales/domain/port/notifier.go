package port

import (
	"context"

	"sales/src/sales/domain/entity"
)

// Notifier define el contrato del canal de avisos de ventas a crédito
// La entrega es best-effort: un error se registra y se descarta, nunca
// afecta el resultado de la venta ya confirmada
type Notifier interface {
	// Notify envía el aviso de una venta a crédito
	// customer puede ser nil (consumidor final)
	Notify(ctx context.Context, sale *entity.Sale, customer *entity.Customer) error
}
