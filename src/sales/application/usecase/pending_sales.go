package usecase

import (
	"context"
	"fmt"
	"time"

	"sales/src/sales/application/response"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"sales/src/shared/clock"
)

// PendingSalesUseCase caso de uso para listar ventas a crédito sin cobrar
// Sirve de agenda de cobranza: incluye contacto del cliente y antigüedad
type PendingSalesUseCase struct {
	db    *sqlx.DB
	clock clock.Clock
}

// NewPendingSalesUseCase crea una nueva instancia del caso de uso
func NewPendingSalesUseCase(db *sqlx.DB, clk clock.Clock) *PendingSalesUseCase {
	return &PendingSalesUseCase{
		db:    db,
		clock: clk,
	}
}

// Execute retorna las ventas a crédito pendientes, más antiguas primero
func (uc *PendingSalesUseCase) Execute(ctx context.Context) (*response.PendingSalesResponse, error) {
	query := `
		SELECT
			s.id,
			c.name,
			c.phone,
			s.total_amount,
			s.payment_date,
			s.created_at
		FROM sales s
		LEFT JOIN customers c ON c.id = s.customer_id
		WHERE s.status = 'pending' AND s.sale_type = 'deferred'
		ORDER BY s.created_at
	`

	rows, err := uc.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying pending sales: %w", err)
	}
	defer rows.Close()

	now := uc.clock.Now()

	resp := &response.PendingSalesResponse{
		TotalAmount: decimal.Zero,
	}

	for rows.Next() {
		var entry response.PendingSaleEntry
		var paymentDate *time.Time

		if err := rows.Scan(
			&entry.SaleID,
			&entry.CustomerName,
			&entry.CustomerPhone,
			&entry.TotalAmount,
			&paymentDate,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning pending sale: %w", err)
		}

		entry.PaymentDate = paymentDate
		entry.DaysOpen = int(now.Sub(entry.CreatedAt).Hours() / 24)

		resp.Sales = append(resp.Sales, entry)
		resp.TotalAmount = resp.TotalAmount.Add(entry.TotalAmount)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pending sales: %w", err)
	}

	resp.TotalCount = len(resp.Sales)

	return resp, nil
}
