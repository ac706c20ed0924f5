package usecase

import (
	"context"
	"fmt"
	"time"

	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// DailyReportUseCase caso de uso para el reporte diario de ventas
// Agrega totales por forma de pago y cantidades por tipo de venta
type DailyReportUseCase struct {
	db *sqlx.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sqlx.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha (YYYY-MM-DD)
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	// Rango [from, to) para aprovechar el índice sobre created_at
	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	query := `
		SELECT
			payment_method,
			sale_type,
			COALESCE(SUM(total_amount), 0) AS total,
			COUNT(*) AS sales_count
		FROM sales
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY payment_method, sale_type
	`

	rows, err := uc.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily report: %w", err)
	}
	defer rows.Close()

	resp := &response.DailyReportResponse{
		Date:          date,
		TotalCash:     decimal.Zero,
		TotalCard:     decimal.Zero,
		TotalTransfer: decimal.Zero,
		TotalOverall:  decimal.Zero,
	}

	for rows.Next() {
		var paymentMethod, saleType string
		var total decimal.Decimal
		var salesCount int

		if err := rows.Scan(&paymentMethod, &saleType, &total, &salesCount); err != nil {
			return nil, fmt.Errorf("error scanning daily report row: %w", err)
		}

		switch entity.PaymentMethod(paymentMethod) {
		case entity.PaymentMethodCash:
			resp.TotalCash = resp.TotalCash.Add(total)
		case entity.PaymentMethodCard:
			resp.TotalCard = resp.TotalCard.Add(total)
		case entity.PaymentMethodTransfer:
			resp.TotalTransfer = resp.TotalTransfer.Add(total)
		}

		switch entity.SaleType(saleType) {
		case entity.SaleTypeStandard:
			resp.StandardSales += salesCount
		case entity.SaleTypeDeferred:
			resp.DeferredSales += salesCount
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily report rows: %w", err)
	}

	resp.TotalOverall = resp.TotalCash.Add(resp.TotalCard).Add(resp.TotalTransfer)

	return resp, nil
}
