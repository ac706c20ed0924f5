package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyReportResponse totales del día por forma de pago y tipo de venta
type DailyReportResponse struct {
	Date          string          `json:"date"` // YYYY-MM-DD
	TotalCash     decimal.Decimal `json:"total_cash"`
	TotalCard     decimal.Decimal `json:"total_card"`
	TotalTransfer decimal.Decimal `json:"total_transfer"`
	TotalOverall  decimal.Decimal `json:"total_overall"`
	StandardSales int             `json:"standard_sales"`
	DeferredSales int             `json:"deferred_sales"`
}

// MonthlyReportDay totales de un día dentro del reporte mensual
type MonthlyReportDay struct {
	Date       string          `json:"date"`
	Total      decimal.Decimal `json:"total"`
	SalesCount int             `json:"sales_count"`
}

// MonthlyReportResponse totales por día de un mes
type MonthlyReportResponse struct {
	Month        string             `json:"month"` // YYYY-MM
	TotalOverall decimal.Decimal    `json:"total_overall"`
	SalesCount   int                `json:"sales_count"`
	Days         []MonthlyReportDay `json:"days"`
}

// TopProductEntry un producto en el ranking de más vendidos
type TopProductEntry struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TopProductsResponse ranking de productos más vendidos
type TopProductsResponse struct {
	Products []TopProductEntry `json:"products"`
}

// PendingSaleEntry una venta a crédito pendiente de cobro
type PendingSaleEntry struct {
	SaleID        uuid.UUID       `json:"sale_id"`
	CustomerName  *string         `json:"customer_name,omitempty"`
	CustomerPhone *string         `json:"customer_phone,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentDate   *time.Time      `json:"payment_date,omitempty"`
	DaysOpen      int             `json:"days_open"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PendingSalesResponse ventas pendientes de cobro con su total acumulado
type PendingSalesResponse struct {
	Sales       []PendingSaleEntry `json:"sales"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
	TotalCount  int                `json:"total_count"`
}
