package controller

import (
	"net/http"
	"time"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SaleController maneja las peticiones HTTP de ventas
type SaleController struct {
	registerSaleUC     *usecase.RegisterSaleUseCase
	getSaleUC          *usecase.GetSaleUseCase
	listSalesUC        *usecase.ListSalesUseCase
	updateSaleStatusUC *usecase.UpdateSaleStatusUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	registerSaleUC *usecase.RegisterSaleUseCase,
	getSaleUC *usecase.GetSaleUseCase,
	listSalesUC *usecase.ListSalesUseCase,
	updateSaleStatusUC *usecase.UpdateSaleStatusUseCase,
) *SaleController {
	return &SaleController{
		registerSaleUC:     registerSaleUC,
		getSaleUC:          getSaleUC,
		listSalesUC:        listSalesUC,
		updateSaleStatusUC: updateSaleStatusUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	sales := router.Group("/sales")
	{
		sales.POST("", c.RegisterSale)
		sales.GET("", c.ListSales)
		sales.GET("/:sale_id", c.GetSale)
		sales.PATCH("/:sale_id/status", c.UpdateSaleStatus)
	}

	logrus.Info("Rutas Sales disponibles:")
	logrus.Info("  POST   /api/v1/sales")
	logrus.Info("  GET    /api/v1/sales")
	logrus.Info("  GET    /api/v1/sales/:sale_id")
	logrus.Info("  PATCH  /api/v1/sales/:sale_id/status")
}

// RegisterSale registra una venta multi-item
func (c *SaleController) RegisterSale(ctx *gin.Context) {
	var req request.RegisterSaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := c.registerSaleUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		status := registerSaleErrorStatus(err)
		if status == http.StatusInternalServerError {
			logrus.Errorf("Error registrando venta: %v", err)
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// GetSale retorna una venta con sus items
func (c *SaleController) GetSale(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id format"})
		return
	}

	resp, err := c.getSaleUC.Execute(ctx.Request.Context(), saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error obteniendo venta %s: %v", saleID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSales lista ventas con filtros opcionales por query string:
// sale_type, payment_method, status y date (YYYY-MM-DD)
func (c *SaleController) ListSales(ctx *gin.Context) {
	var filter port.SaleFilter

	if v := ctx.Query("sale_type"); v != "" {
		saleType := entity.SaleType(v)
		if !saleType.IsValid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_type filter"})
			return
		}
		filter.SaleType = saleType
	}
	if v := ctx.Query("payment_method"); v != "" {
		paymentMethod := entity.PaymentMethod(v)
		if !paymentMethod.IsValid() {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment_method filter"})
			return
		}
		filter.PaymentMethod = paymentMethod
	}
	if v := ctx.Query("status"); v != "" {
		status := entity.SaleStatus(v)
		if status != entity.SaleStatusPending && status != entity.SaleStatusPaid {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		filter.Status = status
	}
	if v := ctx.Query("date"); v != "" {
		day, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date filter, expected YYYY-MM-DD"})
			return
		}
		filter.Day = &day
	}

	items, err := c.listSalesUC.Execute(ctx.Request.Context(), filter)
	if err != nil {
		logrus.Errorf("Error listando ventas: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// UpdateSaleStatus marca una venta como cobrada
func (c *SaleController) UpdateSaleStatus(ctx *gin.Context) {
	saleID, err := uuid.Parse(ctx.Param("sale_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid sale_id format"})
		return
	}

	var req request.UpdateSaleStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.updateSaleStatusUC.Execute(ctx.Request.Context(), saleID, req.Status); err != nil {
		switch {
		case errors.Is(err, entity.ErrInvalidSaleStatus):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSaleNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, entity.ErrSaleAlreadyPaid):
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logrus.Errorf("Error actualizando estado de venta %s: %v", saleID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"sale_id": saleID, "status": "paid"})
}

// registerSaleErrorStatus mapea los errores de registro de venta a HTTP
// Request mal formado y producto desconocido son culpa del cliente (400);
// un fallo de persistencia es un 500
func registerSaleErrorStatus(err error) int {
	switch {
	case errors.Is(err, entity.ErrInvalidSaleType),
		errors.Is(err, entity.ErrInvalidPaymentMethod),
		errors.Is(err, entity.ErrSaleMustHaveItems),
		errors.Is(err, entity.ErrProductIDRequired),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrInvalidPrice),
		errors.Is(err, entity.ErrProductNotFound):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
