package controller

import (
	"net/http"
	"strconv"
	"time"

	"sales/src/sales/application/usecase"
	"sales/src/shared/clock"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ReportController maneja las peticiones HTTP de reportes
type ReportController struct {
	dailyReportUC  *usecase.DailyReportUseCase
	monthlyUC      *usecase.MonthlyReportUseCase
	topProductsUC  *usecase.TopProductsUseCase
	pendingSalesUC *usecase.PendingSalesUseCase
	clock          clock.Clock
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(
	dailyReportUC *usecase.DailyReportUseCase,
	monthlyUC *usecase.MonthlyReportUseCase,
	topProductsUC *usecase.TopProductsUseCase,
	pendingSalesUC *usecase.PendingSalesUseCase,
	clk clock.Clock,
) *ReportController {
	return &ReportController{
		dailyReportUC:  dailyReportUC,
		monthlyUC:      monthlyUC,
		topProductsUC:  topProductsUC,
		pendingSalesUC: pendingSalesUC,
		clock:          clk,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
		reports.GET("/monthly", c.MonthlyReport)
		reports.GET("/top-products", c.TopProducts)
		reports.GET("/pending-sales", c.PendingSales)
	}

	logrus.Info("Rutas Reports disponibles:")
	logrus.Info("  GET    /api/v1/reports/daily")
	logrus.Info("  GET    /api/v1/reports/monthly")
	logrus.Info("  GET    /api/v1/reports/top-products")
	logrus.Info("  GET    /api/v1/reports/pending-sales")
}

// DailyReport genera el reporte del día indicado (?date=YYYY-MM-DD, hoy por defecto)
func (c *ReportController) DailyReport(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		date = c.clock.Now().Format("2006-01-02")
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		logrus.Errorf("Error generando reporte diario: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// MonthlyReport genera el reporte del mes indicado (?month=YYYY-MM, mes actual por defecto)
func (c *ReportController) MonthlyReport(ctx *gin.Context) {
	monthParam := ctx.Query("month")
	if monthParam == "" {
		monthParam = c.clock.Now().Format("2006-01")
	}

	parsed, err := time.Parse("2006-01", monthParam)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
		return
	}

	resp, err := c.monthlyUC.Execute(ctx.Request.Context(), parsed.Year(), parsed.Month())
	if err != nil {
		logrus.Errorf("Error generando reporte mensual: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// TopProducts retorna el ranking de productos más vendidos (?limit=N, 10 por defecto)
func (c *ReportController) TopProducts(ctx *gin.Context) {
	limit := 10
	if v := ctx.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit, expected a positive integer"})
			return
		}
		limit = parsed
	}

	resp, err := c.topProductsUC.Execute(ctx.Request.Context(), limit)
	if err != nil {
		logrus.Errorf("Error generando ranking de productos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// PendingSales lista las ventas a crédito pendientes de cobro
func (c *ReportController) PendingSales(ctx *gin.Context) {
	resp, err := c.pendingSalesUC.Execute(ctx.Request.Context())
	if err != nil {
		logrus.Errorf("Error listando ventas pendientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
