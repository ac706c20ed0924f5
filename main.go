package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/service"
	"sales/src/sales/infrastructure/controller"
	"sales/src/sales/infrastructure/notification"
	"sales/src/sales/infrastructure/persistence"
	"sales/src/shared/clock"
	"sales/src/shared/infrastructure/config"
	"sales/src/shared/infrastructure/database"
	"sales/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Error cargando configuración: %v", err)
	}
	cfg.SetupLogger()

	logrus.Info("🚀 Sales Service - Iniciando...")

	// Conectar a la base y aplicar migraciones
	db, err := database.Connect(cfg.DatabaseDSN())
	if err != nil {
		logrus.Fatalf("Error conectando a la base de datos: %v", err)
	}
	defer db.Close()
	logrus.Info("✅ Conexión a sales_db establecida con éxito")

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Error aplicando migraciones: %v", err)
	}

	// Configurar el router con Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	if cfg.PrometheusEnabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logrus.Info("✅ Endpoint /metrics habilitado")
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "service": "sales-service"})
	})

	// Dispatcher de avisos de ventas a crédito
	notifier := notification.NewWhatsAppNotifier(cfg.WhatsAppGatewayURL, cfg.WhatsAppAdminPhone)
	dispatcher := notification.NewDispatcher(notifier, cfg.NotificationQueueSize)
	dispatcher.Start()

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")
	setupSalesModule(v1, db, dispatcher)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logrus.Infof("✅ Servidor Sales Service iniciado en http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Error iniciando servidor: %v", err)
		}
	}()

	// Esperar señal de apagado y drenar los avisos pendientes antes de salir
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logrus.Info("Apagando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Warnf("⚠️ Error en el apagado del servidor: %v", err)
	}

	dispatcher.Stop()
	logrus.Info("✅ Servidor detenido")
}

// setupSalesModule arma el grafo de dependencias del módulo de ventas
func setupSalesModule(router *gin.RouterGroup, db *sqlx.DB, dispatcher *notification.Dispatcher) {
	logrus.Info("Configurando módulo Sales...")

	clk := clock.RealClock{}

	// Repositorios
	productRepo := persistence.NewProductPostgresRepository(db)
	customerRepo := persistence.NewCustomerPostgresRepository(db)
	saleRepo := persistence.NewSalePostgresRepository(db)

	// Servicios de dominio
	pricing := service.NewPricingResolver()

	// Casos de uso de ventas
	registerSaleUC := usecase.NewRegisterSaleUseCase(productRepo, customerRepo, saleRepo, pricing, dispatcher, clk)
	getSaleUC := usecase.NewGetSaleUseCase(saleRepo, customerRepo)
	listSalesUC := usecase.NewListSalesUseCase(saleRepo)
	updateSaleStatusUC := usecase.NewUpdateSaleStatusUseCase(saleRepo)

	// Casos de uso de catálogo
	listProductsUC := usecase.NewListProductsUseCase(productRepo)
	getProductUC := usecase.NewGetProductUseCase(productRepo)
	createProductUC := usecase.NewCreateProductUseCase(productRepo, clk)
	updateProductUC := usecase.NewUpdateProductUseCase(productRepo)
	deleteProductUC := usecase.NewDeleteProductUseCase(productRepo)

	// Casos de uso de clientes
	listCustomersUC := usecase.NewListCustomersUseCase(customerRepo)
	getCustomerUC := usecase.NewGetCustomerUseCase(customerRepo)
	createCustomerUC := usecase.NewCreateCustomerUseCase(customerRepo, clk)
	updateCustomerUC := usecase.NewUpdateCustomerUseCase(customerRepo)
	deleteCustomerUC := usecase.NewDeleteCustomerUseCase(customerRepo)
	customerHistoryUC := usecase.NewCustomerHistoryUseCase(customerRepo, saleRepo)

	// Casos de uso de reportes
	dailyReportUC := usecase.NewDailyReportUseCase(db)
	monthlyReportUC := usecase.NewMonthlyReportUseCase(db)
	topProductsUC := usecase.NewTopProductsUseCase(db)
	pendingSalesUC := usecase.NewPendingSalesUseCase(db, clk)

	// Controladores
	saleController := controller.NewSaleController(registerSaleUC, getSaleUC, listSalesUC, updateSaleStatusUC)
	productController := controller.NewProductController(listProductsUC, getProductUC, createProductUC, updateProductUC, deleteProductUC)
	customerController := controller.NewCustomerController(listCustomersUC, getCustomerUC, createCustomerUC, updateCustomerUC, deleteCustomerUC, customerHistoryUC)
	reportController := controller.NewReportController(dailyReportUC, monthlyReportUC, topProductsUC, pendingSalesUC, clk)

	saleController.RegisterRoutes(router)
	productController.RegisterRoutes(router)
	customerController.RegisterRoutes(router)
	reportController.RegisterRoutes(router)

	logrus.Info("✅ Módulo Sales configurado")
}
