package controller

import (
	"net/http"

	"sales/src/sales/application/request"
	"sales/src/sales/application/usecase"
	"sales/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CustomerController maneja las peticiones HTTP de clientes
type CustomerController struct {
	listCustomersUC   *usecase.ListCustomersUseCase
	getCustomerUC     *usecase.GetCustomerUseCase
	createCustomerUC  *usecase.CreateCustomerUseCase
	updateCustomerUC  *usecase.UpdateCustomerUseCase
	deleteCustomerUC  *usecase.DeleteCustomerUseCase
	customerHistoryUC *usecase.CustomerHistoryUseCase
}

// NewCustomerController crea una nueva instancia del controlador
func NewCustomerController(
	listCustomersUC *usecase.ListCustomersUseCase,
	getCustomerUC *usecase.GetCustomerUseCase,
	createCustomerUC *usecase.CreateCustomerUseCase,
	updateCustomerUC *usecase.UpdateCustomerUseCase,
	deleteCustomerUC *usecase.DeleteCustomerUseCase,
	customerHistoryUC *usecase.CustomerHistoryUseCase,
) *CustomerController {
	return &CustomerController{
		listCustomersUC:   listCustomersUC,
		getCustomerUC:     getCustomerUC,
		createCustomerUC:  createCustomerUC,
		updateCustomerUC:  updateCustomerUC,
		deleteCustomerUC:  deleteCustomerUC,
		customerHistoryUC: customerHistoryUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CustomerController) RegisterRoutes(router *gin.RouterGroup) {
	customers := router.Group("/customers")
	{
		customers.GET("", c.ListCustomers)
		customers.GET("/:customer_id", c.GetCustomer)
		customers.GET("/:customer_id/history", c.CustomerHistory)
		customers.POST("", c.CreateCustomer)
		customers.PUT("/:customer_id", c.UpdateCustomer)
		customers.DELETE("/:customer_id", c.DeleteCustomer)
	}

	logrus.Info("Rutas Customers disponibles:")
	logrus.Info("  GET    /api/v1/customers")
	logrus.Info("  GET    /api/v1/customers/:customer_id")
	logrus.Info("  GET    /api/v1/customers/:customer_id/history")
	logrus.Info("  POST   /api/v1/customers")
	logrus.Info("  PUT    /api/v1/customers/:customer_id")
	logrus.Info("  DELETE /api/v1/customers/:customer_id")
}

// ListCustomers lista los clientes activos
func (c *CustomerController) ListCustomers(ctx *gin.Context) {
	customers, err := c.listCustomersUC.Execute(ctx.Request.Context())
	if err != nil {
		logrus.Errorf("Error listando clientes: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       customers,
		"total_count": len(customers),
	})
}

// GetCustomer retorna un cliente activo por ID
func (c *CustomerController) GetCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id format"})
		return
	}

	customer, err := c.getCustomerUC.Execute(ctx.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error obteniendo cliente %s: %v", customerID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// CustomerHistory retorna el historial de compras de un cliente
func (c *CustomerController) CustomerHistory(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id format"})
		return
	}

	items, err := c.customerHistoryUC.Execute(ctx.Request.Context(), customerID)
	if err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error obteniendo historial del cliente %s: %v", customerID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// CreateCustomer registra un cliente nuevo
func (c *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req request.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := c.createCustomerUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if isCustomerValidationError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error creando cliente: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// UpdateCustomer actualiza un cliente existente
func (c *CustomerController) UpdateCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id format"})
		return
	}

	var req request.UpdateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := c.updateCustomerUC.Execute(ctx.Request.Context(), customerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrCustomerNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isCustomerValidationError(err):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logrus.Errorf("Error actualizando cliente %s: %v", customerID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer da de baja un cliente (soft delete)
func (c *CustomerController) DeleteCustomer(ctx *gin.Context) {
	customerID, err := uuid.Parse(ctx.Param("customer_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer_id format"})
		return
	}

	if err := c.deleteCustomerUC.Execute(ctx.Request.Context(), customerID); err != nil {
		if errors.Is(err, entity.ErrCustomerNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error dando de baja cliente %s: %v", customerID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// isCustomerValidationError indica si el error es de invariantes del cliente
func isCustomerValidationError(err error) bool {
	return errors.Is(err, entity.ErrNameRequired) ||
		errors.Is(err, entity.ErrNameTooShort)
}
