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

// ProductController maneja las peticiones HTTP del catálogo
type ProductController struct {
	listProductsUC  *usecase.ListProductsUseCase
	getProductUC    *usecase.GetProductUseCase
	createProductUC *usecase.CreateProductUseCase
	updateProductUC *usecase.UpdateProductUseCase
	deleteProductUC *usecase.DeleteProductUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	listProductsUC *usecase.ListProductsUseCase,
	getProductUC *usecase.GetProductUseCase,
	createProductUC *usecase.CreateProductUseCase,
	updateProductUC *usecase.UpdateProductUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listProductsUC:  listProductsUC,
		getProductUC:    getProductUC,
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.GET("/:product_id", c.GetProduct)
		products.POST("", c.CreateProduct)
		products.PUT("/:product_id", c.UpdateProduct)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	logrus.Info("Rutas Products disponibles:")
	logrus.Info("  GET    /api/v1/products")
	logrus.Info("  GET    /api/v1/products/:product_id")
	logrus.Info("  POST   /api/v1/products")
	logrus.Info("  PUT    /api/v1/products/:product_id")
	logrus.Info("  DELETE /api/v1/products/:product_id")
}

// ListProducts lista los productos activos
func (c *ProductController) ListProducts(ctx *gin.Context) {
	products, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		logrus.Errorf("Error listando productos: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       products,
		"total_count": len(products),
	})
}

// GetProduct retorna un producto activo por ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	product, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error obteniendo producto %s: %v", productID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// CreateProduct registra un producto nuevo
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		if isProductValidationError(err) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error creando producto: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// UpdateProduct actualiza un producto existente
func (c *ProductController) UpdateProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	var req request.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := c.updateProductUC.Execute(ctx.Request.Context(), productID, &req)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrProductNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case isProductValidationError(err):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logrus.Errorf("Error actualizando producto %s: %v", productID, err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct da de baja un producto (soft delete)
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid product_id format"})
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("Error dando de baja producto %s: %v", productID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// isProductValidationError indica si el error es de invariantes del producto
func isProductValidationError(err error) bool {
	return errors.Is(err, entity.ErrNameRequired) ||
		errors.Is(err, entity.ErrInvalidPrice) ||
		errors.Is(err, entity.ErrInvalidStock)
}
