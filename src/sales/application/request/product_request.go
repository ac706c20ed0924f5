package request

import "github.com/shopspring/decimal"

// CreateProductRequest request para registrar un producto en el catálogo
type CreateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	StandardPrice decimal.Decimal `json:"standard_price" binding:"required"`
	DeferredPrice decimal.Decimal `json:"deferred_price" binding:"required"`
	Stock         int             `json:"stock"`
}

// UpdateProductRequest request para actualizar un producto existente
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	StandardPrice decimal.Decimal `json:"standard_price" binding:"required"`
	DeferredPrice decimal.Decimal `json:"deferred_price" binding:"required"`
	Stock         int             `json:"stock"`
}
