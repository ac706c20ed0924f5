package usecase

import (
	"context"

	"sales/src/sales/application/request"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/shared/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Casos de uso de gestión de catálogo: capa mecánica sobre el repositorio,
// sin reglas de negocio más allá de los invariantes de Product

// ListProductsUseCase lista los productos activos del catálogo
type ListProductsUseCase struct {
	productRepo port.ProductRepository
}

// NewListProductsUseCase crea una nueva instancia del caso de uso
func NewListProductsUseCase(productRepo port.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute retorna los productos activos ordenados por nombre
func (uc *ListProductsUseCase) Execute(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List(ctx)
}

// GetProductUseCase obtiene un producto activo por ID
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute retorna el producto o entity.ErrProductNotFound
func (uc *GetProductUseCase) Execute(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return uc.productRepo.GetActiveByID(ctx, id)
}

// CreateProductUseCase registra un producto nuevo en el catálogo
type CreateProductUseCase struct {
	productRepo port.ProductRepository
	clock       clock.Clock
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository, clk clock.Clock) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo, clock: clk}
}

// Execute valida los invariantes del producto y lo persiste
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.Name, req.StandardPrice, req.DeferredPrice, req.Stock, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// UpdateProductUseCase actualiza un producto existente
type UpdateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewUpdateProductUseCase crea una nueva instancia del caso de uso
func NewUpdateProductUseCase(productRepo port.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Execute aplica los cambios sobre el producto activo
// Los precios nuevos no afectan ventas ya registradas (precio congelado)
func (uc *UpdateProductUseCase) Execute(ctx context.Context, id uuid.UUID, req *request.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, entity.ErrNameRequired
	}
	if req.StandardPrice.LessThanOrEqual(decimal.Zero) || req.DeferredPrice.LessThanOrEqual(decimal.Zero) {
		return nil, entity.ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, entity.ErrInvalidStock
	}

	product.Name = req.Name
	product.StandardPrice = req.StandardPrice
	product.DeferredPrice = req.DeferredPrice
	product.Stock = req.Stock

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProductUseCase da de baja un producto (soft delete)
// Las ventas históricas conservan nombre y precio congelados
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo}
}

// Execute marca el producto como inactivo
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	return uc.productRepo.Deactivate(ctx, id)
}
