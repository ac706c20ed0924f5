package usecase

import (
	"context"

	"sales/src/sales/application/request"
	"sales/src/sales/application/response"
	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/sales/domain/service"
	"sales/src/sales/infrastructure/metrics"
	"sales/src/sales/infrastructure/notification"
	"sales/src/shared/clock"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// RegisterSaleUseCase caso de uso para registrar una venta
// Secuencia estricta: validación estructural -> lookups de catálogo
// (todo-o-nada) -> resolución de precios -> commit atómico -> aviso
// best-effort para ventas a crédito
type RegisterSaleUseCase struct {
	productRepo  port.ProductRepository
	customerRepo port.CustomerRepository
	saleRepo     port.SaleRepository
	pricing      *service.PricingResolver
	dispatcher   *notification.Dispatcher
	clock        clock.Clock
}

// NewRegisterSaleUseCase crea una nueva instancia del caso de uso
func NewRegisterSaleUseCase(
	productRepo port.ProductRepository,
	customerRepo port.CustomerRepository,
	saleRepo port.SaleRepository,
	pricing *service.PricingResolver,
	dispatcher *notification.Dispatcher,
	clk clock.Clock,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		saleRepo:     saleRepo,
		pricing:      pricing,
		dispatcher:   dispatcher,
		clock:        clk,
	}
}

// Execute registra una venta multi-item
// Ningún efecto durable ocurre antes de que todos los items estén validados;
// el encabezado y los items se persisten en una sola transacción
func (uc *RegisterSaleUseCase) Execute(ctx context.Context, req *request.RegisterSaleRequest) (*response.SaleResponse, error) {
	// ========================================================================
	// PASO 1: VALIDACIONES ESTRUCTURALES (antes de tocar el catálogo)
	// ========================================================================
	saleType := entity.SaleType(req.SaleType)
	if !saleType.IsValid() {
		return nil, entity.ErrInvalidSaleType
	}

	paymentMethod := entity.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, entity.ErrInvalidPaymentMethod
	}

	if len(req.Items) == 0 {
		return nil, entity.ErrSaleMustHaveItems
	}

	for _, item := range req.Items {
		if item.ProductID == uuid.Nil {
			return nil, entity.ErrProductIDRequired
		}
		if item.Quantity <= 0 {
			return nil, entity.ErrInvalidQuantity
		}
	}

	// ========================================================================
	// PASO 2: LOOKUPS DE CATÁLOGO CONCURRENTES, TODO-O-NADA
	// Un lookup por item; si cualquiera falla se descarta el request completo
	// sin haber creado estado parcial
	// ========================================================================
	products := make([]*entity.Product, len(req.Items))

	g, gctx := errgroup.WithContext(ctx)
	for i, itemReq := range req.Items {
		g.Go(func() error {
			product, err := uc.productRepo.GetActiveByID(gctx, itemReq.ProductID)
			if err != nil {
				if errors.Is(err, entity.ErrProductNotFound) {
					return errors.Wrapf(entity.ErrProductNotFound, "product %s", itemReq.ProductID)
				}
				return errors.Wrapf(err, "error looking up product %s", itemReq.ProductID)
			}
			products[i] = product
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// ========================================================================
	// PASO 3: RESOLVER PRECIOS Y ARMAR EL AGGREGATE
	// La suma de subtotales respeta el orden de los items del request
	// ========================================================================
	now := uc.clock.Now()

	items := make([]entity.SaleItem, 0, len(req.Items))
	for i, itemReq := range req.Items {
		product := products[i]
		unitPrice := uc.pricing.UnitPrice(saleType, req.PaymentDate, now, product)

		item, err := entity.NewSaleItem(product.ID, product.Name, itemReq.Quantity, unitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	sale, err := entity.NewSale(req.CustomerID, saleType, paymentMethod, req.PaymentDate, req.Notes, items, now)
	if err != nil {
		return nil, err
	}

	// ========================================================================
	// PASO 4: COMMIT ATÓMICO (encabezado + items en una transacción)
	// ========================================================================
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, errors.Wrap(err, "error persisting sale")
	}

	metrics.SalesRegistered.WithLabelValues(string(saleType)).Inc()
	logrus.Infof("✅ Venta registrada: ID=%s, Items=%d, Total=%s", sale.ID, sale.TotalItems(), sale.TotalAmount)

	// ========================================================================
	// PASO 5: AVISO BEST-EFFORT PARA VENTAS A CRÉDITO
	// La venta ya está confirmada: un fallo acá se registra y se descarta
	// ========================================================================
	var customer *entity.Customer
	if sale.IsDeferred() {
		if req.CustomerID != nil {
			c, err := uc.customerRepo.GetByID(ctx, *req.CustomerID)
			if err != nil {
				logrus.Warnf("⚠️ No se pudo cargar el cliente %s para el aviso: %v", *req.CustomerID, err)
			} else {
				customer = c
			}
		}
		uc.dispatcher.Dispatch(sale, customer)
	}

	return newSaleResponse(sale, customer), nil
}

// newSaleResponse arma la respuesta de una venta con sus items
func newSaleResponse(sale *entity.Sale, customer *entity.Customer) *response.SaleResponse {
	items := make([]response.SaleItemResponse, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, response.SaleItemResponse{
			ItemID:      item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Subtotal:    item.Subtotal,
		})
	}

	resp := &response.SaleResponse{
		SaleID:        sale.ID,
		CustomerID:    sale.CustomerID,
		SaleType:      string(sale.SaleType),
		PaymentMethod: string(sale.PaymentMethod),
		TotalAmount:   sale.TotalAmount,
		Status:        string(sale.Status),
		PaymentDate:   sale.PaymentDate,
		Notes:         sale.Notes,
		TotalItems:    sale.TotalItems(),
		Items:         items,
		CreatedAt:     sale.CreatedAt,
	}

	if customer != nil {
		resp.CustomerName = &customer.Name
		resp.CustomerPhone = customer.Phone
	}

	return resp
}
