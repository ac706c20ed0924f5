package entity

import "errors"

// Errores de dominio del módulo de ventas
var (
	ErrInvalidSaleType      = errors.New("sale_type must be \"standard\" or \"deferred\"")
	ErrInvalidPaymentMethod = errors.New("payment_method must be \"cash\", \"card\" or \"transfer\"")
	ErrSaleMustHaveItems    = errors.New("sale must contain at least one item")
	ErrProductIDRequired    = errors.New("product_id is required")
	ErrProductNameRequired  = errors.New("product_name is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrInvalidPrice         = errors.New("price must be greater than 0")
	ErrNameRequired         = errors.New("name is required")
	ErrNameTooShort         = errors.New("name must have at least 2 characters")
	ErrInvalidStock         = errors.New("stock cannot be negative")

	ErrProductNotFound  = errors.New("product not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSaleNotFound     = errors.New("sale not found")

	// La venta solo transiciona pending -> paid una única vez
	ErrSaleAlreadyPaid   = errors.New("sale is already paid")
	ErrInvalidSaleStatus = errors.New("status must be \"paid\"")
)
