package request

// CreateCustomerRequest request para registrar un cliente
type CreateCustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

// UpdateCustomerRequest request para actualizar un cliente existente
type UpdateCustomerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Document *string `json:"document"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}
