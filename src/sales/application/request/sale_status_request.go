package request

// UpdateSaleStatusRequest request para marcar una venta como cobrada
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
