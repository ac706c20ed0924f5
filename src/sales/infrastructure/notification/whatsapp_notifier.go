package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/sirupsen/logrus"
)

// WhatsAppNotifier envía el aviso de una venta a crédito al teléfono del
// administrador vía un gateway HTTP de WhatsApp
// Si no hay gateway configurado, el mensaje solo se registra en el log
type WhatsAppNotifier struct {
	httpClient *http.Client
	gatewayURL string
	adminPhone string
}

// NewWhatsAppNotifier crea una nueva instancia del notificador
func NewWhatsAppNotifier(gatewayURL, adminPhone string) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		gatewayURL: gatewayURL,
		adminPhone: adminPhone,
	}
}

// whatsAppMessage es el payload que espera el gateway
type whatsAppMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Notify envía el mensaje de la venta a crédito
// customer puede ser nil (consumidor final)
func (n *WhatsAppNotifier) Notify(ctx context.Context, sale *entity.Sale, customer *entity.Customer) error {
	message := buildDeferredSaleMessage(sale, customer)

	if n.gatewayURL == "" {
		logrus.Infof("📱 Mensaje WhatsApp (gateway no configurado):\n%s", message)
		return nil
	}

	payload, err := json.Marshal(whatsAppMessage{
		Phone:   n.adminPhone,
		Message: message,
	})
	if err != nil {
		return fmt.Errorf("error marshalling whatsapp payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling whatsapp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("whatsapp gateway returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// buildDeferredSaleMessage arma el texto del aviso de venta a crédito
func buildDeferredSaleMessage(sale *entity.Sale, customer *entity.Customer) string {
	var sb strings.Builder

	sb.WriteString("🛒 *NUEVA VENTA A CRÉDITO*\n\n")

	customerName := "Cliente no registrado"
	customerPhone := "No informado"
	if customer != nil {
		customerName = customer.Name
		if customer.Phone != nil {
			customerPhone = *customer.Phone
		}
	}
	sb.WriteString(fmt.Sprintf("👤 Cliente: %s\n", customerName))
	sb.WriteString(fmt.Sprintf("📞 Teléfono: %s\n\n", customerPhone))

	sb.WriteString("📦 *Items:*\n")
	for _, item := range sale.Items {
		sb.WriteString(fmt.Sprintf("• %s (x%d) - $ %s\n", item.ProductName, item.Quantity, item.Subtotal.StringFixed(2)))
	}

	sb.WriteString(fmt.Sprintf("\n💰 *Total: $ %s*\n", sale.TotalAmount.StringFixed(2)))
	sb.WriteString(fmt.Sprintf("📅 Fecha: %s\n", sale.CreatedAt.Format("02/01/2006 15:04")))
	if sale.PaymentDate != nil {
		sb.WriteString(fmt.Sprintf("🗓 Fecha de pago: %s\n", sale.PaymentDate.Format("02/01/2006")))
	}

	sb.WriteString("\n⚠️ *Venta a crédito - hacer seguimiento del pago*")

	return sb.String()
}
