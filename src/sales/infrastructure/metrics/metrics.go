package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores del servicio, expuestos en /metrics cuando Prometheus está habilitado
var (
	// SalesRegistered cuenta las ventas registradas por tipo
	SalesRegistered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sales_registered_total",
		Help: "Total de ventas registradas, por tipo de venta",
	}, []string{"sale_type"})

	// NotificationFailures cuenta los avisos de venta a crédito fallidos
	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sale_notification_failures_total",
		Help: "Total de avisos de venta a crédito que fallaron",
	})

	// NotificationsDropped cuenta los avisos descartados por cola llena
	NotificationsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sale_notifications_dropped_total",
		Help: "Total de avisos descartados por cola llena",
	})
)
