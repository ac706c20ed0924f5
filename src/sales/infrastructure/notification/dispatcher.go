package notification

import (
	"context"
	"sync"
	"time"

	"sales/src/sales/domain/entity"
	"sales/src/sales/domain/port"
	"sales/src/sales/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

// job es un aviso pendiente de envío
type job struct {
	sale     *entity.Sale
	customer *entity.Customer
}

// Dispatcher desacopla el envío de avisos del ciclo request/response:
// encolar nunca bloquea al caller y un envío fallido se registra y se
// descarta, sin reintentos y sin afectar la venta ya confirmada
type Dispatcher struct {
	notifier port.Notifier
	jobs     chan job
	wg       sync.WaitGroup
	mu       sync.Mutex
	stopped  bool
	timeout  time.Duration
}

// NewDispatcher crea un dispatcher con una cola acotada de tamaño bufferSize
func NewDispatcher(notifier port.Notifier, bufferSize int) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 64
	}
	return &Dispatcher{
		notifier: notifier,
		jobs:     make(chan job, bufferSize),
		timeout:  30 * time.Second,
	}
}

// Start lanza el worker que procesa la cola de avisos
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for j := range d.jobs {
			d.deliver(j)
		}
	}()
}

// Dispatch encola el aviso de una venta a crédito sin bloquear
// Si la cola está llena, o el dispatcher ya fue detenido, el aviso se
// descarta con un warning
func (d *Dispatcher) Dispatch(sale *entity.Sale, customer *entity.Customer) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		metrics.NotificationsDropped.Inc()
		logrus.Warnf("⚠️ Dispatcher detenido, se descarta el aviso de la venta %s", sale.ID)
		return false
	}

	select {
	case d.jobs <- job{sale: sale, customer: customer}:
		return true
	default:
		metrics.NotificationsDropped.Inc()
		logrus.Warnf("⚠️ Cola de avisos llena, se descarta el aviso de la venta %s", sale.ID)
		return false
	}
}

// Stop cierra la cola y espera a que el worker termine los avisos pendientes
// Idempotente; todo Dispatch posterior descarta el aviso
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if !d.stopped {
		d.stopped = true
		close(d.jobs)
	}
	d.mu.Unlock()
	d.wg.Wait()
}

// deliver hace un único intento de envío
func (d *Dispatcher) deliver(j job) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.notifier.Notify(ctx, j.sale, j.customer); err != nil {
		metrics.NotificationFailures.Inc()
		logrus.Warnf("⚠️ Falló el aviso de la venta %s: %v", j.sale.ID, err)
		return
	}

	logrus.Infof("📨 Aviso enviado para la venta %s", j.sale.ID)
}
