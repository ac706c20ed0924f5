package notification

import (
	"context"
	"sync"
	"testing"
	"time"

	"sales/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	notified []uuid.UUID
	err      error
	block    chan struct{} // si no es nil, Notify espera a que se cierre
}

func (n *recordingNotifier) Notify(_ context.Context, sale *entity.Sale, _ *entity.Customer) error {
	if n.block != nil {
		<-n.block
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, sale.ID)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.notified)
}

func testSale(t *testing.T) *entity.Sale {
	t.Helper()
	item, err := entity.NewSaleItem(uuid.New(), "Arroz 1kg", 2, decimal.NewFromFloat(10.00))
	require.NoError(t, err)

	paymentDate := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	sale, err := entity.NewSale(nil, entity.SaleTypeDeferred, entity.PaymentMethodCash,
		&paymentDate, nil, []entity.SaleItem{*item}, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return sale
}

func TestDispatcher_DeliversQueuedNotifications(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewDispatcher(notifier, 8)
	dispatcher.Start()

	assert.True(t, dispatcher.Dispatch(testSale(t), nil))
	assert.True(t, dispatcher.Dispatch(testSale(t), nil))

	dispatcher.Stop()
	assert.Equal(t, 2, notifier.count())
}

func TestDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	block := make(chan struct{})
	notifier := &recordingNotifier{block: block}
	dispatcher := NewDispatcher(notifier, 1)
	dispatcher.Start()

	// El primero entra al worker (bloqueado), el segundo llena la cola
	require.True(t, dispatcher.Dispatch(testSale(t), nil))
	// Dar tiempo a que el worker tome el primer job
	require.Eventually(t, func() bool {
		return dispatcher.Dispatch(testSale(t), nil)
	}, time.Second, 10*time.Millisecond)

	// Con worker bloqueado y cola llena, el siguiente se descarta
	assert.False(t, dispatcher.Dispatch(testSale(t), nil))

	close(block)
	dispatcher.Stop()
}

func TestDispatcher_DispatchAfterStopIsDropped(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewDispatcher(notifier, 8)
	dispatcher.Start()
	dispatcher.Stop()

	// Un Dispatch tardío no debe entrar en pánico, solo descartar
	assert.False(t, dispatcher.Dispatch(testSale(t), nil))
	assert.Equal(t, 0, notifier.count())

	// Stop es idempotente
	dispatcher.Stop()
}

func TestDispatcher_NotifierFailureIsIsolated(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("gateway unreachable")}
	dispatcher := NewDispatcher(notifier, 8)
	dispatcher.Start()

	// El fallo del notificador no se propaga al caller
	assert.True(t, dispatcher.Dispatch(testSale(t), nil))
	dispatcher.Stop()
	assert.Equal(t, 0, notifier.count())
}

func TestBuildDeferredSaleMessage(t *testing.T) {
	sale := testSale(t)

	t.Run("con cliente registrado", func(t *testing.T) {
		phone := "+549111234567"
		customer, err := entity.NewCustomer("María García", nil, &phone, nil, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)

		message := buildDeferredSaleMessage(sale, customer)
		assert.Contains(t, message, "NUEVA VENTA A CRÉDITO")
		assert.Contains(t, message, "María García")
		assert.Contains(t, message, "+549111234567")
		assert.Contains(t, message, "Arroz 1kg (x2) - $ 20.00")
		assert.Contains(t, message, "Total: $ 20.00")
		assert.Contains(t, message, "Fecha de pago: 10/04/2025")
	})

	t.Run("sin cliente registrado", func(t *testing.T) {
		message := buildDeferredSaleMessage(sale, nil)
		assert.Contains(t, message, "Cliente no registrado")
		assert.Contains(t, message, "No informado")
	})
}
