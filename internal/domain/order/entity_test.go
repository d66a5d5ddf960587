//go:build unit

package order_test

import (
	"testing"
	"time"

	"pharmalink/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{
			{MedicationID: uuid.New(), Name: "Paracetamol", Dosage: "500mg", Price: 500},
		}
	}
	o, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), lines, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("total is the sum of snapshotted line prices", func(t *testing.T) {
		o := newOrder(t,
			order.Line{MedicationID: uuid.New(), Name: "Paracetamol", Price: 500},
			order.Line{MedicationID: uuid.New(), Name: "Amoxicillin", Price: 1200},
		)
		assert.Equal(t, int64(1700), o.Total())
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.PaymentMethod())
	})

	t.Run("empty line list rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), nil, time.Now())
		require.ErrorIs(t, err, order.ErrNoLines)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), []order.Line{
			{MedicationID: uuid.New(), Name: "Paracetamol", Price: -500},
		}, time.Now())
		require.ErrorIs(t, err, order.ErrNegativePrice)
	})

	t.Run("duplicate medication rejected", func(t *testing.T) {
		medID := uuid.New()
		_, err := order.NewOrder(uuid.New(), uuid.New(), uuid.New(), []order.Line{
			{MedicationID: medID, Name: "Paracetamol", Price: 500},
			{MedicationID: medID, Name: "Paracetamol", Price: 500},
		}, time.Now())
		require.ErrorIs(t, err, order.ErrDuplicateLine)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	now := time.Now()

	t.Run("first call applies the transition", func(t *testing.T) {
		o := newOrder(t)
		applied, err := o.MarkPaid(order.PaymentCash, now)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		require.NotNil(t, o.PaymentMethod())
		assert.Equal(t, order.PaymentCash, *o.PaymentMethod())
		require.NotNil(t, o.PaidAt())
	})

	t.Run("second call is a no-op", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.MarkPaid(order.PaymentCash, now)
		require.NoError(t, err)
		total := o.Total()

		applied, err := o.MarkPaid(order.PaymentCard, now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, order.StatusPaid, o.Status())
		assert.Equal(t, order.PaymentCash, *o.PaymentMethod())
		assert.Equal(t, total, o.Total())
	})

	t.Run("no-op on any later stage", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.MarkPaid(order.PaymentMobileMoney, now)
		require.NoError(t, err)
		require.NoError(t, o.AdvanceTo(order.StatusPreparing, now))

		applied, err := o.MarkPaid(order.PaymentCash, now)
		require.NoError(t, err)
		assert.False(t, applied)
		assert.Equal(t, order.StatusPreparing, o.Status())
	})

	t.Run("unknown payment method rejected", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.MarkPaid(order.PaymentMethod("cheque"), now)
		require.ErrorIs(t, err, order.ErrInvalidPaymentMethod)
		assert.Equal(t, order.StatusPending, o.Status())
	})
}

func TestOrder_AdvanceTo(t *testing.T) {
	now := time.Now()

	t.Run("full forward walk stamps each timestamp", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.MarkPaid(order.PaymentCard, now)
		require.NoError(t, err)

		require.NoError(t, o.AdvanceTo(order.StatusPreparing, now))
		require.NotNil(t, o.PreparedAt())

		require.NoError(t, o.AdvanceTo(order.StatusReady, now))
		require.NotNil(t, o.ReadyAt())

		require.NoError(t, o.AdvanceTo(order.StatusCompleted, now))
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, order.StatusCompleted, o.Status())
	})

	t.Run("out-of-sequence advance leaves state untouched", func(t *testing.T) {
		o := newOrder(t)

		err := o.AdvanceTo(order.StatusReady, now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.ReadyAt())
	})

	t.Run("paid is not reachable through AdvanceTo", func(t *testing.T) {
		o := newOrder(t)
		err := o.AdvanceTo(order.StatusPaid, now)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		o := newOrder(t)
		_, err := o.MarkPaid(order.PaymentCash, now)
		require.NoError(t, err)
		require.NoError(t, o.AdvanceTo(order.StatusPreparing, now))
		require.NoError(t, o.AdvanceTo(order.StatusReady, now))
		require.NoError(t, o.AdvanceTo(order.StatusCompleted, now))

		err = o.AdvanceTo(order.StatusCompleted, now)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_Ordering(t *testing.T) {
	sequence := []order.Status{
		order.StatusPending,
		order.StatusPaid,
		order.StatusPreparing,
		order.StatusReady,
		order.StatusCompleted,
	}
	for i := 1; i < len(sequence); i++ {
		assert.True(t, sequence[i-1].Before(sequence[i]), "%s should precede %s", sequence[i-1], sequence[i])
		prev, ok := sequence[i].Prev()
		require.True(t, ok)
		assert.Equal(t, sequence[i-1], prev)
	}
	_, ok := order.StatusPending.Prev()
	assert.False(t, ok)
}
