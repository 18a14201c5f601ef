package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"rentalvoice/internal/core/application/usecases/commands"
	"rentalvoice/internal/core/domain/model/kernel"
	"rentalvoice/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Put(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) List(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockFinder struct{ mock.Mock }

func (m *MockFinder) Find(id kernel.OrderID) (*order.Order, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*order.Order), args.Bool(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock(millis int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(millis) }
}

func TestIngestOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewIngestOrderCommand(
		[]byte(`{"order":{"equipment":"excavator","duration":"3 days","location":"Site A"}}`))
	require.NoError(t, err)

	store := new(MockOrderStore)
	refresher := new(MockRefresher)

	var persisted *order.Order
	mock.InOrder(
		store.On("Put", ctx, mock.AnythingOfType("*order.Order")).
			Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
			Return(nil).Once(),
		refresher.On("Refresh", ctx).Return(nil).Once(),
	)

	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(1735689600000), discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, persisted)
	assert.Equal(t, "ORD-1735689600000", persisted.ID().String())
	assert.Equal(t, int64(1735689600000), persisted.Timestamp().Millis())
	assert.Equal(t, "excavator", persisted.Equipment().Value())
	assert.Equal(t, "3 days", persisted.Duration().Value())
	assert.Equal(t, "Site A", persisted.Location().Value())
	assert.Equal(t, order.Pending, persisted.Status())

	store.AssertExpectations(t)
	refresher.AssertExpectations(t)
}

func TestIngestOrderCommandHandler_Handle_FillsUnsetFields(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewIngestOrderCommand([]byte(`{"order":{"equipment":"crane"}}`))
	require.NoError(t, err)

	store := new(MockOrderStore)
	refresher := new(MockRefresher)

	var persisted *order.Order
	store.On("Put", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { persisted = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	refresher.On("Refresh", ctx).Return(nil).Once()

	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(1000), discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, persisted)
	assert.True(t, persisted.Equipment().IsSet())
	assert.False(t, persisted.Duration().IsSet())
	assert.False(t, persisted.Location().IsSet())
}

func TestIngestOrderCommandHandler_Handle_DropsPayloadWithoutOrder(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	refresher := new(MockRefresher)
	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(1000), discardLogger())

	for _, payload := range []string{
		`{"transcript":"hello"}`,
		`{"order":null}`,
		`not json at all`,
		`[1,2,3]`,
	} {
		cmd, err := commands.NewIngestOrderCommand([]byte(payload))
		require.NoError(t, err)
		require.NoError(t, h.Handle(ctx, cmd), "payload %q should be dropped silently", payload)
	}

	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
}

func TestIngestOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	var cmd commands.IngestOrderCommand // not constructed properly
	h := commands.NewIngestOrderCommandHandler(
		new(MockOrderStore), new(MockRefresher), fixedClock(1000), discardLogger())

	require.Error(t, h.Handle(t.Context(), cmd))
}

func TestIngestOrderCommandHandler_Handle_PutError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewIngestOrderCommand([]byte(`{"order":{}}`))
	require.NoError(t, err)

	putErr := errors.New("storage write failed")
	store := new(MockOrderStore)
	refresher := new(MockRefresher)
	store.On("Put", ctx, mock.Anything).Return(putErr).Once()

	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(1000), discardLogger())
	require.ErrorIs(t, h.Handle(ctx, cmd), putErr)

	// no refresh after a failed write; the phantom order never reaches views
	refresher.AssertNotCalled(t, "Refresh", mock.Anything)
	store.AssertExpectations(t)
}

func TestIngestOrderCommandHandler_Handle_RefreshErrorIsNotFatal(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewIngestOrderCommand([]byte(`{"order":{}}`))
	require.NoError(t, err)

	store := new(MockOrderStore)
	refresher := new(MockRefresher)
	store.On("Put", ctx, mock.Anything).Return(nil).Once()
	refresher.On("Refresh", ctx).Return(errors.New("listing failed")).Once()

	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(1000), discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
}

func TestIngestOrderCommandHandler_Handle_SameMillisecondGetsDistinctTimestamps(t *testing.T) {
	ctx := t.Context()
	store := new(MockOrderStore)
	refresher := new(MockRefresher)

	var persisted []*order.Order
	store.On("Put", ctx, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { persisted = append(persisted, args.Get(1).(*order.Order)) }).
		Return(nil).Twice()
	refresher.On("Refresh", ctx).Return(nil).Twice()

	h := commands.NewIngestOrderCommandHandler(store, refresher, fixedClock(5000), discardLogger())
	for range 2 {
		cmd, err := commands.NewIngestOrderCommand([]byte(`{"order":{}}`))
		require.NoError(t, err)
		require.NoError(t, h.Handle(ctx, cmd))
	}

	require.Len(t, persisted, 2)
	assert.Equal(t, int64(5000), persisted[0].Timestamp().Millis())
	assert.Equal(t, int64(5001), persisted[1].Timestamp().Millis())
	assert.False(t, persisted[0].ID().IsEqual(persisted[1].ID()))
}
