package commands_test

import (
	"context"
	"testing"
	"time"

	"reservation/internal/core/application/usecases/commands"
	"reservation/internal/core/domain/model/customer"
	"reservation/internal/core/domain/model/payment"
	"reservation/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookItineraryCommandHandler(t *testing.T) {
	t.Run("should book, charge and store the order", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		cmd, err := commands.NewBookItineraryCommand("John", []string{"John", "Jane"}, []int{101}, 200, alwaysPaid{})
		require.NoError(t, err)

		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, result.Paid)
		assert.NotEmpty(t, result.Reference)

		stored, err := fx.orders.Get(ctx, result.OrderID)
		require.NoError(t, err)
		assert.True(t, stored.IsClosed())

		f, err := fx.flights.Get(ctx, 101)
		require.NoError(t, err)
		assert.Len(t, f.Passengers(), 2)
		assert.Equal(t, 1, f.Observers())
	})

	t.Run("declined charge stores the order open", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		cmd, err := commands.NewBookItineraryCommand("John", []string{"John"}, []int{101}, 100, alwaysDeclined{})
		require.NoError(t, err)

		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, result.Paid)

		open, err := fx.orders.GetAllOpen(ctx)
		require.NoError(t, err)
		require.Len(t, open, 1)
		assert.True(t, open[0].ID().IsEqual(result.OrderID))
	})

	t.Run("charge over the card limit stores the order open and fails", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		card := payment.NewCreditCard("4111111111111111", time.Now().Add(24*time.Hour), "123", 50)
		cmd, err := commands.NewBookItineraryCommand("John", []string{"John"}, []int{101},
			100, payment.NewCreditCardMethod(card))
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, payment.ErrCardLimitExceeded)
		open, openErr := fx.orders.GetAllOpen(ctx)
		require.NoError(t, openErr)
		assert.Len(t, open, 1)
	})

	t.Run("unknown flight fails without storing anything", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		cmd, err := commands.NewBookItineraryCommand("John", []string{"John"}, []int{999}, 100, alwaysPaid{})
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		open, openErr := fx.orders.GetAllOpen(ctx)
		require.NoError(t, openErr)
		assert.Empty(t, open)
	})

	t.Run("unknown customer fails", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		cmd, err := commands.NewBookItineraryCommand("Nobody", []string{"Nobody"}, []int{101}, 100, alwaysPaid{})
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("passenger on the no-fly list fails without storing anything", func(t *testing.T) {
		ctx := context.Background()
		fx := newFixture(t, "Peter")
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)
		cmd, err := commands.NewBookItineraryCommand("John", []string{"Peter"}, []int{101}, 100, alwaysPaid{})
		require.NoError(t, err)

		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, customer.ErrInvalidOrder)
		f, getErr := fx.flights.Get(ctx, 101)
		require.NoError(t, getErr)
		assert.Empty(t, f.Passengers())
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		fx := newFixture(t)
		h := commands.NewBookItineraryCommandHandler(fx.customers, fx.flights, fx.orders)

		_, err := h.Handle(context.Background(), commands.BookItineraryCommand{})

		require.ErrorIs(t, err, commands.ErrBookItineraryCommandIsNotConstructed)
	})
}
