package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func price(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func TestNewOrder(t *testing.T) {
	defaults := order.StandardDefaults()

	t.Run("should default status and compute total", func(t *testing.T) {
		o, err := order.NewOrder(order.Params{Quantity: 2, UnitPrice: price("10.50")}, defaults, fixedNow)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "21.00", o.Total().String())
		assert.Equal(t, fixedNow, o.Date())
		assert.Equal(t, int64(0), o.ID())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should substitute defaults for zero values", func(t *testing.T) {
		o, err := order.NewOrder(order.Params{}, defaults, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.CustomerID())
		assert.Equal(t, int64(1), o.ProductID())
		assert.Equal(t, 1, o.Quantity())
		assert.Equal(t, "1.00", o.UnitPrice().String())
		assert.Equal(t, "1.00", o.Total().String())
	})

	t.Run("should substitute quantity only and keep supplied price", func(t *testing.T) {
		o, err := order.NewOrder(order.Params{Quantity: 0, UnitPrice: price("7.25")}, defaults, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, 1, o.Quantity())
		assert.Equal(t, "7.25", o.Total().String())
	})

	t.Run("should honour configured defaults", func(t *testing.T) {
		custom := order.Defaults{
			CustomerID: 9,
			ProductID:  3,
			Quantity:   5,
			UnitPrice:  kernel.MustNewMoney(price("2.00")),
		}

		o, err := order.NewOrder(order.Params{}, custom, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, int64(9), o.CustomerID())
		assert.Equal(t, int64(3), o.ProductID())
		assert.Equal(t, "10.00", o.Total().String())
	})

	t.Run("should keep supplied status date and notes", func(t *testing.T) {
		placed := fixedNow.Add(-48 * time.Hour)

		o, err := order.NewOrder(order.Params{
			CustomerID: 4,
			ProductID:  8,
			Quantity:   3,
			UnitPrice:  price("0.99"),
			Status:     order.Active,
			Date:       placed,
			Notes:      "leave at the door",
		}, defaults, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, order.Active, o.Status())
		assert.Equal(t, placed, o.Date())
		assert.Equal(t, "leave at the door", o.Notes())
		assert.Equal(t, "2.97", o.Total().String())
	})

	t.Run("should reject a total the store cannot hold", func(t *testing.T) {
		o, err := order.NewOrder(order.Params{Quantity: 1000, UnitPrice: price("99999999.99")}, defaults, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("should reject a unit price the store cannot hold", func(t *testing.T) {
		_, err := order.NewOrder(order.Params{Quantity: 1, UnitPrice: price("10000000000")}, defaults, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should collect every validation error", func(t *testing.T) {
		o, err := order.NewOrder(order.Params{
			CustomerID: -1,
			Quantity:   -3,
			UnitPrice:  price("-2"),
			Status:     "Lost",
		}, defaults, fixedNow)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "customerId")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "amount")
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	var nilOrder *order.Order
	assert.Equal(t, order.ErrOrderIsNotConstructed, nilOrder.Validate())
	assert.Equal(t, order.ErrOrderIsNotConstructed, (&order.Order{}).Validate())
}

func TestOrder_AssignID(t *testing.T) {
	o, err := order.NewOrder(order.Params{}, order.StandardDefaults(), fixedNow)
	require.NoError(t, err)

	require.NoError(t, o.AssignID(15))
	assert.Equal(t, int64(15), o.ID())

	require.NoError(t, o.AssignID(15))
	require.ErrorIs(t, o.AssignID(16), order.ErrIDIsAlreadyAssigned)
	require.ErrorIs(t, o.AssignID(0), errs.ErrValueIsInvalid)
	assert.Equal(t, int64(15), o.ID())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should keep the stored total", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 1, 2, 4, price("2.50"), price("9.00"), order.Shipped, fixedNow, "n")

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(3), o.ID())
		assert.Equal(t, "9.00", o.Total().String())
		assert.Equal(t, order.Shipped, o.Status())
	})

	t.Run("should reject corrupt rows", func(t *testing.T) {
		_, err := order.RestoreOrder(3, 1, 2, 4, price("-1"), price("9.00"), "Broken", fixedNow, "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_Update(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(order.Params{Quantity: 2, UnitPrice: price("5")}, order.StandardDefaults(), fixedNow)
		require.NoError(t, err)
		require.NoError(t, o.AssignID(1))
		return o
	}

	t.Run("should replace fields and recompute total", func(t *testing.T) {
		o := newOrder(t)

		err := o.Update(order.Params{CustomerID: 2, ProductID: 3, Quantity: 4, UnitPrice: price("2.5"), Notes: "x"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID())
		assert.Equal(t, int64(2), o.CustomerID())
		assert.Equal(t, int64(3), o.ProductID())
		assert.Equal(t, "10.00", o.Total().String())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, fixedNow, o.Date())
		assert.Equal(t, "x", o.Notes())
	})

	t.Run("should overwrite status without consulting the policy", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.Update(order.Params{CustomerID: 1, ProductID: 1, Quantity: 1, Status: order.Shipped}))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should leave the order untouched on invalid input", func(t *testing.T) {
		o := newOrder(t)

		err := o.Update(order.Params{CustomerID: 1, ProductID: 1, Quantity: 0})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, "10.00", o.Total().String())
	})

	t.Run("should leave the order untouched when the total overflows", func(t *testing.T) {
		o := newOrder(t)

		err := o.Update(order.Params{CustomerID: 1, ProductID: 1, Quantity: 2000, UnitPrice: price("9999999.99")})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 2, o.Quantity())
		assert.Equal(t, "10.00", o.Total().String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	policy := utcPolicy(t)

	restore := func(t *testing.T, status order.Status, placed time.Time) *order.Order {
		t.Helper()
		o, err := order.RestoreOrder(11, 1, 1, 1, price("1"), price("1"), status, placed, "")
		require.NoError(t, err)
		return o
	}

	t.Run("should activate order placed yesterday and raise event", func(t *testing.T) {
		o := restore(t, order.Pending, fixedNow.Add(-24*time.Hour))

		err := o.ChangeStatus(order.Active, policy, fixedNow)

		require.NoError(t, err)
		assert.Equal(t, order.Active, o.Status())
		require.Len(t, o.DomainEvents(), 1)

		event, ok := o.DomainEvents()[0].(order.StatusChangedEvent)
		require.True(t, ok)
		assert.Equal(t, int64(11), event.OrderID)
		assert.Equal(t, order.Pending, event.From)
		assert.Equal(t, order.Active, event.To)
		assert.Equal(t, "11", event.AggregateKey())
		assert.Equal(t, order.StatusChangedEventName, event.EventName())
		assert.Equal(t, fixedNow, event.OccurredAt())

		o.ClearDomainEvents()
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should reject activation of order placed before hours today", func(t *testing.T) {
		placed := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
		o := restore(t, order.Pending, placed)

		err := o.ChangeStatus(order.Active, policy, fixedNow)

		var rejected *errs.TransitionRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Cannot activate before hours", rejected.Reason)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should require a status", func(t *testing.T) {
		o := restore(t, order.Active, fixedNow)

		err := o.ChangeStatus("", policy, fixedNow)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Active, o.Status())
	})

	t.Run("should reject unknown status with reason", func(t *testing.T) {
		o := restore(t, order.Active, fixedNow)

		err := o.ChangeStatus("Teleported", policy, fixedNow)

		var rejected *errs.TransitionRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, order.ReasonInvalidStatus, rejected.Reason)
	})

	t.Run("should ship active order then allow return to pending", func(t *testing.T) {
		o := restore(t, order.Active, fixedNow)

		require.NoError(t, o.ChangeStatus(order.Shipped, policy, fixedNow))
		require.NoError(t, o.ChangeStatus(order.Pending, policy, fixedNow))

		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.DomainEvents(), 2)
	})

	t.Run("should not touch quantity price or total", func(t *testing.T) {
		o, err := order.RestoreOrder(11, 1, 1, 3, price("2"), price("5"), order.Active, fixedNow, "")
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.Completed, policy, fixedNow))

		assert.Equal(t, 3, o.Quantity())
		assert.Equal(t, "5.00", o.Total().String())
	})
}
