package order_test

import (
	"fmt"
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	assert.Equal(t, "Pending", order.Pending.String())
	assert.Equal(t, "Active", order.Active.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Shipped", order.Shipped.String())
	assert.Len(t, order.AllStatuses(), 4)
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range order.AllStatuses() {
			t.Run(fmt.Sprintf("should validate %s status", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, raw := range []string{"", "active", "PENDING", "Cancelled", " Pending"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				err := order.Status(raw).Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%q is not a valid status", raw))
			})
		}
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should parse known status", func(t *testing.T) {
		s, err := order.ParseStatus("Shipped")

		require.NoError(t, err)
		assert.Equal(t, order.Shipped, s)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		s, err := order.ParseStatus("Lost")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Empty(t, s)
	})
}

func TestStatus_IsEmpty(t *testing.T) {
	assert.True(t, order.Status("").IsEmpty())
	assert.True(t, order.Status("   ").IsEmpty())
	assert.False(t, order.Pending.IsEmpty())
}
