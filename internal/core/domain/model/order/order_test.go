package order_test

import (
	"testing"
	"time"

	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCourseIDs(n int) []kernel.UUID {
	ids := make([]kernel.UUID, 0, n)
	for range n {
		ids = append(ids, kernel.NewUUID())
	}
	return ids
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validBuyer := kernel.NewUUID()
	validCourses := validCourseIDs(2)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validCourses, "credit_card")

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.BuyerID().IsEqual(validBuyer))
		assert.Equal(t, validCourses, o.CourseIDs())
		assert.Equal(t, "credit_card", o.PaymentMethod())
	})

	t.Run("should default status and paymentStatus to pending", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, validCourses, "paypal")

		require.NoError(t, err)
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should default purchasedAt to creation time", func(t *testing.T) {
		before := time.Now()
		o, err := order.NewOrder(validID, validBuyer, validCourses, "paypal")
		after := time.Now()

		require.NoError(t, err)
		assert.False(t, o.PurchasedAt().Before(before))
		assert.False(t, o.PurchasedAt().After(after))
		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.CancelledAt())
		assert.Zero(t, o.TotalPrice())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, validBuyer, validCourses, "credit_card")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with missing buyer", func(t *testing.T) {
		var invalidBuyer kernel.UUID

		o, err := order.NewOrder(validID, invalidBuyer, validCourses, "credit_card")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: buyer")
	})

	t.Run("should fail with empty course list", func(t *testing.T) {
		o, err := order.NewOrder(validID, validBuyer, nil, "credit_card")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: courses")
		assert.Contains(t, err.Error(), "at least one course")
	})

	t.Run("should fail with invalid course reference", func(t *testing.T) {
		courses := []kernel.UUID{kernel.NewUUID(), {}}

		o, err := order.NewOrder(validID, validBuyer, courses, "credit_card")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is invalid: courses")
	})

	t.Run("should fail with missing payment method", func(t *testing.T) {
		for _, pm := range []string{"", "   "} {
			o, err := order.NewOrder(validID, validBuyer, validCourses, pm)

			require.Error(t, err)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "value is required: paymentMethod")
		}
	})

	t.Run("should report all validation errors joined", func(t *testing.T) {
		var invalidBuyer kernel.UUID

		o, err := order.NewOrder(validID, invalidBuyer, nil, "")

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "value is required: buyer")
		assert.Contains(t, err.Error(), "value is required: courses")
		assert.Contains(t, err.Error(), "value is required: paymentMethod")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass validation for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validCourseIDs(1), "paypal")

		require.NoError(t, o.Validate())
	})

	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value order", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validCourseIDs(1), "paypal")
		require.NoError(t, err)
		return o
	}

	t.Run("should change status to a valid value", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Unknown)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should not set timestamps by itself", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed))
		assert.Nil(t, o.CompletedAt())

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("should not block transitions between terminal states", func(t *testing.T) {
		o := newOrder(t)

		require.NoError(t, o.ChangeStatus(order.Completed))
		require.NoError(t, o.ChangeStatus(order.Cancelled))
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_ApplyStatusTimestamps(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validCourseIDs(1), "paypal")
		require.NoError(t, err)
		return o
	}

	t.Run("should stamp completedAt when completed", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now()

		require.NoError(t, o.ChangeStatus(order.Completed))
		o.ApplyStatusTimestamps(now)

		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, now, *o.CompletedAt())
		assert.Nil(t, o.CancelledAt())
	})

	t.Run("should stamp cancelledAt when cancelled", func(t *testing.T) {
		o := newOrder(t)
		now := time.Now()

		require.NoError(t, o.ChangeStatus(order.Cancelled))
		o.ApplyStatusTimestamps(now)

		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, now, *o.CancelledAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("should stamp completedAt exactly once", func(t *testing.T) {
		o := newOrder(t)
		first := time.Now()

		require.NoError(t, o.ChangeStatus(order.Completed))
		o.ApplyStatusTimestamps(first)
		o.ApplyStatusTimestamps(first.Add(time.Hour))

		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, first, *o.CompletedAt())
	})

	t.Run("should not stamp anything while pending", func(t *testing.T) {
		o := newOrder(t)

		o.ApplyStatusTimestamps(time.Now())

		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.CancelledAt())
	})
}

func TestOrder_SetTotalPrice(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validCourseIDs(2), "paypal")
	require.NoError(t, err)

	t.Run("should store non-negative totals", func(t *testing.T) {
		require.NoError(t, o.SetTotalPrice(25))
		assert.InDelta(t, 25.0, o.TotalPrice(), 0.0001)

		require.NoError(t, o.SetTotalPrice(0))
		assert.Zero(t, o.TotalPrice())
	})

	t.Run("should reject negative totals", func(t *testing.T) {
		err := o.SetTotalPrice(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "totalPrice")
	})
}

func TestOrder_SetNotes(t *testing.T) {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), validCourseIDs(1), "paypal")
	require.NoError(t, err)

	o.SetNotes("  gift for a friend  ")

	assert.Equal(t, "gift for a friend", o.Notes())
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	buyer := kernel.NewUUID()
	courses := validCourseIDs(2)
	purchased := time.Now().Add(-24 * time.Hour)
	completed := time.Now().Add(-time.Hour)

	t.Run("should restore a persisted order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			id, buyer, courses,
			order.Completed, "bank_transfer", order.PaymentCompleted,
			purchased, &completed, nil, "restored", 42.5,
		)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
		assert.Equal(t, purchased, o.PurchasedAt())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completed, *o.CompletedAt())
		assert.Nil(t, o.CancelledAt())
		assert.Equal(t, "restored", o.Notes())
		assert.InDelta(t, 42.5, o.TotalPrice(), 0.0001)
	})

	t.Run("should reject invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, buyer, courses,
			order.Unknown, "bank_transfer", order.PaymentCompleted,
			purchased, nil, nil, "", 0,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})

	t.Run("should validate the same fields as NewOrder", func(t *testing.T) {
		_, err := order.RestoreOrder(
			id, buyer, nil,
			order.Pending, "", order.PaymentPending,
			purchased, nil, nil, "", 0,
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "value is required: courses")
		assert.Contains(t, err.Error(), "value is required: paymentMethod")
	})
}

func TestChange(t *testing.T) {
	t.Run("Creation marks a new order with a freshly set status", func(t *testing.T) {
		change := order.Creation()

		assert.True(t, change.IsNew)
		assert.True(t, change.StatusChanged)
	})

	t.Run("ChangeSince detects status changes", func(t *testing.T) {
		assert.True(t, order.ChangeSince(order.Pending, order.Cancelled).StatusChanged)
		assert.False(t, order.ChangeSince(order.Pending, order.Pending).StatusChanged)
		assert.False(t, order.ChangeSince(order.Pending, order.Cancelled).IsNew)
	})
}
