package subscription

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "milkrun/internal/domain/subscription/valueobjects"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestSubscription(t *testing.T) *Subscription {
	t.Helper()
	sub, err := NewSubscription(
		"+919876543210",
		[]Item{{ProductID: 0, Quantity: 1, PricePerUnit: 30}},
		[]string{"Mon", "Thu"},
		"06:00-08:00",
		"12 Dairy Lane",
		testNow.Add(-24*time.Hour),
		testNow,
	)
	require.NoError(t, err)
	return sub
}

func TestNewSubscription(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*subscriptionArgs)
		wantErr string
	}{
		{name: "valid subscription"},
		{
			name:    "missing phone",
			mutate:  func(a *subscriptionArgs) { a.phone = " " },
			wantErr: "phone number is required",
		},
		{
			name:    "no items",
			mutate:  func(a *subscriptionArgs) { a.items = nil },
			wantErr: "subscription items are required",
		},
		{
			name:    "invalid delivery day",
			mutate:  func(a *subscriptionArgs) { a.days = []string{"Monday"} },
			wantErr: "invalid delivery day",
		},
		{
			name:    "no delivery days",
			mutate:  func(a *subscriptionArgs) { a.days = nil },
			wantErr: "delivery days are required",
		},
		{
			name:    "missing time slot",
			mutate:  func(a *subscriptionArgs) { a.slot = "" },
			wantErr: "delivery time slot is required",
		},
		{
			name:    "missing address",
			mutate:  func(a *subscriptionArgs) { a.address = "" },
			wantErr: "delivery address is required",
		},
		{
			name:    "zero start date",
			mutate:  func(a *subscriptionArgs) { a.start = time.Time{} },
			wantErr: "start date is required",
		},
		{
			name: "non-positive quantity",
			mutate: func(a *subscriptionArgs) {
				a.items = []Item{{ProductID: 0, Quantity: -1, PricePerUnit: 30}}
			},
			wantErr: "invalid quantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := defaultSubscriptionArgs()
			if tt.mutate != nil {
				tt.mutate(&args)
			}

			sub, err := NewSubscription(args.phone, args.items, args.days, args.slot, args.address, args.start, testNow)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, vo.StatusActive, sub.Status())
			assert.Equal(t, uint64(0), sub.ID())
		})
	}
}

type subscriptionArgs struct {
	phone   string
	items   []Item
	days    []string
	slot    string
	address string
	start   time.Time
}

func defaultSubscriptionArgs() subscriptionArgs {
	return subscriptionArgs{
		phone:   "+919876543210",
		items:   []Item{{ProductID: 0, Quantity: 1, PricePerUnit: 30}},
		days:    []string{"Mon", "Thu"},
		slot:    "06:00-08:00",
		address: "12 Dairy Lane",
		start:   testNow.Add(-24 * time.Hour),
	}
}

func TestSubscription_Lifecycle(t *testing.T) {
	sub := newTestSubscription(t)

	require.NoError(t, sub.Pause(testNow))
	assert.Equal(t, vo.StatusPaused, sub.Status())

	require.NoError(t, sub.Resume(testNow))
	assert.Equal(t, vo.StatusActive, sub.Status())

	require.NoError(t, sub.Cancel(testNow))
	assert.Equal(t, vo.StatusCancelled, sub.Status())
}

func TestSubscription_InvalidTransitions(t *testing.T) {
	t.Run("pause twice", func(t *testing.T) {
		sub := newTestSubscription(t)
		require.NoError(t, sub.Pause(testNow))

		err := sub.Pause(testNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	})

	t.Run("resume active", func(t *testing.T) {
		sub := newTestSubscription(t)

		err := sub.Resume(testNow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		sub := newTestSubscription(t)
		require.NoError(t, sub.Cancel(testNow))

		assert.True(t, errors.Is(sub.Resume(testNow), ErrInvalidStatusTransition))
		assert.True(t, errors.Is(sub.Pause(testNow), ErrInvalidStatusTransition))
		assert.True(t, errors.Is(sub.Cancel(testNow), ErrInvalidStatusTransition))
	})

	t.Run("paused can cancel", func(t *testing.T) {
		sub := newTestSubscription(t)
		require.NoError(t, sub.Pause(testNow))
		require.NoError(t, sub.Cancel(testNow))
		assert.Equal(t, vo.StatusCancelled, sub.Status())
	})
}

func TestSubscription_SetStatus(t *testing.T) {
	sub := newTestSubscription(t)
	require.NoError(t, sub.Cancel(testNow))

	// Admin override bypasses the terminal-cancelled rule.
	require.NoError(t, sub.SetStatus(vo.StatusActive, testNow))
	assert.Equal(t, vo.StatusActive, sub.Status())

	assert.Error(t, sub.SetStatus(vo.SubscriptionStatus("dormant"), testNow))
}

func TestSubscription_IsDue(t *testing.T) {
	sub := newTestSubscription(t)

	assert.True(t, sub.IsDue(sub.NextOrderDate()))
	assert.True(t, sub.IsDue(sub.NextOrderDate().Add(time.Hour)))
	assert.False(t, sub.IsDue(sub.NextOrderDate().Add(-time.Hour)))

	require.NoError(t, sub.Pause(testNow))
	assert.False(t, sub.IsDue(sub.NextOrderDate().Add(time.Hour)), "paused subscriptions are never due")
}

func TestSubscription_AdvanceSchedule(t *testing.T) {
	sub := newTestSubscription(t)

	next := testNow.Add(48 * time.Hour)
	sub.AdvanceSchedule(next, testNow)
	assert.Equal(t, next, sub.NextOrderDate())
	assert.False(t, sub.IsDue(testNow))
}

func TestSubscription_ApplyPatch(t *testing.T) {
	t.Run("empty patch is a no-op", func(t *testing.T) {
		sub := newTestSubscription(t)
		before := sub.UpdatedAt()

		require.NoError(t, sub.ApplyPatch(Patch{}, testNow.Add(time.Hour)))
		assert.Equal(t, before, sub.UpdatedAt())
	})

	t.Run("partial patch only touches supplied fields", func(t *testing.T) {
		sub := newTestSubscription(t)
		slot := "17:00-19:00"

		require.NoError(t, sub.ApplyPatch(Patch{DeliveryTimeSlot: &slot}, testNow))
		assert.Equal(t, slot, sub.DeliveryTimeSlot())
		assert.Equal(t, []string{"Mon", "Thu"}, sub.DeliveryDays())
		assert.Equal(t, "12 Dairy Lane", sub.DeliveryAddress())
	})

	t.Run("invalid field rejects whole patch", func(t *testing.T) {
		sub := newTestSubscription(t)
		empty := ""

		err := sub.ApplyPatch(Patch{
			DeliveryDays:    []string{"Fri"},
			DeliveryAddress: &empty,
		}, testNow)
		require.Error(t, err)
		assert.Equal(t, []string{"Mon", "Thu"}, sub.DeliveryDays(), "no field applied on failure")
	})

	t.Run("items replace wholesale", func(t *testing.T) {
		sub := newTestSubscription(t)
		items := []Item{
			{ProductID: 2, Quantity: 3, PricePerUnit: 15},
		}

		require.NoError(t, sub.ApplyPatch(Patch{Items: items}, testNow))
		assert.Equal(t, items, sub.Items())
	})

	t.Run("explicit empty items rejected", func(t *testing.T) {
		sub := newTestSubscription(t)

		err := sub.ApplyPatch(Patch{Items: []Item{}}, testNow)
		assert.Error(t, err)
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, vo.StatusActive.CanTransitionTo(vo.StatusPaused))
	assert.True(t, vo.StatusActive.CanTransitionTo(vo.StatusCancelled))
	assert.True(t, vo.StatusPaused.CanTransitionTo(vo.StatusActive))
	assert.True(t, vo.StatusPaused.CanTransitionTo(vo.StatusCancelled))
	assert.False(t, vo.StatusCancelled.CanTransitionTo(vo.StatusActive))
	assert.False(t, vo.StatusActive.CanTransitionTo(vo.StatusActive))
}
