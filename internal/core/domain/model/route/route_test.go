package route_test

import (
	"testing"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createValidStop(t *testing.T, order int) *route.Stop {
	t.Helper()
	stop, err := route.NewStop(
		kernel.NewUUID(), kernel.LocationID(30), order, nil, nil, nil, "12 Pier Rd", nil)
	require.NoError(t, err)
	require.NotNil(t, stop)
	return stop
}

func createValidRoute(t *testing.T, stops ...*route.Stop) *route.Route {
	t.Helper()
	r, err := route.NewRoute(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1),
		time.Now().AddDate(0, 0, 1), stops)
	require.NoError(t, err)
	require.NotNil(t, r)
	return r
}

// deliverStop walks one stop through EnRoute, Arrived, and Delivered using
// the OTP the stop issued on arrival.
func deliverStop(t *testing.T, r *route.Route, stop *route.Stop) {
	t.Helper()
	require.NoError(t, r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
	require.NoError(t, r.AdvanceStop(stop.ID(), route.StopArrived, "", time.Now()))
	require.NotNil(t, stop.DeliveryOTP())
	require.NoError(t, r.AdvanceStop(stop.ID(), route.StopDelivered, stop.DeliveryOTP().String(), time.Now()))
}

func TestNewRoute(t *testing.T) {
	t.Run("should create draft route with valid parameters", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)

		r := createValidRoute(t, first, second)

		require.NoError(t, r.Validate())
		assert.Equal(t, route.StatusDraft, r.Status())
		assert.Equal(t, kernel.UserID(7), r.DriverID())
		assert.Len(t, r.Stops(), 2)
		assert.True(t, r.IsActive())
	})

	t.Run("should accept a route with zero stops", func(t *testing.T) {
		r := createValidRoute(t)

		assert.Empty(t, r.Stops())
	})

	t.Run("should reject duplicate stop orders", func(t *testing.T) {
		r, err := route.NewRoute(
			kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), time.Now(),
			[]*route.Stop{createValidStop(t, 1), createValidStop(t, 1)})

		require.ErrorIs(t, err, route.ErrOrderingConflict)
		assert.Nil(t, r)
	})

	t.Run("should reject orders with a gap", func(t *testing.T) {
		r, err := route.NewRoute(
			kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), time.Now(),
			[]*route.Stop{createValidStop(t, 1), createValidStop(t, 3)})

		require.ErrorIs(t, err, route.ErrOrderingConflict)
		assert.Nil(t, r)
	})
}

func TestRoute_Schedule(t *testing.T) {
	t.Run("should move draft route to scheduled", func(t *testing.T) {
		r := createValidRoute(t, createValidStop(t, 1))

		require.NoError(t, r.Schedule())
		assert.Equal(t, route.StatusScheduled, r.Status())
	})

	t.Run("should reject scheduling twice", func(t *testing.T) {
		r := createValidRoute(t, createValidStop(t, 1))
		require.NoError(t, r.Schedule())

		err := r.Schedule()

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})
}

func TestRoute_AdvanceStop(t *testing.T) {
	t.Run("should start route on first departure", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())

		err := r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, route.StatusInProgress, r.Status())
		assert.Equal(t, route.StopEnRoute, stop.Status())
	})

	t.Run("should reject advancement on a draft route", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)

		err := r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now())

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})

	t.Run("should issue otp on arrival and deliver on match", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())

		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
		assert.Nil(t, stop.DeliveryOTP())

		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopArrived, "", time.Now()))
		require.NotNil(t, stop.DeliveryOTP())

		now := time.Now()
		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopDelivered, stop.DeliveryOTP().String(), now))
		assert.Equal(t, route.StopDelivered, stop.Status())
		require.NotNil(t, stop.CompletedAt())
		assert.Equal(t, now, *stop.CompletedAt())
	})

	t.Run("should reject delivery with wrong otp", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())
		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopArrived, "", time.Now()))

		wrongCode := "000000"
		if stop.DeliveryOTP().Matches(wrongCode) {
			wrongCode = "000001"
		}

		err := r.AdvanceStop(stop.ID(), route.StopDelivered, wrongCode, time.Now())

		require.ErrorIs(t, err, route.ErrOtpMismatch)
		assert.Equal(t, route.StopArrived, stop.Status())
		assert.Nil(t, stop.CompletedAt())
	})

	t.Run("should reject skipping straight to delivered", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())

		err := r.AdvanceStop(stop.ID(), route.StopDelivered, "123456", time.Now())

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})

	t.Run("should allow failing an en route stop", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())
		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))

		require.NoError(t, r.AdvanceStop(stop.ID(), route.StopFailed, "", time.Now()))
		assert.Equal(t, route.StopFailed, stop.Status())
	})

	t.Run("should reject failing a draft stop", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)
		r := createValidRoute(t, first, second)
		require.NoError(t, r.Schedule())
		require.NoError(t, r.AdvanceStop(first.ID(), route.StopEnRoute, "", time.Now()))

		err := r.AdvanceStop(second.ID(), route.StopFailed, "", time.Now())

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})

	t.Run("should return not found for a foreign stop", func(t *testing.T) {
		r := createValidRoute(t, createValidStop(t, 1))
		require.NoError(t, r.Schedule())

		err := r.AdvanceStop(kernel.NewUUID(), route.StopEnRoute, "", time.Now())

		require.Error(t, err)
	})
}

func TestRoute_Reorder(t *testing.T) {
	t.Run("should apply a full permutation", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)
		third := createValidStop(t, 3)
		r := createValidRoute(t, first, second, third)

		err := r.Reorder(map[kernel.UUID]int{
			first.ID():  3,
			second.ID(): 1,
			third.ID():  2,
		})

		require.NoError(t, err)
		assert.Equal(t, 3, first.StopOrder())
		assert.Equal(t, 1, second.StopOrder())
		assert.Equal(t, 2, third.StopOrder())
	})

	t.Run("should keep prior order when mapping is not a permutation", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)
		r := createValidRoute(t, first, second)

		err := r.Reorder(map[kernel.UUID]int{
			first.ID():  2,
			second.ID(): 2,
		})

		require.ErrorIs(t, err, route.ErrOrderingConflict)
		assert.Equal(t, 1, first.StopOrder())
		assert.Equal(t, 2, second.StopOrder())
	})

	t.Run("should reject mapping missing a stop", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)
		r := createValidRoute(t, first, second)

		err := r.Reorder(map[kernel.UUID]int{first.ID(): 1})

		require.Error(t, err)
	})

	t.Run("should reject reorder on a completed route", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())
		deliverStop(t, r, stop)
		require.NoError(t, r.Complete())

		err := r.Reorder(map[kernel.UUID]int{stop.ID(): 1})

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})
}

func TestRoute_Complete(t *testing.T) {
	t.Run("should complete once every stop is terminal", func(t *testing.T) {
		first := createValidStop(t, 1)
		second := createValidStop(t, 2)
		r := createValidRoute(t, first, second)
		require.NoError(t, r.Schedule())

		deliverStop(t, r, first)
		require.NoError(t, r.AdvanceStop(second.ID(), route.StopEnRoute, "", time.Now()))
		require.NoError(t, r.AdvanceStop(second.ID(), route.StopFailed, "", time.Now()))

		require.True(t, r.AllStopsTerminal())
		require.NoError(t, r.Complete())
		assert.Equal(t, route.StatusCompleted, r.Status())
	})

	t.Run("should be idempotent on a completed route", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())
		deliverStop(t, r, stop)
		require.NoError(t, r.Complete())

		require.NoError(t, r.Complete())
		assert.Equal(t, route.StatusCompleted, r.Status())
	})

	t.Run("should reject completion with open stops", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())

		err := r.Complete()

		require.Error(t, err)
		assert.Equal(t, route.StatusScheduled, r.Status())
	})
}

func TestRoute_Cancel(t *testing.T) {
	t.Run("should cancel a draft route", func(t *testing.T) {
		r := createValidRoute(t, createValidStop(t, 1))

		require.NoError(t, r.Cancel())
		assert.Equal(t, route.StatusCancelled, r.Status())
	})

	t.Run("should reject cancelling a completed route", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		require.NoError(t, r.Schedule())
		deliverStop(t, r, stop)
		require.NoError(t, r.Complete())

		err := r.Cancel()

		require.ErrorIs(t, err, route.ErrInvalidTransition)
	})
}

func TestRoute_AttachRequestToStop(t *testing.T) {
	t.Run("should link a restock request to a draft stop", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		requestID := kernel.NewUUID()

		err := r.AttachRequestToStop(stop.ID(), &requestID, nil)

		require.NoError(t, err)
		require.NotNil(t, stop.RestockRequestID())
		assert.True(t, stop.RestockRequestID().IsEqual(requestID))
		assert.Nil(t, stop.FollowupRequestID())
	})

	t.Run("should reject a second attachment", func(t *testing.T) {
		stop := createValidStop(t, 1)
		r := createValidRoute(t, stop)
		firstRef := kernel.NewUUID()
		secondRef := kernel.NewUUID()
		require.NoError(t, r.AttachRequestToStop(stop.ID(), &firstRef, nil))

		err := r.AttachRequestToStop(stop.ID(), nil, &secondRef)

		require.ErrorIs(t, err, route.ErrStopAlreadyLinked)
	})

	t.Run("should reject both references at once", func(t *testing.T) {
		restockRef := kernel.NewUUID()
		followupRef := kernel.NewUUID()

		stop, err := route.NewStop(
			kernel.NewUUID(), kernel.LocationID(30), 1, nil, &restockRef, &followupRef, "12 Pier Rd", nil)

		require.ErrorIs(t, err, route.ErrStopHasTwoRequests)
		assert.Nil(t, stop)
	})
}

func TestOTPFromString(t *testing.T) {
	t.Run("should roundtrip a generated code", func(t *testing.T) {
		otp := route.GenerateOTP()

		restored, err := route.OTPFromString(otp.String())

		require.NoError(t, err)
		assert.True(t, restored.Matches(otp.String()))
	})

	t.Run("should reject short codes", func(t *testing.T) {
		_, err := route.OTPFromString("12345")
		require.Error(t, err)
	})

	t.Run("should reject non digit characters", func(t *testing.T) {
		_, err := route.OTPFromString("12a456")
		require.Error(t, err)
	})
}
