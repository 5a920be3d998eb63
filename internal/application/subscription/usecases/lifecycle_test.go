package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

// seedSubscription stores an active subscription owned by testPhone and
// returns its id.
func seedSubscription(t *testing.T, repo *fakeSubscriptionRepo) uint64 {
	t.Helper()
	sub, err := subscription.NewSubscription(
		testPhone,
		[]subscription.Item{{ProductID: 0, Quantity: 1, PricePerUnit: 33}},
		[]string{"Mon", "Thu"},
		"06:00-08:00",
		"12 Dairy Lane",
		testNow.Add(-24*time.Hour),
		testNow,
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub.ID()
}

func TestPauseSubscription(t *testing.T) {
	t.Run("owner pauses active", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		profile := testProfile(t)
		profile.AttachSubscription(id, testNow)
		profileRepo := newFakeProfileRepo(profile)
		uc := NewPauseSubscriptionUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		paused, err := uc.Execute(context.Background(), PauseSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusPaused, paused.Status())

		// Profile keeps the reference for resume but drops the active flag.
		synced := profileRepo.profiles[testPhone]
		assert.False(t, synced.HasActiveSubscription())
		require.NotNil(t, synced.ActiveSubscriptionID())
		assert.Equal(t, id, *synced.ActiveSubscriptionID())
	})

	t.Run("pausing paused conflicts", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		require.NoError(t, subRepo.subs[id].Pause(testNow))
		uc := NewPauseSubscriptionUseCase(subRepo, newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), PauseSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		uc := NewPauseSubscriptionUseCase(subRepo, newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), PauseSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: "+911111111111",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
		assert.Equal(t, vo.StatusActive, subRepo.subs[id].Status())
	})

	t.Run("missing subscription", func(t *testing.T) {
		uc := NewPauseSubscriptionUseCase(newFakeSubscriptionRepo(), newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), PauseSubscriptionCommand{SubscriptionID: 404, RequestorPhone: testPhone})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestResumeSubscription(t *testing.T) {
	t.Run("owner resumes paused", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		require.NoError(t, subRepo.subs[id].Pause(testNow))

		profile := testProfile(t)
		profile.AttachSubscription(id, testNow)
		profile.MarkSubscriptionPaused(testNow)
		profileRepo := newFakeProfileRepo(profile)
		uc := NewResumeSubscriptionUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		resumed, err := uc.Execute(context.Background(), ResumeSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive, resumed.Status())
		assert.True(t, profileRepo.profiles[testPhone].HasActiveSubscription())
	})

	t.Run("resuming cancelled conflicts", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		require.NoError(t, subRepo.subs[id].Cancel(testNow))
		uc := NewResumeSubscriptionUseCase(subRepo, newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), ResumeSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, vo.StatusCancelled, subRepo.subs[id].Status())
	})
}

func TestCancelSubscription(t *testing.T) {
	t.Run("owner cancels and profile detaches", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		profile := testProfile(t)
		profile.AttachSubscription(id, testNow)
		profileRepo := newFakeProfileRepo(profile)
		uc := NewCancelSubscriptionUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		cancelled, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusCancelled, cancelled.Status())

		synced := profileRepo.profiles[testPhone]
		assert.False(t, synced.HasActiveSubscription())
		assert.Nil(t, synced.ActiveSubscriptionID())
	})

	t.Run("record survives cancellation", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		uc := NewCancelSubscriptionUseCase(subRepo, newFakeProfileRepo(testProfile(t)), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.NoError(t, err)
		assert.NotNil(t, subRepo.subs[id], "cancelled subscription stays queryable")
	})

	t.Run("profile sync failure does not fail the cancel", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		profileRepo := newFakeProfileRepo(testProfile(t))
		profileRepo.upsertErr = assert.AnError
		uc := NewCancelSubscriptionUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), CancelSubscriptionCommand{
			SubscriptionID: id,
			RequestorPhone: testPhone,
		})
		require.NoError(t, err, "subscription record is the source of truth")
		assert.Equal(t, vo.StatusCancelled, subRepo.subs[id].Status())
	})
}

func TestUpdateSubscriptionStatus_AdminOverride(t *testing.T) {
	t.Run("reactivates cancelled and reattaches profile", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		require.NoError(t, subRepo.subs[id].Cancel(testNow))

		profileRepo := newFakeProfileRepo(testProfile(t))
		uc := NewUpdateSubscriptionStatusUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		updated, err := uc.Execute(context.Background(), UpdateSubscriptionStatusCommand{
			SubscriptionID: id,
			Status:         "active",
		})
		require.NoError(t, err)
		assert.Equal(t, vo.StatusActive, updated.Status())

		synced := profileRepo.profiles[testPhone]
		assert.True(t, synced.HasActiveSubscription())
		require.NotNil(t, synced.ActiveSubscriptionID())
		assert.Equal(t, id, *synced.ActiveSubscriptionID())
	})

	t.Run("cancel only detaches the matching reference", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)

		// Profile points at a different subscription; the admin override on
		// this one must not clobber it.
		profile := testProfile(t)
		profile.AttachSubscription(id+10, testNow)
		profileRepo := newFakeProfileRepo(profile)
		uc := NewUpdateSubscriptionStatusUseCase(subRepo, profileRepo, clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), UpdateSubscriptionStatusCommand{
			SubscriptionID: id,
			Status:         "cancelled",
		})
		require.NoError(t, err)

		synced := profileRepo.profiles[testPhone]
		require.NotNil(t, synced.ActiveSubscriptionID())
		assert.Equal(t, id+10, *synced.ActiveSubscriptionID())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		subRepo := newFakeSubscriptionRepo()
		id := seedSubscription(t, subRepo)
		uc := NewUpdateSubscriptionStatusUseCase(subRepo, newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), UpdateSubscriptionStatusCommand{
			SubscriptionID: id,
			Status:         "dormant",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
