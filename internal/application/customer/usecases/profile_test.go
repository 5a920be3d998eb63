package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkrun/internal/domain/customer"
	"milkrun/internal/shared/clock"
	apperrors "milkrun/internal/shared/errors"
	"milkrun/internal/shared/logger"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

const testPhone = "+919876543210"

func TestCreateProfile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewCreateProfileUseCase(repo, clock.NewManual(testNow), logger.NewNop())

		profile, err := uc.Execute(context.Background(), CreateProfileCommand{
			PhoneNumber: testPhone, Name: "Asha", Address: "12 Dairy Lane",
		})
		require.NoError(t, err)
		assert.Equal(t, testPhone, profile.PhoneNumber())
		assert.Empty(t, profile.OrderIDs())
		assert.NotNil(t, repo.profiles[testPhone])
	})

	t.Run("duplicate phone conflicts", func(t *testing.T) {
		existing, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
		require.NoError(t, err)
		repo := newFakeProfileRepo(existing)
		uc := NewCreateProfileUseCase(repo, clock.NewManual(testNow), logger.NewNop())

		_, err = uc.Execute(context.Background(), CreateProfileCommand{
			PhoneNumber: testPhone, Name: "Someone Else", Address: "Elsewhere",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsConflictError(err))
		assert.Equal(t, "Asha", repo.profiles[testPhone].Name(), "existing record untouched")
	})

	t.Run("invalid input", func(t *testing.T) {
		uc := NewCreateProfileUseCase(newFakeProfileRepo(), clock.NewManual(testNow), logger.NewNop())

		_, err := uc.Execute(context.Background(), CreateProfileCommand{PhoneNumber: testPhone})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates existing and keeps history", func(t *testing.T) {
		existing, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
		require.NoError(t, err)
		existing.RecordOrder(3, testNow)
		existing.AttachSubscription(1, testNow)
		repo := newFakeProfileRepo(existing)
		uc := NewUpdateProfileUseCase(repo, clock.NewManual(testNow), logger.NewNop())

		updated, err := uc.Execute(context.Background(), UpdateProfileCommand{
			PhoneNumber: testPhone, Name: "Asha R", Address: "14 Dairy Lane",
		})
		require.NoError(t, err)
		assert.Equal(t, "Asha R", updated.Name())
		assert.Equal(t, []uint64{3}, updated.OrderIDs())
		assert.True(t, updated.HasActiveSubscription())
	})

	t.Run("upserts when missing", func(t *testing.T) {
		repo := newFakeProfileRepo()
		uc := NewUpdateProfileUseCase(repo, clock.NewManual(testNow), logger.NewNop())

		updated, err := uc.Execute(context.Background(), UpdateProfileCommand{
			PhoneNumber: testPhone, Name: "Asha", Address: "12 Dairy Lane",
		})
		require.NoError(t, err)
		assert.Equal(t, testPhone, updated.PhoneNumber())
		assert.NotNil(t, repo.profiles[testPhone])
	})

	t.Run("invalid details rejected", func(t *testing.T) {
		existing, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
		require.NoError(t, err)
		repo := newFakeProfileRepo(existing)
		uc := NewUpdateProfileUseCase(repo, clock.NewManual(testNow), logger.NewNop())

		_, err = uc.Execute(context.Background(), UpdateProfileCommand{
			PhoneNumber: testPhone, Name: "", Address: "14 Dairy Lane",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestGetProfile(t *testing.T) {
	existing, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
	require.NoError(t, err)
	uc := NewGetProfileUseCase(newFakeProfileRepo(existing), logger.NewNop())

	got, err := uc.Execute(context.Background(), testPhone)
	require.NoError(t, err)
	assert.Equal(t, "Asha", got.Name())

	_, err = uc.Execute(context.Background(), "+910000000000")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFoundError(err))

	_, err = uc.Execute(context.Background(), " ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestListCustomers(t *testing.T) {
	a, err := customer.NewProfile("+911111111111", "A", "addr", testNow)
	require.NoError(t, err)
	b, err := customer.NewProfile("+912222222222", "B", "addr", testNow)
	require.NoError(t, err)
	uc := NewListCustomersUseCase(newFakeProfileRepo(a, b), logger.NewNop())

	profiles, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
}

func TestDeleteProfile(t *testing.T) {
	t.Run("returns the removed record", func(t *testing.T) {
		existing, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
		require.NoError(t, err)
		repo := newFakeProfileRepo(existing)
		uc := NewDeleteProfileUseCase(repo, logger.NewNop())

		deleted, err := uc.Execute(context.Background(), testPhone)
		require.NoError(t, err)
		assert.Equal(t, "Asha", deleted.Name())
		assert.Nil(t, repo.profiles[testPhone])
	})

	t.Run("missing profile", func(t *testing.T) {
		uc := NewDeleteProfileUseCase(newFakeProfileRepo(), logger.NewNop())

		_, err := uc.Execute(context.Background(), testPhone)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("blank phone", func(t *testing.T) {
		uc := NewDeleteProfileUseCase(newFakeProfileRepo(), logger.NewNop())

		_, err := uc.Execute(context.Background(), " ")
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
