package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"milkrun/internal/domain/catalog"
	"milkrun/internal/domain/customer"
	"milkrun/internal/domain/order"
	"milkrun/internal/domain/subscription"
	vo "milkrun/internal/domain/subscription/valueobjects"
	"milkrun/internal/infrastructure/migration"
	"milkrun/internal/shared/logger"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

const testPhone = "+919876543210"

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))
	return db
}

func TestProductRepository_DenseIDs(t *testing.T) {
	repo := NewProductRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	names := []string{"Milk", "Paneer", "Ghee"}
	for i, name := range names {
		p, err := catalog.NewProduct(name, "", 50, "unit", testNow)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
		assert.Equal(t, uint64(i), p.ID(), "ids are dense from zero in insertion order")
	}

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	for i, p := range listed {
		assert.Equal(t, uint64(i), p.ID())
		assert.Equal(t, names[i], p.Name())
	}
}

func TestProductRepository_GetAndUpdate(t *testing.T) {
	repo := NewProductRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	p, err := catalog.NewProduct("Milk", "", 70, "litre", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Milk", got.Name())

	missing, err := repo.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing, "absent rows map to nil, not an error")

	require.NoError(t, got.Update("Milk", "Fresh Cow Milk", 75, "litre", testNow.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.GetByID(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 75.0, reloaded.Price())
	assert.Equal(t, "Fresh Cow Milk", reloaded.Description())
}

func TestProfileRepository_UpsertAndDelete(t *testing.T) {
	repo := NewProfileRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	p, err := customer.NewProfile(testPhone, "Asha", "12 Dairy Lane", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(ctx, p))

	p.RecordOrder(1, testNow)
	p.AttachSubscription(2, testNow)
	require.NoError(t, repo.Upsert(ctx, p), "second upsert updates in place")

	got, err := repo.GetByPhone(ctx, testPhone)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []uint64{1}, got.OrderIDs())
	assert.True(t, got.HasActiveSubscription())

	deleted, err := repo.Delete(ctx, testPhone)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	assert.Equal(t, "Asha", deleted.Name())

	gone, err := repo.GetByPhone(ctx, testPhone)
	require.NoError(t, err)
	assert.Nil(t, gone)

	again, err := repo.Delete(ctx, testPhone)
	require.NoError(t, err)
	assert.Nil(t, again, "deleting a missing profile reports absence")
}

func TestOrderRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewOrderRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	items := []order.Item{{ProductID: 0, Quantity: 1, PricePerUnit: 33}}

	first, err := order.NewOrder(testPhone, items, "12 Dairy Lane", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := order.NewOrder("+911111111111", items, "9 Farm Road", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	assert.NotZero(t, first.ID())
	assert.Greater(t, second.ID(), first.ID())

	mine, err := repo.GetByPhone(ctx, testPhone)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID(), mine[0].ID())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestOrderRepository_UpdatePersistsStatus(t *testing.T) {
	repo := NewOrderRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	o, err := order.NewOrder(testPhone, []order.Item{{ProductID: 0, Quantity: 1, PricePerUnit: 33}}, "12 Dairy Lane", testNow)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, o))

	require.NoError(t, o.SetStatus(order.StatusDelivered, testNow.Add(time.Hour)))
	require.NoError(t, repo.Update(ctx, o))

	got, err := repo.GetByID(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, got.Status())
}

func seedStoredSubscription(t *testing.T, repo subscription.Repository, phone string, start time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(
		phone,
		[]subscription.Item{{ProductID: 0, Quantity: 1, PricePerUnit: 33}},
		[]string{"Mon"},
		"06:00-08:00",
		"12 Dairy Lane",
		start,
		testNow.Add(-48*time.Hour),
	)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), sub))
	return sub
}

func TestSubscriptionRepository_FindDue(t *testing.T) {
	repo := NewSubscriptionRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	due := seedStoredSubscription(t, repo, testPhone, testNow.Add(-72*time.Hour))
	notDue := seedStoredSubscription(t, repo, "+911111111111", testNow.Add(72*time.Hour))

	paused := seedStoredSubscription(t, repo, "+912222222222", testNow.Add(-72*time.Hour))
	require.NoError(t, paused.Pause(testNow))
	require.NoError(t, repo.Update(ctx, paused))

	found, err := repo.FindDue(ctx, testNow)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, due.ID(), found[0].ID())
	_ = notDue
}

func TestSubscriptionRepository_HasWithStatus(t *testing.T) {
	repo := NewSubscriptionRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	sub := seedStoredSubscription(t, repo, testPhone, testNow.Add(-72*time.Hour))

	has, err := repo.HasWithStatus(ctx, testPhone, vo.StatusActive)
	require.NoError(t, err)
	assert.True(t, has)

	require.NoError(t, sub.Cancel(testNow))
	require.NoError(t, repo.Update(ctx, sub))

	has, err = repo.HasWithStatus(ctx, testPhone, vo.StatusActive)
	require.NoError(t, err)
	assert.False(t, has)

	has, err = repo.HasWithStatus(ctx, "+910000000000", vo.StatusActive)
	require.NoError(t, err)
	assert.False(t, has)
}

func TestSystemFlagRepository_SeedFlag(t *testing.T) {
	repo := NewSystemFlagRepository(testDB(t), logger.NewNop())
	ctx := context.Background()

	initialized, err := repo.IsInitialized(ctx)
	require.NoError(t, err)
	assert.False(t, initialized)

	require.NoError(t, repo.MarkInitialized(ctx))
	require.NoError(t, repo.MarkInitialized(ctx), "marking twice is idempotent")

	initialized, err = repo.IsInitialized(ctx)
	require.NoError(t, err)
	assert.True(t, initialized)
}
