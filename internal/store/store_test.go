package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func daysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).UTC().Format(time.RFC3339)
}

// --- events ---

func TestInsertMealDefaultsLoggedAt(t *testing.T) {
	db := testDB(t)
	m := &MealRow{MealType: MealDinner, FibreGrams: 8}
	require.NoError(t, db.InsertMeal(m))
	assert.NotEmpty(t, m.LoggedAt)

	_, err := ParseLoggedAt(m.LoggedAt)
	assert.NoError(t, err)
}

func TestMealsSinceFiltersByWindow(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.InsertMeal(&MealRow{MealType: MealLunch, FibreGrams: 5, LoggedAt: daysAgo(2)}))
	require.NoError(t, db.InsertMeal(&MealRow{MealType: MealDinner, FibreGrams: 12, WalkedAfter: true, LoggedAt: daysAgo(4)}))
	require.NoError(t, db.InsertMeal(&MealRow{MealType: MealSnack, FibreGrams: 2, LoggedAt: daysAgo(10)}))

	meals, err := db.MealsSince(time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	require.Len(t, meals, 2)

	// Oldest first.
	assert.Equal(t, MealDinner, meals[0].MealType)
	assert.True(t, meals[0].WalkedAfter)
	assert.Equal(t, MealLunch, meals[1].MealType)
}

func TestCheckinAndWeightCounts(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.InsertCheckin(&CheckinRow{Fullness: 4, Energy: 3}))
	require.NoError(t, db.InsertCheckin(&CheckinRow{Fullness: 2, Energy: 2, LoggedAt: daysAgo(9)}))
	require.NoError(t, db.InsertWeight(&WeightRow{WeightKg: 81.2}))

	since := time.Now().AddDate(0, 0, -7)

	checkins, err := db.CheckinCountSince(since)
	require.NoError(t, err)
	assert.Equal(t, 1, checkins)

	weights, err := db.WeightCountSince(since)
	require.NoError(t, err)
	assert.Equal(t, 1, weights)
}

func TestGlucoseRoundTrip(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.InsertGlucose(&GlucoseRow{Value: 6.4, PriorMealFibre: 3}))
	require.NoError(t, db.InsertGlucose(&GlucoseRow{Value: 5.1, PriorMealFibre: -1}))

	readings, err := db.GlucoseSince(time.Now().AddDate(0, 0, -1))
	require.NoError(t, err)
	require.Len(t, readings, 2)
	assert.Equal(t, 6.4, readings[0].Value)
	assert.Equal(t, -1.0, readings[1].PriorMealFibre)
}

func TestSleepAndSteps(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.InsertSleep(&SleepRow{Hours: 7.2}))
	require.NoError(t, db.InsertSteps(&StepsRow{Steps: 8200}))

	since := time.Now().AddDate(0, 0, -1)

	sleeps, err := db.SleepSince(since)
	require.NoError(t, err)
	require.Len(t, sleeps, 1)
	assert.Equal(t, 7.2, sleeps[0].Hours)

	steps, err := db.StepsSince(since)
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, 8200, steps[0].Steps)
}

// --- snapshots ---

func TestSnapshotRoundTrip(t *testing.T) {
	db := testDB(t)

	id, err := db.CreateSnapshot("glucose_tracking", "behavior_v1", "local", "1.0.0")
	require.NoError(t, err)

	rows := []InsightRow{
		{SnapshotID: id, Position: 0, InsightID: "activity-dinner-walk", Category: "activity", Title: "Move a little after dinner", Confidence: "high", ActionType: "post_meal_walk", WindowHours: 24},
		{SnapshotID: id, Position: 1, InsightID: "meals-fibre-anchor", Category: "meals", Title: "Anchor one meal on fibre", Confidence: "high", ActionType: "add_fibre", WindowHours: 72},
	}
	for i := range rows {
		require.NoError(t, db.InsertInsight(&rows[i]))
	}

	snap, err := db.GetSnapshot(id)
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "behavior_v1", snap.Variant)
	assert.Equal(t, "local", snap.Source)

	got, err := db.SnapshotInsights(id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "activity-dinner-walk", got[0].InsightID)
	assert.Equal(t, "meals-fibre-anchor", got[1].InsightID)
}

func TestGetSnapshotMissing(t *testing.T) {
	db := testDB(t)
	snap, err := db.GetSnapshot(99)
	require.NoError(t, err)
	assert.Nil(t, snap)
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	db := testDB(t)
	first, err := db.CreateSnapshot("meals_only", "legacy", "local", "dev")
	require.NoError(t, err)
	second, err := db.CreateSnapshot("meals_only", "legacy", "remote", "dev")
	require.NoError(t, err)

	snaps, err := db.ListSnapshots(10)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, second, snaps[0].ID)
	assert.Equal(t, first, snaps[1].ID)
}

// --- cache ---

func TestCacheKeyScopedByDay(t *testing.T) {
	day1 := time.Date(2026, 3, 5, 23, 50, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 6, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, "ana|meals_only|2026-03-05", CacheKey("ana", "meals_only", day1))
	assert.NotEqual(t, CacheKey("ana", "meals_only", day1), CacheKey("ana", "meals_only", day2))
	assert.NotEqual(t, CacheKey("ana", "meals_only", day1), CacheKey("ana", "glucose_tracking", day1))
}

func TestCacheHitWithinTTL(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	key := CacheKey("default", "meals_only", now)

	require.NoError(t, db.PutCache(key, `[{"id":"meals-setup"}]`, now, 12*time.Hour))

	entry, err := db.GetCache(key, now.Add(time.Hour))
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Contains(t, entry.Payload, "meals-setup")
}

func TestCacheExpiryIsAMiss(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	key := CacheKey("default", "meals_only", now)

	require.NoError(t, db.PutCache(key, "[]", now, time.Hour))

	entry, err := db.GetCache(key, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, entry)

	// Lazy delete: the expired row is gone, not just hidden.
	var n int
	require.NoError(t, db.Conn().QueryRow("SELECT COUNT(*) FROM insight_cache").Scan(&n))
	assert.Equal(t, 0, n)
}

func TestPutCacheReplaces(t *testing.T) {
	db := testDB(t)
	now := time.Now()
	key := CacheKey("default", "meals_only", now)

	require.NoError(t, db.PutCache(key, "old", now, time.Hour))
	require.NoError(t, db.PutCache(key, "new", now, time.Hour))

	entry, err := db.GetCache(key, now)
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "new", entry.Payload)
}

func TestDeleteAndPruneCache(t *testing.T) {
	db := testDB(t)
	now := time.Now()

	require.NoError(t, db.PutCache("a", "1", now.Add(-3*time.Hour), time.Hour))
	require.NoError(t, db.PutCache("b", "2", now, time.Hour))
	require.NoError(t, db.PutCache("c", "3", now, time.Hour))

	require.NoError(t, db.DeleteCache("c"))

	pruned, err := db.PruneCache(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pruned)

	entry, err := db.GetCache("b", now)
	require.NoError(t, err)
	assert.NotNil(t, entry)
}
