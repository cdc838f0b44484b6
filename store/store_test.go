package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/store"
)

func testUser(id int64) *models.User {
	return &models.User{
		ID:              id,
		Language:        models.LangEN,
		Name:            "Alex",
		Age:             30,
		HeightCM:        180,
		WeightKG:        80,
		Gender:          models.GenderMale,
		Timezone:        "Asia/Tashkent",
		Goal:            models.GoalLoseWeight,
		Activity:        models.ActivitySedentary,
		Reminders:       models.DefaultReminders(),
		InitialWeightKG: 80,
		RegisteredAt:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestPutGetUserRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()

	want := testUser(1)
	if err := st.PutUser(ctx, want); err != nil {
		t.Fatalf("put user: %v", err)
	}
	got, err := st.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if *got != *want {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}

	if _, err := st.GetUser(ctx, 2); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}

func TestPatchUserFields(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()

	if err := st.PutUser(ctx, testUser(1)); err != nil {
		t.Fatalf("put user: %v", err)
	}
	if err := st.PatchUser(ctx, 1, map[string]any{
		"weight_kg": 78.5,
		"inactive":  true,
	}); err != nil {
		t.Fatalf("patch user: %v", err)
	}

	got, err := st.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got.WeightKG != 78.5 {
		t.Fatalf("expected weight 78.5, got %v", got.WeightKG)
	}
	if !got.Inactive {
		t.Fatal("expected user marked inactive")
	}
}

func TestDuplicateMealsAreNotDeduplicated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()

	rec := &models.MealRecord{
		ID:     "m1",
		UserID: 1,
		At:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Kind:   models.MealLunch,
		Origin: models.OriginText,
	}
	if err := st.AppendMeal(ctx, rec); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := st.AppendMeal(ctx, rec); err != nil {
		t.Fatalf("second append: %v", err)
	}

	n, err := st.CountAllMeals(ctx, 1)
	if err != nil {
		t.Fatalf("count meals: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 meals after double log, got %d", n)
	}
}

func TestWaterWindowQuery(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	amounts := []int{250, 500, 100}
	for i, ml := range amounts {
		ev := &models.WaterEvent{
			ID:       "w" + string(rune('a'+i)),
			UserID:   1,
			At:       base.Add(time.Duration(i) * 12 * time.Hour),
			AmountML: ml,
		}
		if err := st.AppendWater(ctx, ev); err != nil {
			t.Fatalf("append water: %v", err)
		}
	}

	// First calendar day only: events at 00:00 and 12:00.
	evs, err := st.WaterBetween(ctx, 1, base, base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("water between: %v", err)
	}
	if len(evs) != 2 {
		t.Fatalf("expected 2 events in window, got %d", len(evs))
	}

	total, err := st.SumAllWater(ctx, 1)
	if err != nil {
		t.Fatalf("sum water: %v", err)
	}
	if total != 850 {
		t.Fatalf("expected all-time total 850, got %d", total)
	}
}

func TestStreakAndBadgeStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()

	if _, err := st.GetStreak(ctx, 1, models.StreakWater); err != store.ErrNotFound {
		t.Fatalf("expected ErrNotFound for fresh streak, got %v", err)
	}

	s := &models.Streak{UserID: 1, Kind: models.StreakWater, Count: 3, LastDate: "2025-01-03"}
	if err := st.PutStreak(ctx, s); err != nil {
		t.Fatalf("put streak: %v", err)
	}
	got, err := st.GetStreak(ctx, 1, models.StreakWater)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if got.Count != 3 || got.LastDate != "2025-01-03" {
		t.Fatalf("streak mismatch: %+v", got)
	}

	badges, err := st.GetBadges(ctx, 1)
	if err != nil {
		t.Fatalf("get badges: %v", err)
	}
	if len(badges) != 0 {
		t.Fatalf("expected no badges yet, got %v", badges)
	}
	badges[models.BadgeWater5Days] = true
	if err := st.PutBadges(ctx, 1, badges); err != nil {
		t.Fatalf("put badges: %v", err)
	}
	badges, err = st.GetBadges(ctx, 1)
	if err != nil {
		t.Fatalf("get badges again: %v", err)
	}
	if !badges[models.BadgeWater5Days] {
		t.Fatal("expected water_5_days badge persisted")
	}
}
