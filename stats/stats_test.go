package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/stats"
	"github.com/jurat11/BiteWise-sub000/store"
)

func seedUser(t *testing.T, st *store.Memory) *models.User {
	t.Helper()
	u := &models.User{
		ID:       1,
		Timezone: "Asia/Tashkent",
		HeightCM: 180,
		WeightKG: 80,
		Targets: models.DailyTargets{
			Calories: 1636, ProteinG: 143, CarbsG: 164, FatG: 45,
			WaterML: 2800, SodiumMG: 2300, FiberG: 30, SugarG: 50,
		},
	}
	if err := st.PutUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestTodayWindowFollowsUserLocalDay(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()
	u := seedUser(t, st)

	loc, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 local on Jan 1 and 00:30 local on Jan 2 are different days for
	// the user even though both are Jan 1 in UTC (UTC+5).
	late := time.Date(2025, 1, 1, 23, 30, 0, 0, loc)
	early := time.Date(2025, 1, 2, 0, 30, 0, 0, loc)
	for i, at := range []time.Time{late, early} {
		ev := &models.WaterEvent{ID: string(rune('a' + i)), UserID: u.ID, At: at.UTC(), AmountML: 250}
		if err := st.AppendWater(ctx, ev); err != nil {
			t.Fatalf("append water: %v", err)
		}
	}

	v, err := stats.Today(ctx, st, u, late)
	if err != nil {
		t.Fatalf("today at 23:30: %v", err)
	}
	if v.WaterML != 250 {
		t.Fatalf("Jan 1 local day should hold one event, got %d ml", v.WaterML)
	}

	v, err = stats.Today(ctx, st, u, early)
	if err != nil {
		t.Fatalf("today at 00:30: %v", err)
	}
	if v.WaterML != 250 {
		t.Fatalf("Jan 2 local day should hold one event, got %d ml", v.WaterML)
	}
}

func TestTodaySumsMealsAndWater(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()
	u := seedUser(t, st)

	loc, _ := time.LoadLocation("Asia/Tashkent")
	noon := time.Date(2025, 1, 1, 12, 0, 0, 0, loc)

	for _, n := range []models.Nutrients{
		{Calories: 650, ProteinG: 28, CarbsG: 72, FatG: 25},
		{Calories: 400, ProteinG: 20, CarbsG: 30, FatG: 12},
	} {
		rec := &models.MealRecord{
			ID: "m", UserID: u.ID, At: noon.UTC(),
			Kind: models.MealLunch, Origin: models.OriginText, Nutrients: n,
		}
		if err := st.AppendMeal(ctx, rec); err != nil {
			t.Fatalf("append meal: %v", err)
		}
	}
	if err := st.AppendWater(ctx, &models.WaterEvent{ID: "w", UserID: u.ID, At: noon.UTC(), AmountML: 500}); err != nil {
		t.Fatalf("append water: %v", err)
	}

	v, err := stats.Today(ctx, st, u, noon)
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if v.Calories != 1050 || v.ProteinG != 48 || v.Meals != 2 {
		t.Fatalf("meal totals wrong: %+v", v)
	}
	if v.WaterML != 500 {
		t.Fatalf("expected 500 ml water, got %d", v.WaterML)
	}
}

func TestDisplayPctCapsAtHundred(t *testing.T) {
	t.Parallel()
	if got := stats.DisplayPct(3272, 1636); got != 100 {
		t.Fatalf("display pct must cap at 100, got %d", got)
	}
	if got := stats.Pct(3272, 1636); got != 200 {
		t.Fatalf("raw pct must not cap, got %d", got)
	}
	if got := stats.DisplayPct(818, 1636); got != 50 {
		t.Fatalf("expected 50%%, got %d", got)
	}
	if got := stats.DisplayPct(100, 0); got != 0 {
		t.Fatalf("zero target must yield 0, got %d", got)
	}
}

func TestProgressBar(t *testing.T) {
	t.Parallel()
	if got := stats.Bar(0); got != "░░░░░░░░░░" {
		t.Fatalf("empty bar wrong: %q", got)
	}
	if got := stats.Bar(100); got != "██████████" {
		t.Fatalf("full bar wrong: %q", got)
	}
	if got := stats.Bar(55); got != "█████░░░░░" {
		t.Fatalf("55%% bar wrong: %q", got)
	}
}

func TestBMIBuckets(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		weight, height float64
		category       string
	}{
		{50, 180, "bmi_underweight"},
		{70, 180, "bmi_normal"},
		{85, 180, "bmi_overweight"},
		{100, 180, "bmi_obese"},
	} {
		_, cat := stats.BMI(tc.weight, tc.height)
		if cat != tc.category {
			t.Fatalf("BMI(%v,%v): expected %s, got %s", tc.weight, tc.height, tc.category, cat)
		}
	}

	bmi, _ := stats.BMI(80, 180)
	if bmi < 24.6 || bmi > 24.8 {
		t.Fatalf("expected BMI ~24.7, got %v", bmi)
	}
}

func TestWeekAggregate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()
	u := seedUser(t, st)

	loc, _ := time.LoadLocation("Asia/Tashkent")
	now := time.Date(2025, 1, 10, 18, 0, 0, 0, loc)

	// 7 meals of 700 kcal across the window, one outside it.
	for day := 4; day <= 10; day++ {
		rec := &models.MealRecord{
			ID: "m", UserID: u.ID,
			At:        time.Date(2025, 1, day, 12, 0, 0, 0, loc).UTC(),
			Kind:      models.MealLunch,
			Origin:    models.OriginText,
			Nutrients: models.Nutrients{Calories: 700},
		}
		if err := st.AppendMeal(ctx, rec); err != nil {
			t.Fatalf("append meal: %v", err)
		}
	}
	old := &models.MealRecord{
		ID: "old", UserID: u.ID,
		At:        time.Date(2024, 12, 20, 12, 0, 0, 0, loc).UTC(),
		Kind:      models.MealLunch,
		Origin:    models.OriginText,
		Nutrients: models.Nutrients{Calories: 9000},
	}
	if err := st.AppendMeal(ctx, old); err != nil {
		t.Fatalf("append old meal: %v", err)
	}

	v, err := stats.Week(ctx, st, u, now)
	if err != nil {
		t.Fatalf("week: %v", err)
	}
	if v.Meals != 7 {
		t.Fatalf("expected 7 meals in week, got %d", v.Meals)
	}
	if v.AvgCalories != 700 {
		t.Fatalf("expected 700 avg kcal, got %d", v.AvgCalories)
	}
}
