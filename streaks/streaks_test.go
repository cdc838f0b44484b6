package streaks_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/store"
	"github.com/jurat11/BiteWise-sub000/streaks"
)

func tashkentUser(t *testing.T, st *store.Memory) *models.User {
	t.Helper()
	u := &models.User{
		ID:       7,
		Language: models.LangEN,
		Timezone: "Asia/Tashkent",
	}
	if err := st.PutUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func mustUpdate(t *testing.T, up *streaks.Updater, u *models.User, kind string, at time.Time) []streaks.Event {
	t.Helper()
	evs, err := up.Update(context.Background(), u, kind, at)
	if err != nil {
		t.Fatalf("update at %v: %v", at, err)
	}
	return evs
}

func localTime(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tashkent")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	ts, err := time.ParseInLocation("2006-01-02 15:04", value, loc)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return ts
}

func TestConsecutiveDaysIncrement(t *testing.T) {
	t.Parallel()
	st := store.NewMemory()
	u := tashkentUser(t, st)
	up := streaks.NewUpdater(st)

	for day := 1; day <= 4; day++ {
		mustUpdate(t, up, u, models.StreakWater, localTime(t, fmt.Sprintf("2025-01-0%d 12:00", day)))
	}

	s, err := st.GetStreak(context.Background(), u.ID, models.StreakWater)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if s.Count != 4 {
		t.Fatalf("expected streak 4 after 4 consecutive days, got %d", s.Count)
	}
}

func TestStreakAcrossLocalMidnight(t *testing.T) {
	t.Parallel()
	st := store.NewMemory()
	u := tashkentUser(t, st)
	up := streaks.NewUpdater(st)

	evs := mustUpdate(t, up, u, models.StreakWater, localTime(t, "2025-01-01 23:59"))
	if len(evs) != 0 {
		t.Fatalf("first commit must not emit a streak message, got %v", evs)
	}

	evs = mustUpdate(t, up, u, models.StreakWater, localTime(t, "2025-01-02 00:02"))
	if len(evs) != 1 || evs[0].MsgKey != "streak_water" || evs[0].Count != 2 {
		t.Fatalf("expected exactly one streak_water event with count 2, got %v", evs)
	}

	// Same local day again: no further message.
	evs = mustUpdate(t, up, u, models.StreakWater, localTime(t, "2025-01-02 10:00"))
	if len(evs) != 0 {
		t.Fatalf("same-day commit must be a no-op, got %v", evs)
	}
}

func TestGapResetsToOne(t *testing.T) {
	t.Parallel()
	st := store.NewMemory()
	u := tashkentUser(t, st)
	up := streaks.NewUpdater(st)

	mustUpdate(t, up, u, models.StreakMeal, localTime(t, "2025-01-01 12:00"))
	mustUpdate(t, up, u, models.StreakMeal, localTime(t, "2025-01-02 12:00"))
	mustUpdate(t, up, u, models.StreakMeal, localTime(t, "2025-01-05 12:00"))

	s, err := st.GetStreak(context.Background(), u.ID, models.StreakMeal)
	if err != nil {
		t.Fatalf("get streak: %v", err)
	}
	if s.Count != 1 {
		t.Fatalf("expected reset to 1 after a gap, got %d", s.Count)
	}
}

func TestWaterBadgeAwardedOnceAtFiveDays(t *testing.T) {
	t.Parallel()
	st := store.NewMemory()
	u := tashkentUser(t, st)
	up := streaks.NewUpdater(st)

	var badgeCount int
	for day := 1; day <= 6; day++ {
		at := localTime(t, fmt.Sprintf("2025-01-0%d 09:00", day))
		for _, ev := range mustUpdate(t, up, u, models.StreakWater, at) {
			if ev.MsgKey == "badge_"+models.BadgeWater5Days {
				badgeCount++
			}
		}
	}
	if badgeCount != 1 {
		t.Fatalf("water_5_days badge must fire exactly once, fired %d times", badgeCount)
	}
}

func TestFiftyMealsBadge(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := store.NewMemory()
	u := tashkentUser(t, st)
	up := streaks.NewUpdater(st)

	at := localTime(t, "2025-03-01 13:00")
	for i := 0; i < 49; i++ {
		rec := &models.MealRecord{ID: fmt.Sprintf("m%d", i), UserID: u.ID, At: at, Kind: models.MealSnack, Origin: models.OriginText}
		if err := st.AppendMeal(ctx, rec); err != nil {
			t.Fatalf("seed meal: %v", err)
		}
	}
	if evs := mustUpdate(t, up, u, models.StreakMeal, at); len(evs) != 0 {
		t.Fatalf("49 meals must not award the badge, got %v", evs)
	}

	if err := st.AppendMeal(ctx, &models.MealRecord{ID: "m49", UserID: u.ID, At: at, Kind: models.MealSnack, Origin: models.OriginText}); err != nil {
		t.Fatalf("seed 50th meal: %v", err)
	}
	evs := mustUpdate(t, up, u, models.StreakMeal, at)
	if len(evs) != 1 || evs[0].MsgKey != "badge_"+models.Badge50Meals {
		t.Fatalf("expected 50_meals badge at the 50th meal, got %v", evs)
	}
}
