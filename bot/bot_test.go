package bot

import (
	"strings"
	"testing"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
	"github.com/jurat11/BiteWise-sub000/stats"
)

func TestCommandTokenNormalizesCaseAndMention(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		cmd  string
		isIt bool
	}{
		{"/start", "/start", true},
		{"/START", "/start", true},
		{"/Stats@BiteWiseBot", "/stats", true},
		{"/admin hello everyone", "/admin", true},
		{"hello", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		cmd, ok := commandToken(tc.in)
		if ok != tc.isIt || cmd != tc.cmd {
			t.Fatalf("commandToken(%q) = (%q, %v), want (%q, %v)", tc.in, cmd, ok, tc.cmd, tc.isIt)
		}
	}
}

func TestMealSummaryShowsShareOfDailyTarget(t *testing.T) {
	t.Parallel()

	u := &models.User{
		Language: models.LangEN,
		Targets:  models.DailyTargets{Calories: 2000},
	}
	a := &nutrition.Analysis{
		Nutrients: models.Nutrients{Calories: 500, ProteinG: 30, CarbsG: 50, FatG: 15},
		OK:        true,
	}
	msg := mealSummary(u, models.MealLunch, a)

	if !strings.Contains(msg, "25% of your daily calories") {
		t.Fatalf("summary missing daily share:\n%s", msg)
	}
	if !strings.Contains(msg, "<b>500</b> kcal") {
		t.Fatalf("summary missing calorie line:\n%s", msg)
	}
	if strings.Contains(msg, "rough estimates") {
		t.Fatalf("successful analysis must not carry the failure note:\n%s", msg)
	}
}

func TestMealSummaryFlagsFailedAnalysis(t *testing.T) {
	t.Parallel()

	u := &models.User{
		Language: models.LangEN,
		Targets:  models.DailyTargets{Calories: 2000},
	}
	a := &nutrition.Analysis{Nutrients: nutrition.DefaultNutrients(), OK: false}
	msg := mealSummary(u, models.MealSnack, a)

	if !strings.Contains(msg, "rough estimates") {
		t.Fatalf("failed analysis must carry the visible note:\n%s", msg)
	}
}

func TestMealSummaryOvershootIsNotCapped(t *testing.T) {
	t.Parallel()

	u := &models.User{
		Language: models.LangEN,
		Targets:  models.DailyTargets{Calories: 1500},
	}
	a := &nutrition.Analysis{
		Nutrients: models.Nutrients{Calories: 1800, ProteinG: 10, CarbsG: 10, FatG: 10},
		OK:        true,
	}
	msg := mealSummary(u, models.MealDinner, a)
	if !strings.Contains(msg, "120% of your daily calories") {
		t.Fatalf("meal share must be uncapped:\n%s", msg)
	}
}

func TestTodayMessageCapsDisplayPercentages(t *testing.T) {
	t.Parallel()

	v := &stats.View{
		Date:     "2026-08-30",
		Calories: 4000,
		WaterML:  1000,
		Meals:    3,
		Targets:  models.DailyTargets{Calories: 2000, ProteinG: 100, CarbsG: 200, FatG: 60, WaterML: 2000},
	}
	msg := todayMessage(models.LangEN, v)

	if !strings.Contains(msg, "(100%)") {
		t.Fatalf("overshoot must display as 100%%:\n%s", msg)
	}
	if !strings.Contains(msg, "██████████") {
		t.Fatalf("full bar missing for overshoot:\n%s", msg)
	}
	if !strings.Contains(msg, "█████░░░░░") {
		t.Fatalf("half bar missing for water at 50%%:\n%s", msg)
	}
}

func TestSignedFloat(t *testing.T) {
	t.Parallel()

	if got := signedFloat(2.5); got != "+2.5" {
		t.Fatalf("signedFloat(2.5) = %q, want +2.5", got)
	}
	if got := signedFloat(-3); got != "-3" {
		t.Fatalf("signedFloat(-3) = %q, want -3", got)
	}
	if got := signedFloat(0); got != "0" {
		t.Fatalf("signedFloat(0) = %q, want 0", got)
	}
}
