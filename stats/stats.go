// Package stats computes daily and all-time aggregates over the meal and
// water logs, keyed to the user's local calendar day.
package stats

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/store"
)

// View is one day of totals. Totals are un-clamped; use DisplayPct for the
// capped display percentages.
type View struct {
	Date     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	SodiumMG float64
	FiberG   float64
	SugarG   float64
	WaterML  int
	Meals    int
	Targets  models.DailyTargets
}

type AllTimeView struct {
	Meals   int64
	WaterML int64
}

type WeekView struct {
	Meals       int
	AvgCalories int
	WaterML     int
}

// DayWindow returns the UTC instants bounding the user-local calendar day
// containing now.
func DayWindow(loc *time.Location, now time.Time) (time.Time, time.Time) {
	local := now.In(loc)
	lo := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return lo.UTC(), lo.AddDate(0, 0, 1).UTC()
}

// Today sums the meal and water records of the user-local day around now.
func Today(ctx context.Context, st store.Store, user *models.User, now time.Time) (*View, error) {
	loc := user.Location()
	lo, hi := DayWindow(loc, now)

	meals, err := st.MealsBetween(ctx, user.ID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("today meals: %w", err)
	}
	water, err := st.WaterBetween(ctx, user.ID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("today water: %w", err)
	}

	v := &View{
		Date:    now.In(loc).Format("2006-01-02"),
		Meals:   len(meals),
		Targets: user.Targets,
	}
	for _, m := range meals {
		v.Calories += m.Nutrients.Calories
		v.ProteinG += m.Nutrients.ProteinG
		v.CarbsG += m.Nutrients.CarbsG
		v.FatG += m.Nutrients.FatG
		v.SodiumMG += m.Nutrients.SodiumMG
		v.FiberG += m.Nutrients.FiberG
		v.SugarG += m.Nutrients.SugarG
	}
	for _, w := range water {
		v.WaterML += w.AmountML
	}
	return v, nil
}

// AllTime is the unfiltered lifetime aggregate.
func AllTime(ctx context.Context, st store.Store, userID int64) (*AllTimeView, error) {
	meals, err := st.CountAllMeals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("all-time meals: %w", err)
	}
	water, err := st.SumAllWater(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("all-time water: %w", err)
	}
	return &AllTimeView{Meals: meals, WaterML: water}, nil
}

// Week aggregates the past 7 user-local days ending with today.
func Week(ctx context.Context, st store.Store, user *models.User, now time.Time) (*WeekView, error) {
	loc := user.Location()
	_, hi := DayWindow(loc, now)
	lo := hi.AddDate(0, 0, -7)

	meals, err := st.MealsBetween(ctx, user.ID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("week meals: %w", err)
	}
	water, err := st.WaterBetween(ctx, user.ID, lo, hi)
	if err != nil {
		return nil, fmt.Errorf("week water: %w", err)
	}

	v := &WeekView{Meals: len(meals)}
	var cal float64
	for _, m := range meals {
		cal += m.Nutrients.Calories
	}
	v.AvgCalories = int(math.Round(cal / 7))
	for _, w := range water {
		v.WaterML += w.AmountML
	}
	return v, nil
}

// DisplayPct is the integer percentage of target reached, capped at 100 for
// display. The underlying totals stay un-clamped.
func DisplayPct(total float64, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(total / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Pct is the uncapped integer percentage, used where overshoot matters.
func Pct(total float64, target int) int {
	if target <= 0 {
		return 0
	}
	return int(math.Round(total / float64(target) * 100))
}

const barSegments = 10

// Bar renders a 10-segment progress bar for a 0..100 percentage.
func Bar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * barSegments / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barSegments-filled)
}

// BMI returns the body-mass index and its i18n category key.
func BMI(weightKG, heightCM float64) (float64, string) {
	if heightCM <= 0 {
		return 0, "bmi_normal"
	}
	h := heightCM / 100
	bmi := weightKG / (h * h)
	switch {
	case bmi < 18.5:
		return bmi, "bmi_underweight"
	case bmi < 25:
		return bmi, "bmi_normal"
	case bmi < 30:
		return bmi, "bmi_overweight"
	default:
		return bmi, "bmi_obese"
	}
}
