package nutrition

import (
	"math"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Fixed daily reference values.
const (
	SodiumTargetMG = 2300
	FiberTargetG   = 30
	SugarTargetG   = 50
	WaterMLPerKG   = 35
)

var activityMultipliers = map[models.Activity]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivitySuper:     1.9,
}

// macroRatios is protein/carbs/fat as fractions of daily calories.
var macroRatios = map[models.Goal][3]float64{
	models.GoalLoseWeight:   {0.35, 0.40, 0.25},
	models.GoalGainMuscle:   {0.40, 0.40, 0.20},
	models.GoalEatHealthier: {0.30, 0.45, 0.25},
	models.GoalLookYounger:  {0.25, 0.50, 0.25},
	models.GoalOther:        {0.25, 0.50, 0.25},
}

// Requirements derives the daily targets from a profile using
// Mifflin–St Jeor. The activity multiplier is capped at 1.2 for the
// lose-weight goal so the deficit is computed from a conservative TDEE.
func Requirements(u *models.User) models.DailyTargets {
	bmr := 10*u.WeightKG + 6.25*u.HeightCM - 5*float64(u.Age)
	if u.Gender == models.GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	mult, ok := activityMultipliers[u.Activity]
	if !ok {
		mult = 1.2
	}
	if u.Goal == models.GoalLoseWeight && mult > 1.2 {
		mult = 1.2
	}
	tdee := bmr * mult

	if u.BodyFatPct != nil {
		lbm := u.WeightKG * (1 - *u.BodyFatPct/100)
		if min := lbm * 25; tdee < min {
			tdee = min
		}
	}

	calories := tdee
	switch u.Goal {
	case models.GoalLoseWeight:
		calories -= 500
	case models.GoalGainMuscle:
		calories += 500
	}

	floor := 1500.0
	if u.Gender == models.GenderFemale {
		floor = 1200.0
	}
	if calories < floor {
		calories = floor
	}

	ratios, ok := macroRatios[u.Goal]
	if !ok {
		ratios = macroRatios[models.GoalOther]
	}

	return models.DailyTargets{
		Calories: int(math.Round(calories)),
		ProteinG: int(math.Round(calories * ratios[0] / 4)),
		CarbsG:   int(math.Round(calories * ratios[1] / 4)),
		FatG:     int(math.Round(calories * ratios[2] / 9)),
		WaterML:  int(math.Round(u.WeightKG * WaterMLPerKG)),
		SodiumMG: SodiumTargetMG,
		FiberG:   FiberTargetG,
		SugarG:   SugarTargetG,
	}
}
