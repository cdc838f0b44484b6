package nutrition_test

import (
	"testing"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
)

func profile() *models.User {
	return &models.User{
		Language: models.LangEN,
		Name:     "Alex",
		Age:      30,
		HeightCM: 180,
		WeightKG: 80,
		Gender:   models.GenderMale,
		Timezone: "Asia/Tashkent",
		Goal:     models.GoalLoseWeight,
		Activity: models.ActivitySedentary,
	}
}

func TestRequirementsRegistrationHappyPath(t *testing.T) {
	t.Parallel()
	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780; TDEE = 1780*1.2 = 2136;
	// lose_weight adjust -500 -> 1636, above the 1500 floor.
	got := nutrition.Requirements(profile())

	if got.Calories != 1636 {
		t.Fatalf("expected 1636 kcal, got %d", got.Calories)
	}
	if got.ProteinG != 143 {
		t.Fatalf("expected 143 g protein, got %d", got.ProteinG)
	}
	if got.CarbsG != 164 {
		t.Fatalf("expected 164 g carbs, got %d", got.CarbsG)
	}
	if got.FatG != 45 {
		t.Fatalf("expected 45 g fat, got %d", got.FatG)
	}
	if got.WaterML != 2800 {
		t.Fatalf("expected 2800 ml water, got %d", got.WaterML)
	}
	if got.SodiumMG != 2300 || got.FiberG != 30 || got.SugarG != 50 {
		t.Fatalf("unexpected fixed reference targets: %+v", got)
	}
}

func TestLoseWeightActivityCap(t *testing.T) {
	t.Parallel()
	sedentary := profile()
	super := profile()
	super.Activity = models.ActivitySuper

	a := nutrition.Requirements(sedentary)
	b := nutrition.Requirements(super)
	if a.Calories != b.Calories {
		t.Fatalf("lose_weight cap violated: sedentary=%d super=%d", a.Calories, b.Calories)
	}
}

func TestCalorieFloorByGender(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		gender models.Gender
		floor  int
	}{
		{models.GenderMale, 1500},
		{models.GenderFemale, 1200},
	} {
		// A very small profile drives the adjusted value under the floor.
		u := &models.User{
			Age:      80,
			HeightCM: 150,
			WeightKG: 45,
			Gender:   tc.gender,
			Goal:     models.GoalLoseWeight,
			Activity: models.ActivitySedentary,
		}
		got := nutrition.Requirements(u)
		if got.Calories < tc.floor {
			t.Fatalf("%s floor violated: got %d, want >= %d", tc.gender, got.Calories, tc.floor)
		}
		if got.Calories != tc.floor {
			t.Fatalf("%s profile should clamp to floor %d, got %d", tc.gender, tc.floor, got.Calories)
		}
	}
}

func TestFloorHoldsAcrossProfiles(t *testing.T) {
	t.Parallel()
	for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
		for _, goal := range models.Goals {
			for _, act := range models.Activities {
				for age := 0; age <= 120; age += 30 {
					u := &models.User{
						Age: age, HeightCM: 50, WeightKG: 20,
						Gender: gender, Goal: goal, Activity: act,
					}
					got := nutrition.Requirements(u)
					floor := 1500
					if gender == models.GenderFemale {
						floor = 1200
					}
					if got.Calories < floor {
						t.Fatalf("floor violated for %+v: %d < %d", u, got.Calories, floor)
					}
				}
			}
		}
	}
}

func TestBodyFatLowerBoundDoesNotRaiseModerateTDEE(t *testing.T) {
	t.Parallel()
	// Boundary scenario: TDEE = 2136. body fat 30 -> LBM 56, 56*25 = 1400;
	// body fat 5 -> LBM 76, 76*25 = 1900. Both below 2136, so no change.
	base := nutrition.Requirements(profile())

	for _, bf := range []float64{30, 5} {
		u := profile()
		u.BodyFatPct = &bf
		got := nutrition.Requirements(u)
		if got.Calories != base.Calories {
			t.Fatalf("body fat %.0f should not change calories: %d != %d", bf, got.Calories, base.Calories)
		}
	}
}

func TestBodyFatLowerBoundRaisesTinyTDEE(t *testing.T) {
	t.Parallel()
	// Heavy lean user with low computed BMR: LBM*25 dominates.
	bf := 5.0
	u := &models.User{
		Age: 120, HeightCM: 150, WeightKG: 120,
		Gender: models.GenderFemale, Goal: models.GoalOther,
		Activity: models.ActivitySedentary, BodyFatPct: &bf,
	}
	// BMR = 1200 + 937.5 - 600 - 161 = 1376.5; TDEE = 1651.8;
	// LBM = 114, LBM*25 = 2850 > TDEE -> calories = 2850.
	got := nutrition.Requirements(u)
	if got.Calories != 2850 {
		t.Fatalf("expected LBM floor 2850 kcal, got %d", got.Calories)
	}
}

func TestGainMuscleMacroSplit(t *testing.T) {
	t.Parallel()
	u := profile()
	u.Goal = models.GoalGainMuscle
	u.Activity = models.ActivityModerate
	// BMR 1780, TDEE 1780*1.55 = 2759, +500 = 3259.
	got := nutrition.Requirements(u)
	if got.Calories != 3259 {
		t.Fatalf("expected 3259 kcal, got %d", got.Calories)
	}
	if got.ProteinG != 326 { // 3259*0.40/4 = 325.9
		t.Fatalf("expected 326 g protein, got %d", got.ProteinG)
	}
	if got.FatG != 72 { // 3259*0.20/9 = 72.4
		t.Fatalf("expected 72 g fat, got %d", got.FatG)
	}
}
