package dialog_test

import (
	"testing"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
)

func TestRegistrationHappyPath(t *testing.T) {
	t.Parallel()
	sess := &dialog.Session{State: dialog.StateRegName, Draft: models.User{ID: 1, Language: models.LangEN}}

	steps := []struct {
		input   string
		wantKey string
	}{
		{"Alex", "ask_age"},
		{"30", "ask_height"},
		{"180", "ask_weight"},
		{"80", "ask_bodyfat"},
		{"skip", "ask_gender"},
		{"male", "ask_timezone"},
		{"Asia/Tashkent", "ask_goal"},
		{"lose_weight", "ask_activity"},
	}
	for _, s := range steps {
		r := dialog.AdvanceRegistration(sess, s.input)
		if r.Done {
			t.Fatalf("input %q finished registration early", s.input)
		}
		if r.Key != s.wantKey {
			t.Fatalf("input %q: expected prompt %q, got %q", s.input, s.wantKey, r.Key)
		}
	}

	r := dialog.AdvanceRegistration(sess, "sedentary")
	if !r.Done {
		t.Fatalf("expected registration done, got %+v", r)
	}

	d := sess.Draft
	if d.Name != "Alex" || d.Age != 30 || d.HeightCM != 180 || d.WeightKG != 80 {
		t.Fatalf("draft mismatch: %+v", d)
	}
	if d.BodyFatPct != nil {
		t.Fatal("skipped body fat must stay nil")
	}
	if d.Gender != models.GenderMale || d.Timezone != "Asia/Tashkent" {
		t.Fatalf("draft mismatch: %+v", d)
	}
	if d.Goal != models.GoalLoseWeight || d.Activity != models.ActivitySedentary {
		t.Fatalf("draft mismatch: %+v", d)
	}
	if d.InitialWeightKG != 80 {
		t.Fatalf("initial weight snapshot missing: %v", d.InitialWeightKG)
	}

	// Scenario 1 targets from the completed draft.
	targets := nutrition.Requirements(&d)
	if targets.Calories != 1636 || targets.ProteinG != 143 || targets.CarbsG != 164 || targets.FatG != 45 {
		t.Fatalf("unexpected targets: %+v", targets)
	}
	if targets.WaterML != 2800 {
		t.Fatalf("expected 2800 ml water target, got %d", targets.WaterML)
	}
}

func TestInvalidInputRepromptsWithoutAdvancing(t *testing.T) {
	t.Parallel()
	sess := &dialog.Session{State: dialog.StateRegAge}

	for _, bad := range []string{"abc", "-1", "121", ""} {
		r := dialog.AdvanceRegistration(sess, bad)
		if r.Key != "invalid_age" {
			t.Fatalf("input %q: expected invalid_age, got %q", bad, r.Key)
		}
		if sess.State != dialog.StateRegAge {
			t.Fatalf("input %q advanced the state to %v", bad, sess.State)
		}
	}

	if r := dialog.AdvanceRegistration(sess, "30"); r.Key != "ask_height" {
		t.Fatalf("valid input after failures should advance, got %q", r.Key)
	}
}

func TestBodyFatAcceptsValueOrSkip(t *testing.T) {
	t.Parallel()
	sess := &dialog.Session{State: dialog.StateRegBodyFat}
	if r := dialog.AdvanceRegistration(sess, "2"); r.Key != "invalid_bodyfat" {
		t.Fatalf("2%% must be rejected, got %q", r.Key)
	}
	if r := dialog.AdvanceRegistration(sess, "22.5"); r.Key != "ask_gender" {
		t.Fatalf("valid body fat must advance, got %q", r.Key)
	}
	if sess.Draft.BodyFatPct == nil || *sess.Draft.BodyFatPct != 22.5 {
		t.Fatalf("body fat not stored: %+v", sess.Draft.BodyFatPct)
	}
}

func TestWaterAmountValidation(t *testing.T) {
	t.Parallel()
	for _, bad := range []string{"0", "5001", "abc", "-10", "2.5"} {
		if _, err := dialog.ParseWaterAmount(bad); err == nil {
			t.Fatalf("input %q must be rejected", bad)
		}
	}
	ml, err := dialog.ParseWaterAmount("250")
	if err != nil {
		t.Fatalf("250 must be accepted: %v", err)
	}
	if ml != 250 {
		t.Fatalf("expected 250, got %d", ml)
	}
}

func TestManagerClearDiscardsPendingGeneration(t *testing.T) {
	t.Parallel()
	m := dialog.NewManager()
	m.Set(1, dialog.Session{State: dialog.StateMealWaitInput, MealKind: models.MealLunch})

	gen := m.Gen(1)
	if gen == 0 {
		t.Fatal("generation must advance on Set")
	}

	// A hard cancel arrives while analysis is in flight.
	m.Clear(1)
	if m.Gen(1) == gen {
		t.Fatal("Clear must advance the generation so the stale result is dropped")
	}
	if m.Active(1) {
		t.Fatal("cleared session must be idle")
	}
}

func TestProfileEditValidation(t *testing.T) {
	t.Parallel()
	u := &models.User{Name: "Alex", Age: 30, HeightCM: 180, WeightKG: 80}

	if key := dialog.ApplyProfileEdit(u, dialog.FieldWeight, "301"); key != "invalid_weight" {
		t.Fatalf("expected invalid_weight, got %q", key)
	}
	if u.WeightKG != 80 {
		t.Fatalf("failed edit must not mutate: %v", u.WeightKG)
	}

	if key := dialog.ApplyProfileEdit(u, dialog.FieldWeight, "78,5"); key != "" {
		t.Fatalf("expected success, got %q", key)
	}
	if u.WeightKG != 78.5 {
		t.Fatalf("expected 78.5, got %v", u.WeightKG)
	}

	if !dialog.AffectsTargets(dialog.FieldWeight) {
		t.Fatal("weight edits must recompute targets")
	}
	if dialog.AffectsTargets(dialog.FieldName) {
		t.Fatal("name edits must not recompute targets")
	}
}

func TestBodyFatEditKeepsTargetsInBoundaryScenario(t *testing.T) {
	t.Parallel()
	u := &models.User{
		Age: 30, HeightCM: 180, WeightKG: 80,
		Gender: models.GenderMale, Goal: models.GoalLoseWeight,
		Activity: models.ActivitySedentary,
	}
	before := nutrition.Requirements(u)

	if key := dialog.ApplyProfileEdit(u, dialog.FieldBodyFat, "30"); key != "" {
		t.Fatalf("expected success, got %q", key)
	}
	after := nutrition.Requirements(u)
	if after.Calories != before.Calories {
		t.Fatalf("body fat 30 must not change calories: %d != %d", after.Calories, before.Calories)
	}

	if key := dialog.ApplyProfileEdit(u, dialog.FieldBodyFat, "5"); key != "" {
		t.Fatalf("expected success, got %q", key)
	}
	after = nutrition.Requirements(u)
	if after.Calories != before.Calories {
		t.Fatalf("body fat 5 must not change calories: %d != %d", after.Calories, before.Calories)
	}
}
