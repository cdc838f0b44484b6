package models

import "time"

type MealKind string

const (
	MealBreakfast MealKind = "breakfast"
	MealLunch     MealKind = "lunch"
	MealDinner    MealKind = "dinner"
	MealSnack     MealKind = "snack"
)

var MealKinds = []MealKind{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (k MealKind) Valid() bool {
	for _, m := range MealKinds {
		if k == m {
			return true
		}
	}
	return false
}

type Origin string

const (
	OriginText  Origin = "text"
	OriginPhoto Origin = "photo"
)

// Nutrients is a quantified nutrient breakdown for one meal. All fields are
// non-negative and lie inside the plausibility ranges enforced at parse time.
type Nutrients struct {
	Calories float64 `bson:"calories" json:"calories"`
	ProteinG float64 `bson:"protein_g" json:"protein_g"`
	CarbsG   float64 `bson:"carbs_g" json:"carbs_g"`
	FatG     float64 `bson:"fat_g" json:"fat_g"`
	SodiumMG float64 `bson:"sodium_mg" json:"sodium_mg"`
	FiberG   float64 `bson:"fiber_g" json:"fiber_g"`
	SugarG   float64 `bson:"sugar_g" json:"sugar_g"`
}

// MealRecord is one logged meal. Immutable once written.
type MealRecord struct {
	ID             string    `bson:"_id" json:"id"`
	UserID         int64     `bson:"user_id" json:"user_id"`
	At             time.Time `bson:"at" json:"at"`
	Kind           MealKind  `bson:"kind" json:"kind"`
	Origin         Origin    `bson:"origin" json:"origin"`
	RawText        string    `bson:"raw_text,omitempty" json:"raw_text,omitempty"`
	PhotoKey       string    `bson:"photo_key,omitempty" json:"photo_key,omitempty"`
	Nutrients      Nutrients `bson:"nutrients" json:"nutrients"`
	PositiveEffect string    `bson:"positive_effect,omitempty" json:"positive_effect,omitempty"`
	HealthNote     string    `bson:"health_note,omitempty" json:"health_note,omitempty"`
	Recommendation string    `bson:"recommendation,omitempty" json:"recommendation,omitempty"`
	AnalysisOK     bool      `bson:"analysis_ok" json:"analysis_ok"`
}

// WaterEvent is one logged water intake. Immutable once written.
type WaterEvent struct {
	ID       string    `bson:"_id" json:"id"`
	UserID   int64     `bson:"user_id" json:"user_id"`
	At       time.Time `bson:"at" json:"at"`
	AmountML int       `bson:"amount_ml" json:"amount_ml"`
}
