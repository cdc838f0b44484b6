package models

import (
	"time"
)

type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
	LangUZ Language = "uz"
)

func (l Language) Valid() bool {
	return l == LangEN || l == LangRU || l == LangUZ
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalLoseWeight   Goal = "lose_weight"
	GoalGainMuscle   Goal = "gain_muscle"
	GoalEatHealthier Goal = "eat_healthier"
	GoalLookYounger  Goal = "look_younger"
	GoalOther        Goal = "other_goal"
)

var Goals = []Goal{GoalLoseWeight, GoalGainMuscle, GoalEatHealthier, GoalLookYounger, GoalOther}

type Activity string

const (
	ActivitySedentary  Activity = "sedentary"
	ActivityLight      Activity = "lightly_active"
	ActivityModerate   Activity = "moderately_active"
	ActivityVery       Activity = "very_active"
	ActivitySuper      Activity = "super_active"
)

var Activities = []Activity{ActivitySedentary, ActivityLight, ActivityModerate, ActivityVery, ActivitySuper}

// Reminders holds the per-channel opt-in flags. Meal is the master switch
// for the three meal-time channels.
type Reminders struct {
	Water        bool `bson:"water" json:"water"`
	Meal         bool `bson:"meal" json:"meal"`
	Motivational bool `bson:"motivational" json:"motivational"`
	Breakfast    bool `bson:"breakfast" json:"breakfast"`
	Lunch        bool `bson:"lunch" json:"lunch"`
	Dinner       bool `bson:"dinner" json:"dinner"`
}

func DefaultReminders() Reminders {
	return Reminders{Water: true, Meal: true, Motivational: true, Breakfast: true, Lunch: true, Dinner: true}
}

// DailyTargets is the derived daily requirement set, recomputed on every
// profile edit that affects it.
type DailyTargets struct {
	Calories int `bson:"calories" json:"calories"`
	ProteinG int `bson:"protein_g" json:"protein_g"`
	CarbsG   int `bson:"carbs_g" json:"carbs_g"`
	FatG     int `bson:"fat_g" json:"fat_g"`
	WaterML  int `bson:"water_ml" json:"water_ml"`
	SodiumMG int `bson:"sodium_mg" json:"sodium_mg"`
	FiberG   int `bson:"fiber_g" json:"fiber_g"`
	SugarG   int `bson:"sugar_g" json:"sugar_g"`
}

// User represents a registered user, keyed by the external chat user id.
type User struct {
	ID              int64        `bson:"_id" json:"id"`
	Language        Language     `bson:"language" json:"language"`
	Name            string       `bson:"name" json:"name"`
	Age             int          `bson:"age" json:"age"`
	HeightCM        float64      `bson:"height_cm" json:"height_cm"`
	WeightKG        float64      `bson:"weight_kg" json:"weight_kg"`
	Gender          Gender       `bson:"gender" json:"gender"`
	Timezone        string       `bson:"timezone" json:"timezone"`
	Goal            Goal         `bson:"goal" json:"goal"`
	Activity        Activity     `bson:"activity" json:"activity"`
	BodyFatPct      *float64     `bson:"body_fat_pct,omitempty" json:"body_fat_pct,omitempty"`
	Reminders       Reminders    `bson:"reminders" json:"reminders"`
	InitialWeightKG float64      `bson:"initial_weight_kg" json:"initial_weight_kg"`
	Targets         DailyTargets `bson:"targets" json:"targets"`
	Inactive        bool         `bson:"inactive" json:"inactive"`
	RegisteredAt    time.Time    `bson:"registered_at" json:"registered_at"`
	LastActiveAt    time.Time    `bson:"last_active_at" json:"last_active_at"`
}

// Location resolves the user's IANA time zone, falling back to UTC if the
// stored value no longer loads.
func (u *User) Location() *time.Location {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
