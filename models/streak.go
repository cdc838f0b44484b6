package models

// Streak kinds currently tracked.
const (
	StreakWater = "water"
	StreakMeal  = "meal"
)

// Badge keys.
const (
	BadgeWater5Days = "water_5_days"
	Badge50Meals    = "50_meals"
)

// Streak is a consecutive-day logging counter for one kind. LastDate is the
// last credited calendar date in the user's own time zone, "YYYY-MM-DD".
type Streak struct {
	UserID   int64  `bson:"user_id" json:"user_id"`
	Kind     string `bson:"kind" json:"kind"`
	Count    int    `bson:"count" json:"count"`
	LastDate string `bson:"last_date" json:"last_date"`
}
