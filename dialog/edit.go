package dialog

import (
	"strconv"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Profile fields editable from settings.
const (
	FieldName     = "name"
	FieldAge      = "age"
	FieldHeight   = "height"
	FieldWeight   = "weight"
	FieldGoal     = "goal"
	FieldActivity = "activity"
	FieldTimezone = "timezone"
	FieldBodyFat  = "bodyfat"
)

// targetFields are the edits that change the requirement calculator's
// inputs; commits of these re-run it and report the before/after delta.
var targetFields = map[string]bool{
	FieldAge: true, FieldHeight: true, FieldWeight: true,
	FieldGoal: true, FieldActivity: true, FieldBodyFat: true,
}

// AffectsTargets reports whether an edit of the field changes daily targets.
func AffectsTargets(field string) bool {
	return targetFields[field]
}

// PromptKey is the ask-prompt for one editable field.
func PromptKey(field string) (key, keyboard string) {
	switch field {
	case FieldName:
		return "ask_name", KeyboardNone
	case FieldAge:
		return "ask_age", KeyboardNone
	case FieldHeight:
		return "ask_height", KeyboardNone
	case FieldWeight:
		return "ask_weight", KeyboardNone
	case FieldGoal:
		return "ask_goal", KeyboardGoal
	case FieldActivity:
		return "ask_activity", KeyboardActivity
	case FieldTimezone:
		return "ask_timezone", KeyboardNone
	case FieldBodyFat:
		return "ask_bodyfat", KeyboardSkip
	}
	return "try_again", KeyboardNone
}

// ApplyProfileEdit validates one settings input and mutates the profile.
// On failure it returns the localization key of the validation error and
// leaves the profile untouched.
func ApplyProfileEdit(u *models.User, field, input string) (errKey string) {
	switch field {
	case FieldName:
		name, err := models.ValidateName(input)
		if err != nil {
			return "invalid_name"
		}
		u.Name = name
	case FieldAge:
		age, err := strconv.Atoi(input)
		if err != nil || models.ValidateAge(age) != nil {
			return "invalid_age"
		}
		u.Age = age
	case FieldHeight:
		h, err := parseNumber(input)
		if err != nil || models.ValidateHeight(h) != nil {
			return "invalid_height"
		}
		u.HeightCM = h
	case FieldWeight:
		w, err := parseNumber(input)
		if err != nil || models.ValidateWeight(w) != nil {
			return "invalid_weight"
		}
		u.WeightKG = w
	case FieldGoal:
		if !validGoal(input) {
			return "ask_goal"
		}
		u.Goal = models.Goal(input)
	case FieldActivity:
		if !validActivity(input) {
			return "ask_activity"
		}
		u.Activity = models.Activity(input)
	case FieldTimezone:
		if models.ValidateTimezone(input) != nil {
			return "invalid_timezone"
		}
		u.Timezone = input
	case FieldBodyFat:
		bf, err := parseNumber(input)
		if err != nil || models.ValidateBodyFat(bf) != nil {
			return "invalid_bodyfat"
		}
		u.BodyFatPct = &bf
	default:
		return "try_again"
	}
	return ""
}
