package dialog

import (
	"strconv"
	"strings"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Keyboard hints attached to replies so the transport layer knows which
// button set to show with the prompt.
const (
	KeyboardNone     = ""
	KeyboardSkip     = "skip"
	KeyboardGender   = "gender"
	KeyboardGoal     = "goal"
	KeyboardActivity = "activity"
	KeyboardMealKind = "mealkind"
	KeyboardWater    = "water"
)

// Reply is the outcome of one state transition: the message key to send,
// its keyboard, and whether the registration just completed.
type Reply struct {
	Key      string
	Keyboard string
	Done     bool
}

// SkipToken is the canonical payload of the skip button; the body-fat step
// accepts it in any language via the button callback.
const SkipToken = "skip"

// AdvanceRegistration feeds one input (free text or a canonical button
// payload) into the registration flow. Invalid input re-emits the prompt of
// the current state; valid input mutates the draft and moves forward.
func AdvanceRegistration(sess *Session, input string) Reply {
	input = strings.TrimSpace(input)

	switch sess.State {
	case StateRegName:
		name, err := models.ValidateName(input)
		if err != nil {
			return Reply{Key: "invalid_name"}
		}
		sess.Draft.Name = name
		sess.State = StateRegAge
		return Reply{Key: "ask_age"}

	case StateRegAge:
		age, err := strconv.Atoi(input)
		if err != nil || models.ValidateAge(age) != nil {
			return Reply{Key: "invalid_age"}
		}
		sess.Draft.Age = age
		sess.State = StateRegHeight
		return Reply{Key: "ask_height"}

	case StateRegHeight:
		h, err := parseNumber(input)
		if err != nil || models.ValidateHeight(h) != nil {
			return Reply{Key: "invalid_height"}
		}
		sess.Draft.HeightCM = h
		sess.State = StateRegWeight
		return Reply{Key: "ask_weight"}

	case StateRegWeight:
		w, err := parseNumber(input)
		if err != nil || models.ValidateWeight(w) != nil {
			return Reply{Key: "invalid_weight"}
		}
		sess.Draft.WeightKG = w
		sess.Draft.InitialWeightKG = w
		sess.State = StateRegBodyFat
		return Reply{Key: "ask_bodyfat", Keyboard: KeyboardSkip}

	case StateRegBodyFat:
		if !strings.EqualFold(input, SkipToken) {
			bf, err := parseNumber(input)
			if err != nil || models.ValidateBodyFat(bf) != nil {
				return Reply{Key: "invalid_bodyfat", Keyboard: KeyboardSkip}
			}
			sess.Draft.BodyFatPct = &bf
		}
		sess.State = StateRegGender
		return Reply{Key: "ask_gender", Keyboard: KeyboardGender}

	case StateRegGender:
		switch models.Gender(input) {
		case models.GenderMale, models.GenderFemale:
			sess.Draft.Gender = models.Gender(input)
		default:
			return Reply{Key: "ask_gender", Keyboard: KeyboardGender}
		}
		sess.State = StateRegTimezone
		return Reply{Key: "ask_timezone"}

	case StateRegTimezone:
		if models.ValidateTimezone(input) != nil {
			return Reply{Key: "invalid_timezone"}
		}
		sess.Draft.Timezone = input
		sess.State = StateRegGoal
		return Reply{Key: "ask_goal", Keyboard: KeyboardGoal}

	case StateRegGoal:
		if !validGoal(input) {
			return Reply{Key: "ask_goal", Keyboard: KeyboardGoal}
		}
		sess.Draft.Goal = models.Goal(input)
		sess.State = StateRegActivity
		return Reply{Key: "ask_activity", Keyboard: KeyboardActivity}

	case StateRegActivity:
		if !validActivity(input) {
			return Reply{Key: "ask_activity", Keyboard: KeyboardActivity}
		}
		sess.Draft.Activity = models.Activity(input)
		sess.State = StateIdle
		return Reply{Done: true}
	}

	return Reply{Key: "try_again"}
}

// ParseWaterAmount validates a custom water input: a whole number of
// milliliters in [1, 5000].
func ParseWaterAmount(input string) (int, error) {
	ml, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, models.ErrOutOfRange
	}
	if err := models.ValidateWaterAmount(ml); err != nil {
		return 0, err
	}
	return ml, nil
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
}

func validGoal(s string) bool {
	for _, g := range models.Goals {
		if models.Goal(s) == g {
			return true
		}
	}
	return false
}

func validActivity(s string) bool {
	for _, a := range models.Activities {
		if models.Activity(s) == a {
			return true
		}
	}
	return false
}
