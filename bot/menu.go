package bot

import (
	tele "gopkg.in/telebot.v3"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/models"
)

// Callback-button uniques. Handlers are registered per unique; the payload
// carries the canonical value the dialog layer expects.
const (
	cbLang      = "lang"
	cbSkip      = "skip"
	cbGender    = "gender"
	cbGoal      = "goal"
	cbActivity  = "activity"
	cbMealKind  = "mealkind"
	cbWater     = "water"
	cbSettings  = "settings"
	cbEditField = "editfield"
	cbReminder  = "remtoggle"
)

func mainMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{ResizeKeyboard: true}
	rm.Reply(
		rm.Row(rm.Text(i18n.T(lang, "btn_log_meal")), rm.Text(i18n.T(lang, "btn_log_water"))),
		rm.Row(rm.Text(i18n.T(lang, "btn_stats")), rm.Text(i18n.T(lang, "btn_settings"))),
		rm.Row(rm.Text(i18n.T(lang, "btn_help"))),
	)
	return rm
}

func langMenu() *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(rm.Data("🇬🇧 English", cbLang, "en")),
		rm.Row(rm.Data("🇷🇺 Русский", cbLang, "ru")),
		rm.Row(rm.Data("🇺🇿 O'zbekcha", cbLang, "uz")),
	)
	return rm
}

func skipMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(rm.Row(rm.Data(i18n.T(lang, "btn_skip"), cbSkip, dialog.SkipToken)))
	return rm
}

func genderMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(rm.Row(
		rm.Data(i18n.T(lang, "btn_male"), cbGender, string(models.GenderMale)),
		rm.Data(i18n.T(lang, "btn_female"), cbGender, string(models.GenderFemale)),
	))
	return rm
}

func goalMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(models.Goals))
	for _, g := range models.Goals {
		rows = append(rows, rm.Row(rm.Data(i18n.T(lang, "goal_"+string(g)), cbGoal, string(g))))
	}
	rm.Inline(rows...)
	return rm
}

func activityMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rows := make([]tele.Row, 0, len(models.Activities))
	for _, a := range models.Activities {
		rows = append(rows, rm.Row(rm.Data(i18n.T(lang, "activity_"+string(a)), cbActivity, string(a))))
	}
	rm.Inline(rows...)
	return rm
}

func mealKindMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(
			rm.Data(i18n.T(lang, "meal_breakfast"), cbMealKind, string(models.MealBreakfast)),
			rm.Data(i18n.T(lang, "meal_lunch"), cbMealKind, string(models.MealLunch)),
		),
		rm.Row(
			rm.Data(i18n.T(lang, "meal_dinner"), cbMealKind, string(models.MealDinner)),
			rm.Data(i18n.T(lang, "meal_snack"), cbMealKind, string(models.MealSnack)),
		),
	)
	return rm
}

func waterMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(
			rm.Data("100 ml", cbWater, "100"),
			rm.Data("250 ml", cbWater, "250"),
			rm.Data("500 ml", cbWater, "500"),
		),
		rm.Row(rm.Data(i18n.T(lang, "btn_custom_amount"), cbWater, "custom")),
	)
	return rm
}

func settingsMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(rm.Data(i18n.T(lang, "btn_change_language"), cbSettings, "language")),
		rm.Row(rm.Data(i18n.T(lang, "btn_edit_profile"), cbSettings, "profile")),
		rm.Row(rm.Data(i18n.T(lang, "btn_edit_reminders"), cbSettings, "reminders")),
		rm.Row(rm.Data(i18n.T(lang, "btn_edit_bodyfat"), cbSettings, "bodyfat")),
	)
	return rm
}

func editFieldMenu(lang models.Language) *tele.ReplyMarkup {
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(
			rm.Data(i18n.T(lang, "btn_edit_name"), cbEditField, dialog.FieldName),
			rm.Data(i18n.T(lang, "btn_edit_age"), cbEditField, dialog.FieldAge),
		),
		rm.Row(
			rm.Data(i18n.T(lang, "btn_edit_height"), cbEditField, dialog.FieldHeight),
			rm.Data(i18n.T(lang, "btn_edit_weight"), cbEditField, dialog.FieldWeight),
		),
		rm.Row(
			rm.Data(i18n.T(lang, "btn_edit_goal"), cbEditField, dialog.FieldGoal),
			rm.Data(i18n.T(lang, "btn_edit_activity"), cbEditField, dialog.FieldActivity),
		),
		rm.Row(rm.Data(i18n.T(lang, "btn_edit_timezone"), cbEditField, dialog.FieldTimezone)),
	)
	return rm
}

func remindersMenu(lang models.Language, r models.Reminders) *tele.ReplyMarkup {
	mark := func(key string, on bool) string {
		if on {
			return "✅ " + i18n.T(lang, key)
		}
		return "☑️ " + i18n.T(lang, key)
	}
	rm := &tele.ReplyMarkup{}
	rm.Inline(
		rm.Row(
			rm.Data(mark("rem_water", r.Water), cbReminder, "water"),
			rm.Data(mark("rem_meal", r.Meal), cbReminder, "meal"),
		),
		rm.Row(
			rm.Data(mark("rem_breakfast", r.Breakfast), cbReminder, "breakfast"),
			rm.Data(mark("rem_lunch", r.Lunch), cbReminder, "lunch"),
			rm.Data(mark("rem_dinner", r.Dinner), cbReminder, "dinner"),
		),
		rm.Row(rm.Data(mark("rem_motivational", r.Motivational), cbReminder, "motivational")),
	)
	return rm
}

// keyboardFor maps the dialog layer's keyboard hint to a concrete markup.
func keyboardFor(lang models.Language, hint string) *tele.ReplyMarkup {
	switch hint {
	case dialog.KeyboardSkip:
		return skipMenu(lang)
	case dialog.KeyboardGender:
		return genderMenu(lang)
	case dialog.KeyboardGoal:
		return goalMenu(lang)
	case dialog.KeyboardActivity:
		return activityMenu(lang)
	case dialog.KeyboardMealKind:
		return mealKindMenu(lang)
	case dialog.KeyboardWater:
		return waterMenu(lang)
	}
	return nil
}
