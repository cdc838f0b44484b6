package bot

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
)

func (b *Bot) onSettings(c tele.Context, u *models.User) error {
	return c.Send(i18n.T(u.Language, "settings_menu"), settingsMenu(u.Language))
}

func (b *Bot) onSettingsPicked(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, c.Sender().ID)
	if err != nil {
		return c.Send(i18n.T(models.LangEN, "not_registered"))
	}

	switch strings.TrimSpace(c.Data()) {
	case "language":
		return c.Send(i18n.T(u.Language, "choose_language"), langMenu())
	case "profile":
		return c.Send(i18n.T(u.Language, "edit_profile_menu"), editFieldMenu(u.Language))
	case "reminders":
		return c.Send(i18n.T(u.Language, "reminders_menu"), remindersMenu(u.Language, u.Reminders))
	case "bodyfat":
		b.sessions.Set(u.ID, dialog.Session{State: dialog.StateEditField, EditField: dialog.FieldBodyFat})
		key, kb := dialog.PromptKey(dialog.FieldBodyFat)
		return c.Send(i18n.T(u.Language, key), keyboardFor(u.Language, kb))
	}
	return nil
}

func (b *Bot) onEditFieldPicked(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	field := strings.TrimSpace(c.Data())
	key, kb := dialog.PromptKey(field)
	if key == "try_again" {
		return nil
	}
	id := c.Sender().ID
	b.sessions.Set(id, dialog.Session{State: dialog.StateEditField, EditField: field})

	lang := b.langOf(c)
	if markup := keyboardFor(lang, kb); markup != nil {
		return c.Send(i18n.T(lang, key), markup)
	}
	return c.Send(i18n.T(lang, key))
}

// commitProfileEdit validates one edit, re-runs the requirement calculator
// when the field feeds it, and reports the before/after delta.
func (b *Bot) commitProfileEdit(c tele.Context, sess dialog.Session, input string) error {
	id := c.Sender().ID

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, id)
	if err != nil {
		logger.Error("load user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(models.LangEN, "try_again"))
	}
	lang := u.Language

	// The skip button on the body-fat prompt clears the stored value.
	if sess.EditField == dialog.FieldBodyFat && strings.EqualFold(input, dialog.SkipToken) {
		u.BodyFatPct = nil
	} else if errKey := dialog.ApplyProfileEdit(u, sess.EditField, input); errKey != "" {
		key, kb := dialog.PromptKey(sess.EditField)
		if errKey != key {
			key = errKey
		}
		if markup := keyboardFor(lang, kb); markup != nil {
			return c.Send(i18n.T(lang, key), markup)
		}
		return c.Send(i18n.T(lang, key))
	}

	var before models.DailyTargets
	recompute := dialog.AffectsTargets(sess.EditField)
	if recompute {
		before = u.Targets
		u.Targets = nutrition.Requirements(u)
	}
	if err := b.st.PutUser(ctx, u); err != nil {
		logger.Error("save user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(lang, "try_again"))
	}
	b.sessions.Clear(id)
	if sess.EditField == dialog.FieldTimezone {
		b.installJobs(u)
	}

	if err := c.Send(i18n.T(lang, "profile_updated"), mainMenu(lang)); err != nil {
		return err
	}
	if recompute {
		return c.Send(targetsDelta(lang, before, u.Targets))
	}
	return nil
}

func targetsDelta(lang models.Language, before, after models.DailyTargets) string {
	return i18n.T(lang, "targets_delta",
		"cal_before", fmt.Sprint(before.Calories), "cal_after", fmt.Sprint(after.Calories),
		"protein_before", fmt.Sprint(before.ProteinG), "protein_after", fmt.Sprint(after.ProteinG),
		"carbs_before", fmt.Sprint(before.CarbsG), "carbs_after", fmt.Sprint(after.CarbsG),
		"fat_before", fmt.Sprint(before.FatG), "fat_after", fmt.Sprint(after.FatG),
	)
}

// onReminderToggled flips one channel, rebuilds the user's jobs and
// refreshes the toggle keyboard in place.
func (b *Bot) onReminderToggled(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, c.Sender().ID)
	if err != nil {
		return c.Send(i18n.T(models.LangEN, "not_registered"))
	}

	r := &u.Reminders
	switch strings.TrimSpace(c.Data()) {
	case "water":
		r.Water = !r.Water
	case "meal":
		r.Meal = !r.Meal
	case "motivational":
		r.Motivational = !r.Motivational
	case "breakfast":
		r.Breakfast = !r.Breakfast
	case "lunch":
		r.Lunch = !r.Lunch
	case "dinner":
		r.Dinner = !r.Dinner
	default:
		return nil
	}

	if err := b.st.PatchUser(ctx, u.ID, map[string]any{"reminders": u.Reminders}); err != nil {
		logger.Warn("patch reminders", zap.Int64("user_id", u.ID), zap.Error(err))
	}
	b.installJobs(u)
	return c.Edit(i18n.T(u.Language, "reminders_menu"), remindersMenu(u.Language, u.Reminders))
}

// PromptWeight flips the user into the weekly weight check-in; the
// scheduler calls it right before sending the prompt.
func (b *Bot) PromptWeight(userID int64) {
	b.sessions.Set(userID, dialog.Session{State: dialog.StateWeightUpdate})
}

func (b *Bot) commitWeightUpdate(c tele.Context, input string) error {
	id := c.Sender().ID

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, id)
	if err != nil {
		logger.Error("load user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(models.LangEN, "try_again"))
	}
	lang := u.Language

	w, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(input), ",", "."), 64)
	if err != nil || models.ValidateWeight(w) != nil {
		return c.Send(i18n.T(lang, "invalid_weight"))
	}

	u.WeightKG = w
	u.Targets = nutrition.Requirements(u)
	if err := b.st.PutUser(ctx, u); err != nil {
		logger.Error("save user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(lang, "try_again"))
	}
	b.sessions.Clear(id)

	delta := u.WeightKG - u.InitialWeightKG
	return c.Send(i18n.T(lang, "weight_updated", "delta", signedFloat(delta)), mainMenu(lang))
}
