package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
	"github.com/jurat11/BiteWise-sub000/stats"
	"github.com/jurat11/BiteWise-sub000/streaks"
)

const analyzeTimeout = 90 * time.Second

func (b *Bot) onLogMeal(c tele.Context, u *models.User) error {
	b.sessions.Set(u.ID, dialog.Session{State: dialog.StateMealSelectType})
	return c.Send(i18n.T(u.Language, "choose_meal_type"), mealKindMenu(u.Language))
}

func (b *Bot) onMealKindPicked(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	id := c.Sender().ID
	sess := b.sessions.Get(id)
	if sess.State != dialog.StateMealSelectType {
		return nil
	}
	kind := models.MealKind(strings.TrimSpace(c.Data()))
	if !kind.Valid() {
		return nil
	}
	sess.State = dialog.StateMealWaitInput
	sess.MealKind = kind
	b.sessions.Set(id, sess)

	lang := b.langOf(c)
	return c.Send(i18n.T(lang, "send_meal"))
}

// commitMeal runs the full logging pipeline: analyze, store, streaks,
// summary. An analyzer failure still commits a default record with a
// visible note. If the dialog moved on while the model was thinking, the
// result is discarded without a message.
func (b *Bot) commitMeal(c tele.Context, sess dialog.Session, text string, photo []byte) error {
	id := c.Sender().ID
	gen := sess.Gen

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	u, err := b.st.GetUser(ctx, id)
	if err != nil {
		logger.Error("load user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(models.LangEN, "try_again"))
	}
	lang := u.Language

	if strings.TrimSpace(text) == "" && len(photo) == 0 {
		return c.Send(i18n.T(lang, "send_meal"))
	}
	_ = c.Send(i18n.T(lang, "analyzing"))

	analysis := b.analyze(ctx, u, sess.MealKind, text, photo)

	// The dialog moved on (cancel, restart, new flow) while we waited.
	if b.sessions.Gen(id) != gen {
		return nil
	}

	photoKey := ""
	origin := models.OriginText
	if len(photo) > 0 {
		origin = models.OriginPhoto
		if key, err := b.photos.Upload(ctx, id, photo); err != nil {
			logger.Warn("upload photo", zap.Int64("user_id", id), zap.Error(err))
		} else {
			photoKey = key
		}
	}

	now := time.Now().UTC()
	record := &models.MealRecord{
		ID:             uuid.NewString(),
		UserID:         id,
		At:             now,
		Kind:           sess.MealKind,
		Origin:         origin,
		RawText:        text,
		PhotoKey:       photoKey,
		Nutrients:      analysis.Nutrients,
		PositiveEffect: analysis.PositiveEffect,
		HealthNote:     analysis.HealthNote,
		Recommendation: analysis.Recommendation,
		AnalysisOK:     analysis.OK,
	}
	if err := b.st.AppendMeal(ctx, record); err != nil {
		logger.Warn("append meal", zap.Int64("user_id", id), zap.Error(err))
	}

	events, err := b.updater.Update(ctx, u, models.StreakMeal, now)
	if err != nil {
		logger.Warn("meal streak", zap.Int64("user_id", id), zap.Error(err))
	}

	b.sessions.Clear(id)
	if err := c.Send(mealSummary(u, sess.MealKind, analysis), mainMenu(lang)); err != nil {
		return err
	}
	return b.sendStreakEvents(c, lang, events)
}

// analyze wraps the Gemini call; any failure degrades to the conservative
// default record so the meal still gets logged.
func (b *Bot) analyze(ctx context.Context, u *models.User, kind models.MealKind, text string, photo []byte) *nutrition.Analysis {
	if b.analyzer == nil {
		return &nutrition.Analysis{Nutrients: nutrition.DefaultNutrients()}
	}
	analysis, err := b.analyzer.Analyze(ctx, u.Language, kind, text, photo, u.Targets.Calories)
	if err != nil {
		logger.Warn("analyze meal", zap.Int64("user_id", u.ID), zap.Error(err))
		return &nutrition.Analysis{Nutrients: nutrition.DefaultNutrients()}
	}
	return analysis
}

// mealSummary renders the logged-meal reply: nutrient lines, the share of
// the daily calorie target, and the model's prose sections.
func mealSummary(u *models.User, kind models.MealKind, a *nutrition.Analysis) string {
	lang := u.Language
	var sb strings.Builder
	sb.WriteString(i18n.T(lang, "meal_logged_header", "kind", i18n.T(lang, "meal_"+string(kind))))
	sb.WriteString("\n\n")

	line := func(key string, val float64, unit string) {
		sb.WriteString(fmt.Sprintf("%s: <b>%s</b> %s\n", i18n.T(lang, key), trimFloat(val), unit))
	}
	line("label_calories", a.Nutrients.Calories, "kcal")
	line("label_protein", a.Nutrients.ProteinG, "g")
	line("label_carbs", a.Nutrients.CarbsG, "g")
	line("label_fat", a.Nutrients.FatG, "g")
	line("label_sodium", a.Nutrients.SodiumMG, "mg")
	line("label_fiber", a.Nutrients.FiberG, "g")
	line("label_sugar", a.Nutrients.SugarG, "g")

	pct := stats.Pct(a.Nutrients.Calories, u.Targets.Calories)
	sb.WriteString(i18n.T(lang, "label_daily_pct", "pct", fmt.Sprint(pct)))
	sb.WriteString("\n")

	section := func(key, text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		sb.WriteString("\n")
		sb.WriteString(i18n.T(lang, key))
		sb.WriteString(": ")
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	section("label_positive", a.PositiveEffect)
	section("label_note", a.HealthNote)
	section("label_recommendation", a.Recommendation)

	if !a.OK {
		sb.WriteString("\n")
		sb.WriteString(i18n.T(lang, "analysis_failed"))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	s = strings.TrimSuffix(s, ".0")
	return s
}

func (b *Bot) sendStreakEvents(c tele.Context, lang models.Language, events []streaks.Event) error {
	for _, ev := range events {
		msg := i18n.T(lang, ev.MsgKey, "count", fmt.Sprint(ev.Count))
		if err := c.Send(msg); err != nil {
			return err
		}
	}
	return nil
}
