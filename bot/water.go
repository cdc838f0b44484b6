package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/stats"
)

// Advisory thresholds. Neither blocks the log; both just add a notice.
const (
	waterCooldown   = 5 * time.Minute
	waterDailyCapML = 5000
)

func (b *Bot) onWater(c tele.Context, u *models.User) error {
	b.sessions.Set(u.ID, dialog.Session{State: dialog.StateWaterChoose})
	return c.Send(i18n.T(u.Language, "choose_water_amount"), waterMenu(u.Language))
}

func (b *Bot) onWaterPicked(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	id := c.Sender().ID
	sess := b.sessions.Get(id)
	if sess.State != dialog.StateWaterChoose && sess.State != dialog.StateWaterCustom {
		return nil
	}

	payload := strings.TrimSpace(c.Data())
	if payload == "custom" {
		sess.State = dialog.StateWaterCustom
		b.sessions.Set(id, sess)
		return c.Send(i18n.T(b.langOf(c), "ask_custom_amount"))
	}
	return b.commitCustomWater(c, payload)
}

// commitCustomWater validates a typed or preset amount and logs it.
func (b *Bot) commitCustomWater(c tele.Context, input string) error {
	id := c.Sender().ID

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, id)
	if err != nil {
		logger.Error("load user", zap.Int64("user_id", id), zap.Error(err))
		return c.Send(i18n.T(models.LangEN, "try_again"))
	}

	ml, err := dialog.ParseWaterAmount(input)
	if err != nil {
		return c.Send(i18n.T(u.Language, "invalid_water_amount"))
	}
	return b.commitWater(ctx, c, u, ml)
}

func (b *Bot) commitWater(ctx context.Context, c tele.Context, u *models.User, ml int) error {
	now := time.Now().UTC()
	lang := u.Language

	notices := b.waterNotices(ctx, u, ml, now)

	ev := &models.WaterEvent{
		ID:       uuid.NewString(),
		UserID:   u.ID,
		At:       now,
		AmountML: ml,
	}
	if err := b.st.AppendWater(ctx, ev); err != nil {
		logger.Warn("append water", zap.Int64("user_id", u.ID), zap.Error(err))
	}

	events, err := b.updater.Update(ctx, u, models.StreakWater, now)
	if err != nil {
		logger.Warn("water streak", zap.Int64("user_id", u.ID), zap.Error(err))
	}

	total := ml
	if view, err := stats.Today(ctx, b.st, u, now); err == nil {
		total = view.WaterML
	} else {
		logger.Warn("water total", zap.Int64("user_id", u.ID), zap.Error(err))
	}

	b.sessions.Clear(u.ID)
	msg := i18n.T(lang, "water_logged",
		"amount", fmt.Sprint(ml),
		"total", fmt.Sprint(total),
		"target", fmt.Sprint(u.Targets.WaterML),
	)
	if err := c.Send(msg, mainMenu(lang)); err != nil {
		return err
	}
	for _, n := range notices {
		if err := c.Send(i18n.T(lang, n)); err != nil {
			return err
		}
	}
	return b.sendStreakEvents(c, lang, events)
}

// waterNotices computes the advisory messages for a pending log: a second
// drink inside the cooldown window, and crossing the daily cap.
func (b *Bot) waterNotices(ctx context.Context, u *models.User, ml int, now time.Time) []string {
	var notices []string

	recent, err := b.st.WaterBetween(ctx, u.ID, now.Add(-waterCooldown), now)
	if err != nil {
		logger.Warn("water cooldown check", zap.Int64("user_id", u.ID), zap.Error(err))
	} else if len(recent) > 0 {
		notices = append(notices, "water_cooldown_notice")
	}

	if view, err := stats.Today(ctx, b.st, u, now); err == nil {
		if view.WaterML+ml > waterDailyCapML {
			notices = append(notices, "water_daily_limit_notice")
		}
	}
	return notices
}
