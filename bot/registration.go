package bot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
	"github.com/jurat11/BiteWise-sub000/store"
)

// onStart greets a known user with the menu and puts a new one through the
// language picker that opens registration.
func (b *Bot) onStart(c tele.Context) error {
	id := c.Sender().ID
	b.sessions.Clear(id)

	ctx, cancel := handlerCtx()
	defer cancel()
	u, err := b.st.GetUser(ctx, id)
	if err == nil {
		return c.Send(i18n.T(u.Language, "main_menu"), mainMenu(u.Language))
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Error("load user", zap.Int64("user_id", id), zap.Error(err))
	}
	return c.Send(i18n.T(models.LangEN, "choose_language"), langMenu())
}

func (b *Bot) onMenu(c tele.Context) error {
	b.sessions.Clear(c.Sender().ID)
	lang := b.langOf(c)
	return c.Send(i18n.T(lang, "main_menu"), mainMenu(lang))
}

func (b *Bot) onHelp(c tele.Context) error {
	return c.Send(i18n.T(b.langOf(c), "help"))
}

// onCancel hard-resets the dialog. In-flight analyzer results die with the
// abandoned generation.
func (b *Bot) onCancel(c tele.Context) error {
	b.sessions.Clear(c.Sender().ID)
	lang := b.langOf(c)
	return c.Send(i18n.T(lang, "canceled"), mainMenu(lang))
}

// onLangPicked serves double duty: it changes the language of a registered
// user and opens registration for a new one.
func (b *Bot) onLangPicked(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})

	lang := models.Language(strings.TrimSpace(c.Data()))
	if !lang.Valid() {
		return nil
	}
	id := c.Sender().ID

	ctx, cancel := handlerCtx()
	defer cancel()
	if _, err := b.st.GetUser(ctx, id); err == nil {
		if err := b.st.PatchUser(ctx, id, map[string]any{"language": string(lang)}); err != nil {
			logger.Warn("patch language", zap.Int64("user_id", id), zap.Error(err))
		}
		return c.Send(i18n.T(lang, "language_changed"), mainMenu(lang))
	}

	sess := dialog.Session{State: dialog.StateRegName}
	sess.Draft.ID = id
	sess.Draft.Language = lang
	b.sessions.Set(id, sess)
	return c.Send(i18n.T(lang, "ask_name"))
}

func (b *Bot) advanceRegistration(c tele.Context, sess dialog.Session, input string) error {
	reply := dialog.AdvanceRegistration(&sess, input)
	if reply.Done {
		return b.finishRegistration(c, sess)
	}
	b.sessions.Set(c.Sender().ID, sess)

	lang := sess.Draft.Language
	if kb := keyboardFor(lang, reply.Keyboard); kb != nil {
		return c.Send(i18n.T(lang, reply.Key), kb)
	}
	return c.Send(i18n.T(lang, reply.Key))
}

// finishRegistration commits the draft: targets computed, reminders on by
// default, jobs installed.
func (b *Bot) finishRegistration(c tele.Context, sess dialog.Session) error {
	u := sess.Draft
	u.Targets = nutrition.Requirements(&u)
	u.Reminders = models.DefaultReminders()
	now := time.Now().UTC()
	u.RegisteredAt = now
	u.LastActiveAt = now

	ctx, cancel := handlerCtx()
	defer cancel()
	if err := b.st.PutUser(ctx, &u); err != nil {
		logger.Error("save user", zap.Int64("user_id", u.ID), zap.Error(err))
		return c.Send(i18n.T(u.Language, "try_again"))
	}
	b.sessions.Clear(u.ID)
	b.installJobs(&u)

	msg := i18n.T(u.Language, "registration_done",
		"name", u.Name,
		"calories", fmt.Sprint(u.Targets.Calories),
		"protein", fmt.Sprint(u.Targets.ProteinG),
		"carbs", fmt.Sprint(u.Targets.CarbsG),
		"fat", fmt.Sprint(u.Targets.FatG),
		"water", fmt.Sprint(u.Targets.WaterML),
	)
	return c.Send(msg, mainMenu(u.Language))
}
