package bot

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/store"
)

const handlerTimeout = 30 * time.Second

func (b *Bot) routes() {
	b.tele.Handle("/start", b.onStart)
	b.tele.Handle("/menu", b.onMenu)
	b.tele.Handle("/help", b.onHelp)
	b.tele.Handle("/cancel", b.onCancel)
	b.tele.Handle("/stats", b.requireUser(b.onStats))
	b.tele.Handle("/water", b.requireUser(b.onWater))
	b.tele.Handle("/logmeal", b.requireUser(b.onLogMeal))
	b.tele.Handle("/logfood", b.requireUser(b.onLogMeal))
	b.tele.Handle("/settings", b.requireUser(b.onSettings))
	b.tele.Handle("/admin", b.onAdmin)

	b.tele.Handle(tele.OnText, b.onText)
	b.tele.Handle(tele.OnPhoto, b.onPhoto)

	b.tele.Handle(&tele.Btn{Unique: cbLang}, b.onLangPicked)
	b.tele.Handle(&tele.Btn{Unique: cbSkip}, b.onDialogButton)
	b.tele.Handle(&tele.Btn{Unique: cbGender}, b.onDialogButton)
	b.tele.Handle(&tele.Btn{Unique: cbGoal}, b.onDialogButton)
	b.tele.Handle(&tele.Btn{Unique: cbActivity}, b.onDialogButton)
	b.tele.Handle(&tele.Btn{Unique: cbMealKind}, b.onMealKindPicked)
	b.tele.Handle(&tele.Btn{Unique: cbWater}, b.onWaterPicked)
	b.tele.Handle(&tele.Btn{Unique: cbSettings}, b.onSettingsPicked)
	b.tele.Handle(&tele.Btn{Unique: cbEditField}, b.onEditFieldPicked)
	b.tele.Handle(&tele.Btn{Unique: cbReminder}, b.onReminderToggled)
}

func handlerCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}

// user loads the sender's profile and patches its last-active stamp.
// store.ErrNotFound means the sender has not registered yet.
func (b *Bot) user(ctx context.Context, c tele.Context) (*models.User, error) {
	u, err := b.st.GetUser(ctx, c.Sender().ID)
	if err != nil {
		return nil, err
	}
	if err := b.st.PatchUser(ctx, u.ID, map[string]any{"last_active_at": time.Now().UTC()}); err != nil {
		logger.Warn("patch last active", zap.Int64("user_id", u.ID), zap.Error(err))
	}
	return u, nil
}

// requireUser gates a handler on a committed registration.
func (b *Bot) requireUser(next func(tele.Context, *models.User) error) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx, cancel := handlerCtx()
		defer cancel()
		u, err := b.user(ctx, c)
		if errors.Is(err, store.ErrNotFound) {
			return c.Send(i18n.T(models.LangEN, "not_registered"))
		}
		if err != nil {
			logger.Error("load user", zap.Int64("user_id", c.Sender().ID), zap.Error(err))
			return c.Send(i18n.T(models.LangEN, "try_again"))
		}
		b.sessions.Clear(c.Sender().ID)
		return next(c, u)
	}
}

// onText resolves free text in order: command token, active dialog state,
// localized menu button, help.
func (b *Bot) onText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())
	if cmd, ok := commandToken(text); ok {
		return b.dispatchCommand(c, cmd)
	}

	id := c.Sender().ID
	sess := b.sessions.Get(id)
	if sess.State != dialog.StateIdle {
		return b.handleStateInput(c, sess, text, nil)
	}

	if action, ok := i18n.ButtonAction(text); ok {
		switch action {
		case i18n.ActionLogMeal:
			return b.requireUser(b.onLogMeal)(c)
		case i18n.ActionLogWater:
			return b.requireUser(b.onWater)(c)
		case i18n.ActionStats:
			return b.requireUser(b.onStats)(c)
		case i18n.ActionSettings:
			return b.requireUser(b.onSettings)(c)
		case i18n.ActionHelp:
			return b.onHelp(c)
		}
	}
	return b.onHelp(c)
}

// onPhoto feeds a photo into the meal flow. A photo in the wait-input state
// is analyzed directly, even when a text description was expected.
func (b *Bot) onPhoto(c tele.Context) error {
	id := c.Sender().ID
	sess := b.sessions.Get(id)
	if sess.State != dialog.StateMealWaitInput {
		return b.onHelp(c)
	}

	photo := c.Message().Photo
	if photo == nil {
		return b.onHelp(c)
	}
	data, err := b.downloadPhoto(&photo.File)
	if err != nil {
		logger.Warn("download photo", zap.Int64("user_id", id), zap.Error(err))
		data = nil
	}
	return b.handleStateInput(c, sess, strings.TrimSpace(c.Message().Caption), data)
}

// handleStateInput routes one input to the handler of the active dialog
// state.
func (b *Bot) handleStateInput(c tele.Context, sess dialog.Session, text string, photo []byte) error {
	switch {
	case sess.State >= dialog.StateRegName && sess.State <= dialog.StateRegActivity:
		return b.advanceRegistration(c, sess, text)
	case sess.State == dialog.StateMealSelectType:
		lang := b.langOf(c)
		return c.Send(i18n.T(lang, "choose_meal_type"), mealKindMenu(lang))
	case sess.State == dialog.StateMealWaitInput:
		return b.commitMeal(c, sess, text, photo)
	case sess.State == dialog.StateWaterChoose, sess.State == dialog.StateWaterCustom:
		return b.commitCustomWater(c, text)
	case sess.State == dialog.StateEditField:
		return b.commitProfileEdit(c, sess, text)
	case sess.State == dialog.StateWeightUpdate:
		return b.commitWeightUpdate(c, text)
	}
	b.sessions.Clear(c.Sender().ID)
	return b.onHelp(c)
}

// onDialogButton forwards a callback payload (skip, gender, goal, activity)
// into whatever dialog state is active, exactly as if typed.
func (b *Bot) onDialogButton(c tele.Context) error {
	defer c.Respond(&tele.CallbackResponse{})
	sess := b.sessions.Get(c.Sender().ID)
	if sess.State == dialog.StateIdle {
		return nil
	}
	return b.handleStateInput(c, sess, strings.TrimSpace(c.Data()), nil)
}

func (b *Bot) downloadPhoto(f *tele.File) ([]byte, error) {
	rc, err := b.tele.File(f)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// dispatchCommand handles slash commands arriving through OnText, which is
// how mixed-case forms like /START reach us.
func (b *Bot) dispatchCommand(c tele.Context, cmd string) error {
	switch cmd {
	case "/start":
		return b.onStart(c)
	case "/menu":
		return b.onMenu(c)
	case "/help":
		return b.onHelp(c)
	case "/cancel":
		return b.onCancel(c)
	case "/stats":
		return b.requireUser(b.onStats)(c)
	case "/water":
		return b.requireUser(b.onWater)(c)
	case "/logmeal", "/logfood":
		return b.requireUser(b.onLogMeal)(c)
	case "/settings":
		return b.requireUser(b.onSettings)(c)
	case "/admin":
		return b.onAdmin(c)
	}
	return b.onHelp(c)
}

// commandToken extracts a lower-cased command from "/Cmd@BotName args".
func commandToken(text string) (string, bool) {
	if !strings.HasPrefix(text, "/") {
		return "", false
	}
	cmd, _, _ := strings.Cut(text, " ")
	cmd, _, _ = strings.Cut(cmd, "@")
	return strings.ToLower(cmd), true
}

// langOf resolves the reply language: profile first, then any in-flight
// registration draft, then English.
func (b *Bot) langOf(c tele.Context) models.Language {
	ctx, cancel := handlerCtx()
	defer cancel()
	if u, err := b.st.GetUser(ctx, c.Sender().ID); err == nil {
		return u.Language
	}
	sess := b.sessions.Get(c.Sender().ID)
	if sess.Draft.Language.Valid() {
		return sess.Draft.Language
	}
	return models.LangEN
}
