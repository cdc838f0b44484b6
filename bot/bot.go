package bot

import (
	"errors"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/dialog"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/nutrition"
	"github.com/jurat11/BiteWise-sub000/photos"
	"github.com/jurat11/BiteWise-sub000/sched"
	"github.com/jurat11/BiteWise-sub000/store"
	"github.com/jurat11/BiteWise-sub000/streaks"
	"github.com/jurat11/BiteWise-sub000/transport"
)

// Deps carries everything the bot needs besides the Telegram token.
type Deps struct {
	Store    store.Store
	Analyzer *nutrition.Analyzer
	Photos   *photos.Store
	AdminID  int64
}

// Bot binds the Telegram transport to the dialog, nutrition and
// scheduling layers.
type Bot struct {
	tele     *tele.Bot
	st       store.Store
	analyzer *nutrition.Analyzer
	photos   *photos.Store
	sessions *dialog.Manager
	sched    *sched.Scheduler
	updater  *streaks.Updater
	adminID  int64
}

func New(token string, deps Deps) (*Bot, error) {
	tb, err := tele.NewBot(tele.Settings{
		Token:     token,
		Poller:    &tele.LongPoller{Timeout: 10 * time.Second},
		ParseMode: tele.ModeHTML,
	})
	if err != nil {
		return nil, err
	}
	b := &Bot{
		tele:     tb,
		st:       deps.Store,
		analyzer: deps.Analyzer,
		photos:   deps.Photos,
		sessions: dialog.NewManager(),
		updater:  streaks.NewUpdater(deps.Store),
		adminID:  deps.AdminID,
	}
	b.routes()
	return b, nil
}

// AttachScheduler wires the reminder scheduler so profile and reminder
// edits can rebuild a user's jobs. Called once at startup, before Start.
func (b *Bot) AttachScheduler(s *sched.Scheduler) { b.sched = s }

func (b *Bot) Start() { b.tele.Start() }
func (b *Bot) Stop()  { b.tele.Stop() }

// Send implements transport.Sender for the scheduler. A chat that
// Telegram reports as gone (blocked, deleted account) is mapped to
// transport.ErrChatGone so the caller can retire the user.
func (b *Bot) Send(userID int64, text string) error {
	_, err := b.tele.Send(&tele.User{ID: userID}, text)
	if err == nil {
		return nil
	}
	if chatGone(err) {
		return transport.ErrChatGone
	}
	return err
}

func chatGone(err error) bool {
	if errors.Is(err, tele.ErrChatNotFound) || errors.Is(err, tele.ErrBlockedByUser) ||
		errors.Is(err, tele.ErrUserIsDeactivated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "chat not found") ||
		strings.Contains(msg, "bot was blocked") ||
		strings.Contains(msg, "user is deactivated")
}

func (b *Bot) installJobs(u *models.User) {
	if b.sched == nil {
		return
	}
	if err := b.sched.Install(u); err != nil {
		logger.Warn("install reminders", zap.Int64("user_id", u.ID), zap.Error(err))
	}
}
