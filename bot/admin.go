package bot

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
)

// onAdmin broadcasts "/admin <text>" to every active user. Silently behaves
// like an unknown command for everyone but the configured admin.
func (b *Bot) onAdmin(c tele.Context) error {
	if b.adminID == 0 || c.Sender().ID != b.adminID {
		return b.onHelp(c)
	}

	_, text, _ := strings.Cut(strings.TrimSpace(c.Text()), " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return b.onHelp(c)
	}

	ctx, cancel := handlerCtx()
	defer cancel()
	users, err := b.st.AllUsers(ctx)
	if err != nil {
		logger.Error("broadcast user list", zap.Error(err))
		return c.Send(i18n.T(b.langOf(c), "try_again"))
	}

	sent := 0
	for _, u := range users {
		if u.Inactive {
			continue
		}
		if err := b.Send(u.ID, text); err != nil {
			logger.Warn("broadcast send", zap.Int64("user_id", u.ID), zap.Error(err))
			continue
		}
		sent++
	}
	return c.Send(i18n.T(b.langOf(c), "broadcast_done", "count", fmt.Sprint(sent)))
}
