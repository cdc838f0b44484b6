// Package transport is the outbound contract shared by the scheduler and the
// commit side effects, kept separate from the telegram binding so those
// components can be tested with a fake sender.
package transport

import "errors"

// ErrChatGone reports that the destination chat no longer exists. Senders of
// scheduled messages react by marking the user inactive.
var ErrChatGone = errors.New("transport: chat gone")

type Sender interface {
	Send(userID int64, text string) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(userID int64, text string) error

func (f SenderFunc) Send(userID int64, text string) error {
	return f(userID, text)
}
