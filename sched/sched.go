// Package sched runs the per-user reminder jobs. Every job is keyed by
// (user, kind, variant) and scheduled in the user's own time zone via
// CRON_TZ specs on a single process-wide cron runner.
package sched

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/jurat11/BiteWise-sub000/i18n"
	"github.com/jurat11/BiteWise-sub000/logger"
	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/stats"
	"github.com/jurat11/BiteWise-sub000/store"
	"github.com/jurat11/BiteWise-sub000/transport"
)

type Kind string

const (
	KindWater      Kind = "water"
	KindBreakfast  Kind = "breakfast"
	KindLunch      Kind = "lunch"
	KindDinner     Kind = "dinner"
	KindMotivation Kind = "motivation"
	KindWeekly     Kind = "weekly"
	KindWeight     Kind = "weight"
)

// JobKey identifies one installed job. Variant distinguishes the several
// water slots of a single user.
type JobKey struct {
	UserID  int64
	Kind    Kind
	Variant string
}

// MisfireGrace is how late a firing may run and still deliver.
const MisfireGrace = 120 * time.Second

// waterSuppressWindow: a water reminder is skipped when the user logged
// water within this window before the firing.
const waterSuppressWindow = 2 * time.Hour

type slot struct {
	kind    Kind
	variant string
	hour    int
	minute  int
	weekday int // -1 for daily
	msgKey  string
}

var waterTimes = []struct{ hour, minute int }{
	{8, 0}, {10, 30}, {13, 0}, {15, 30}, {18, 0}, {20, 30},
}

type Scheduler struct {
	cron *cron.Cron
	st   store.Store
	send transport.Sender

	// PromptWeight, when set, flips the user's dialog into the
	// weight-update flow right before the Sunday prompt is sent.
	PromptWeight func(userID int64)

	mu   sync.Mutex
	jobs map[JobKey]cron.EntryID
}

func New(st store.Store, send transport.Sender) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		st:   st,
		send: send,
		jobs: make(map[JobKey]cron.EntryID),
	}
}

func (s *Scheduler) Start() { s.cron.Start() }

func (s *Scheduler) Stop() { s.cron.Stop() }

// InstallAll installs jobs for every registered, active user.
func (s *Scheduler) InstallAll(ctx context.Context) error {
	users, err := s.st.AllUsers(ctx)
	if err != nil {
		return fmt.Errorf("install reminders: %w", err)
	}
	for i := range users {
		if users[i].Inactive {
			continue
		}
		if err := s.Install(&users[i]); err != nil {
			logger.Warn("install reminders failed", zap.Int64("user", users[i].ID), zap.Error(err))
		}
	}
	return nil
}

// Install removes every job of the user and re-installs the default set from
// the current reminder flags and time zone.
func (s *Scheduler) Install(u *models.User) error {
	s.RemoveUser(u.ID)

	for _, sl := range userSlots(u) {
		spec := cronSpec(u.Timezone, sl)
		sl := sl
		id, err := s.cron.AddFunc(spec, func() { s.fire(u.ID, sl) })
		if err != nil {
			return fmt.Errorf("add job %s/%s for %d: %w", sl.kind, sl.variant, u.ID, err)
		}
		s.mu.Lock()
		s.jobs[JobKey{UserID: u.ID, Kind: sl.kind, Variant: sl.variant}] = id
		s.mu.Unlock()
	}
	return nil
}

// RemoveUser deletes every job whose key carries the user id.
func (s *Scheduler) RemoveUser(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, id := range s.jobs {
		if key.UserID == userID {
			s.cron.Remove(id)
			delete(s.jobs, key)
		}
	}
}

// Keys returns the installed job-key set, sorted-free; used by settings
// round-trip checks and tests.
func (s *Scheduler) Keys() []JobKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]JobKey, 0, len(s.jobs))
	for k := range s.jobs {
		keys = append(keys, k)
	}
	return keys
}

// userSlots derives the job set for the user's current flags and goal.
func userSlots(u *models.User) []slot {
	var slots []slot
	if u.Reminders.Water {
		for _, t := range waterTimes {
			slots = append(slots, slot{
				kind:    KindWater,
				variant: fmt.Sprintf("%02d%02d", t.hour, t.minute),
				hour:    t.hour, minute: t.minute,
				weekday: -1,
				msgKey:  "reminder_water",
			})
		}
	}
	if u.Reminders.Meal {
		if u.Reminders.Breakfast {
			slots = append(slots, slot{kind: KindBreakfast, hour: 8, minute: 30, weekday: -1, msgKey: "reminder_breakfast"})
		}
		if u.Reminders.Lunch {
			slots = append(slots, slot{kind: KindLunch, hour: 13, minute: 0, weekday: -1, msgKey: "reminder_lunch"})
		}
		if u.Reminders.Dinner {
			slots = append(slots, slot{kind: KindDinner, hour: 19, minute: 0, weekday: -1, msgKey: "reminder_dinner"})
		}
	}
	if u.Reminders.Motivational {
		slots = append(slots, slot{kind: KindMotivation, hour: 21, minute: 0, weekday: -1, msgKey: "motivation_daily"})
	}
	slots = append(slots, slot{kind: KindWeekly, hour: 20, minute: 0, weekday: 0})
	if u.Goal == models.GoalLoseWeight {
		slots = append(slots, slot{kind: KindWeight, hour: 18, minute: 0, weekday: 0, msgKey: "weight_prompt"})
	}
	return slots
}

func cronSpec(tz string, sl slot) string {
	dow := "*"
	if sl.weekday >= 0 {
		dow = strconv.Itoa(sl.weekday)
	}
	return fmt.Sprintf("CRON_TZ=%s %d %d * * %s", tz, sl.minute, sl.hour, dow)
}

// fire delivers one scheduled message. The user is re-read so flag changes,
// deactivation and language switches take effect without a rebuild.
func (s *Scheduler) fire(userID int64, sl slot) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	u, err := s.st.GetUser(ctx, userID)
	if err != nil {
		logger.Warn("reminder: user load failed", zap.Int64("user", userID), zap.Error(err))
		return
	}
	if u.Inactive {
		return
	}

	now := time.Now()
	if !WithinGrace(sl.hour, sl.minute, now, u.Location()) {
		logger.Warn("reminder misfired beyond grace, dropped",
			zap.Int64("user", userID), zap.String("kind", string(sl.kind)))
		return
	}

	if sl.kind == KindWater {
		recent, err := s.WaterLoggedRecently(ctx, userID, now)
		if err != nil {
			logger.Warn("water suppression check failed", zap.Int64("user", userID), zap.Error(err))
		} else if recent {
			return
		}
	}

	var text string
	switch sl.kind {
	case KindWeekly:
		week, err := stats.Week(ctx, s.st, u, now)
		if err != nil {
			logger.Warn("weekly summary failed", zap.Int64("user", userID), zap.Error(err))
			return
		}
		text = i18n.T(u.Language, "weekly_summary",
			"meals", strconv.Itoa(week.Meals),
			"avg_calories", strconv.Itoa(week.AvgCalories),
			"water", strconv.Itoa(week.WaterML))
	case KindWeight:
		if s.PromptWeight != nil {
			s.PromptWeight(userID)
		}
		text = i18n.T(u.Language, sl.msgKey)
	default:
		text = i18n.T(u.Language, sl.msgKey)
	}

	if err := s.send.Send(userID, text); err != nil {
		if errors.Is(err, transport.ErrChatGone) {
			logger.Info("chat gone, deactivating user", zap.Int64("user", userID))
			if err := s.st.PatchUser(ctx, userID, map[string]any{"inactive": true}); err != nil {
				logger.Warn("deactivate failed", zap.Int64("user", userID), zap.Error(err))
			}
			s.RemoveUser(userID)
			return
		}
		logger.Warn("reminder send failed", zap.Int64("user", userID), zap.Error(err))
	}
}

// WithinGrace reports whether now is no more than MisfireGrace past the
// slot's clock time in the given zone.
func WithinGrace(hour, minute int, now time.Time, loc *time.Location) bool {
	local := now.In(loc)
	expected := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	lag := local.Sub(expected)
	return lag >= 0 && lag <= MisfireGrace
}

// WaterLoggedRecently reports whether the user logged any water inside the
// suppression window ending at now.
func (s *Scheduler) WaterLoggedRecently(ctx context.Context, userID int64, now time.Time) (bool, error) {
	evs, err := s.st.WaterBetween(ctx, userID, now.Add(-waterSuppressWindow), now)
	if err != nil {
		return false, err
	}
	return len(evs) > 0, nil
}
