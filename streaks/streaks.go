// Package streaks maintains the consecutive-day logging counters and the
// one-shot badges awarded from them.
package streaks

import (
	"context"
	"fmt"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
	"github.com/jurat11/BiteWise-sub000/store"
)

const dateLayout = "2006-01-02"

// Event is a user-visible side effect of a commit: a streak milestone or a
// badge award. The caller localizes and sends it.
type Event struct {
	// MsgKey is the i18n key: streak_water, streak_meal, badge_*.
	MsgKey string
	Count  int
}

type Updater struct {
	store store.Store
}

func NewUpdater(st store.Store) *Updater {
	return &Updater{store: st}
}

// Update credits one logging day of the given kind. The calendar day is
// taken in the user's own time zone. Rules: same day is a no-op, yesterday
// increments, any gap resets to 1. Streak messages fire only when the count
// increased and reached at least 2; badges fire exactly once.
func (u *Updater) Update(ctx context.Context, user *models.User, kind string, now time.Time) ([]Event, error) {
	today := now.In(user.Location()).Format(dateLayout)

	s, err := u.store.GetStreak(ctx, user.ID, kind)
	if err == store.ErrNotFound {
		s = &models.Streak{UserID: user.ID, Kind: kind}
	} else if err != nil {
		return nil, fmt.Errorf("load %s streak: %w", kind, err)
	}

	if s.LastDate == today {
		return u.badgeEvents(ctx, user, kind, s.Count)
	}

	increased := false
	if s.LastDate == yesterdayOf(today, user.Location()) {
		s.Count++
		increased = true
	} else {
		s.Count = 1
	}
	s.LastDate = today

	if err := u.store.PutStreak(ctx, s); err != nil {
		return nil, fmt.Errorf("save %s streak: %w", kind, err)
	}

	var events []Event
	if increased && s.Count >= 2 {
		events = append(events, Event{MsgKey: "streak_" + kind, Count: s.Count})
	}

	badge, err := u.badgeEvents(ctx, user, kind, s.Count)
	if err != nil {
		return events, err
	}
	return append(events, badge...), nil
}

// badgeEvents checks the badge rules for the given kind and awards any not
// yet earned.
func (u *Updater) badgeEvents(ctx context.Context, user *models.User, kind string, streakCount int) ([]Event, error) {
	badges, err := u.store.GetBadges(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}

	var events []Event
	award := func(key string) {
		if !badges[key] {
			badges[key] = true
			events = append(events, Event{MsgKey: "badge_" + key})
		}
	}

	if kind == models.StreakWater && streakCount >= 5 {
		award(models.BadgeWater5Days)
	}
	if kind == models.StreakMeal {
		n, err := u.store.CountAllMeals(ctx, user.ID)
		if err != nil {
			return events, fmt.Errorf("count meals: %w", err)
		}
		if n >= 50 {
			award(models.Badge50Meals)
		}
	}

	if len(events) > 0 {
		if err := u.store.PutBadges(ctx, user.ID, badges); err != nil {
			return nil, fmt.Errorf("save badges: %w", err)
		}
	}
	return events, nil
}

func yesterdayOf(date string, loc *time.Location) string {
	t, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(dateLayout)
}
