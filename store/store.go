// Package store is the persistence adapter. Mongo is the real backend; the
// Memory implementation backs the degraded mode the bot falls into when no
// usable store credential is configured.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
)

var (
	ErrNotFound    = errors.New("store: not found")
	ErrUnavailable = errors.New("store: unavailable")
)

type Store interface {
	GetUser(ctx context.Context, id int64) (*models.User, error)
	PutUser(ctx context.Context, u *models.User) error
	PatchUser(ctx context.Context, id int64, fields map[string]any) error
	AllUsers(ctx context.Context) ([]models.User, error)

	AppendMeal(ctx context.Context, m *models.MealRecord) error
	AppendWater(ctx context.Context, w *models.WaterEvent) error
	MealsBetween(ctx context.Context, userID int64, lo, hi time.Time) ([]models.MealRecord, error)
	WaterBetween(ctx context.Context, userID int64, lo, hi time.Time) ([]models.WaterEvent, error)
	CountAllMeals(ctx context.Context, userID int64) (int64, error)
	SumAllWater(ctx context.Context, userID int64) (int64, error)

	GetStreak(ctx context.Context, userID int64, kind string) (*models.Streak, error)
	PutStreak(ctx context.Context, s *models.Streak) error
	GetBadges(ctx context.Context, userID int64) (map[string]bool, error)
	PutBadges(ctx context.Context, userID int64, badges map[string]bool) error

	Close(ctx context.Context) error
}
