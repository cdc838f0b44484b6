package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jurat11/BiteWise-sub000/models"
)

// Memory is the in-process fallback used when no store credential is
// configured, and the fixture store in tests. Everything lives in RAM and is
// lost on restart.
type Memory struct {
	mu      sync.RWMutex
	users   map[int64]models.User
	meals   map[int64][]models.MealRecord
	water   map[int64][]models.WaterEvent
	streaks map[int64]map[string]models.Streak
	badges  map[int64]map[string]bool
}

func NewMemory() *Memory {
	return &Memory{
		users:   make(map[int64]models.User),
		meals:   make(map[int64][]models.MealRecord),
		water:   make(map[int64][]models.WaterEvent),
		streaks: make(map[int64]map[string]models.Streak),
		badges:  make(map[int64]map[string]bool),
	}
}

func (m *Memory) Close(context.Context) error { return nil }

func (m *Memory) GetUser(_ context.Context, id int64) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := u
	return &cp, nil
}

func (m *Memory) PutUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) PatchUser(_ context.Context, id int64, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		switch k {
		case "language":
			if s, ok := v.(models.Language); ok {
				u.Language = s
			} else if s, ok := v.(string); ok {
				u.Language = models.Language(s)
			}
		case "name":
			u.Name, _ = v.(string)
		case "age":
			u.Age, _ = v.(int)
		case "height_cm":
			u.HeightCM = toFloat(v)
		case "weight_kg":
			u.WeightKG = toFloat(v)
		case "gender":
			if s, ok := v.(models.Gender); ok {
				u.Gender = s
			}
		case "timezone":
			u.Timezone, _ = v.(string)
		case "goal":
			if s, ok := v.(models.Goal); ok {
				u.Goal = s
			}
		case "activity":
			if s, ok := v.(models.Activity); ok {
				u.Activity = s
			}
		case "body_fat_pct":
			if f, ok := v.(*float64); ok {
				u.BodyFatPct = f
			}
		case "reminders":
			if r, ok := v.(models.Reminders); ok {
				u.Reminders = r
			}
		case "targets":
			if t, ok := v.(models.DailyTargets); ok {
				u.Targets = t
			}
		case "inactive":
			u.Inactive, _ = v.(bool)
		case "last_active_at":
			if t, ok := v.(time.Time); ok {
				u.LastActiveAt = t
			}
		}
	}
	m.users[id] = u
	return nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

func (m *Memory) AllUsers(context.Context) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (m *Memory) AppendMeal(_ context.Context, rec *models.MealRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meals[rec.UserID] = append(m.meals[rec.UserID], *rec)
	return nil
}

func (m *Memory) AppendWater(_ context.Context, ev *models.WaterEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.water[ev.UserID] = append(m.water[ev.UserID], *ev)
	return nil
}

func (m *Memory) MealsBetween(_ context.Context, userID int64, lo, hi time.Time) ([]models.MealRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.MealRecord
	for _, rec := range m.meals[userID] {
		if !rec.At.Before(lo) && rec.At.Before(hi) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *Memory) WaterBetween(_ context.Context, userID int64, lo, hi time.Time) ([]models.WaterEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []models.WaterEvent
	for _, ev := range m.water[userID] {
		if !ev.At.Before(lo) && ev.At.Before(hi) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *Memory) CountAllMeals(_ context.Context, userID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.meals[userID])), nil
}

func (m *Memory) SumAllWater(_ context.Context, userID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, ev := range m.water[userID] {
		total += int64(ev.AmountML)
	}
	return total, nil
}

func (m *Memory) GetStreak(_ context.Context, userID int64, kind string) (*models.Streak, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.streaks[userID][kind]
	if !ok {
		return nil, ErrNotFound
	}
	cp := s
	return &cp, nil
}

func (m *Memory) PutStreak(_ context.Context, s *models.Streak) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.streaks[s.UserID] == nil {
		m.streaks[s.UserID] = make(map[string]models.Streak)
	}
	m.streaks[s.UserID][s.Kind] = *s
	return nil
}

func (m *Memory) GetBadges(_ context.Context, userID int64) (map[string]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.badges[userID]))
	for k, v := range m.badges[userID] {
		out[k] = v
	}
	return out, nil
}

func (m *Memory) PutBadges(_ context.Context, userID int64, badges map[string]bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make(map[string]bool, len(badges))
	for k, v := range badges {
		cp[k] = v
	}
	m.badges[userID] = cp
	return nil
}
