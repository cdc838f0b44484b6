// Package dialog is the per-user conversational state machine. State lives
// in process memory only; after a restart every conversation resumes from
// the main menu.
package dialog

import (
	"sync"

	"github.com/jurat11/BiteWise-sub000/models"
)

type State int

const (
	StateIdle State = iota

	// Registration, in order.
	StateRegName
	StateRegAge
	StateRegHeight
	StateRegWeight
	StateRegBodyFat
	StateRegGender
	StateRegTimezone
	StateRegGoal
	StateRegActivity

	// Meal logging.
	StateMealSelectType
	StateMealWaitInput

	// Water logging.
	StateWaterChoose
	StateWaterCustom

	// Settings edits.
	StateEditField

	// Weekly weight check-in.
	StateWeightUpdate
)

// Session is one user's dialog slot.
type Session struct {
	State State
	// Draft accumulates the registration answers until the terminal state
	// commits them.
	Draft models.User
	// MealKind selected in the meal flow.
	MealKind models.MealKind
	// EditField names the profile field being edited in StateEditField.
	EditField string
	// Gen increments on every state change; in-flight analyzer results are
	// discarded when the generation moved on.
	Gen uint64
}

type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Get returns a copy of the user's session; the zero session means idle.
func (m *Manager) Get(userID int64) Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return *s
	}
	return Session{State: StateIdle}
}

// Set stores the session and bumps its generation.
func (m *Manager) Set(userID int64, s Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.sessions[userID]
	if prev != nil {
		s.Gen = prev.Gen + 1
	} else {
		s.Gen++
	}
	m.sessions[userID] = &s
}

// Clear drops the user back to idle. The generation still advances so any
// pending analyzer result for the abandoned dialog is discarded.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev := m.sessions[userID]
	gen := uint64(1)
	if prev != nil {
		gen = prev.Gen + 1
	}
	m.sessions[userID] = &Session{State: StateIdle, Gen: gen}
}

// Gen reports the user's current generation.
func (m *Manager) Gen(userID int64) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s.Gen
	}
	return 0
}

// Active reports whether the user has a non-idle dialog state.
func (m *Manager) Active(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return ok && s.State != StateIdle
}
