// Package data holds the planner's entity collections on top of the
// persisted store. Each collection lives under its own storage key and is
// replaced wholesale on every mutation: add/update/delete all compute a
// new full list and write it back. Collections are small, so this trades
// efficiency for simplicity.
package data

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sskrishnan03/krishnan-study-planner/app/store"
)

// Storage keys, one per independently persisted slice of state.
const (
	subjectsKey    = "subjects"
	assignmentsKey = "assignments"
	flashcardsKey  = "flashcards"
	timetableKey   = "timetable"
	darkModeKey    = "darkMode"
	pomodoroKey    = "pomodoro"
)

// Repository exposes the planner's collections. The mutex makes every
// read-modify-write mutation one synchronous step, so concurrent handlers
// cannot tear a collection.
type Repository struct {
	mu    sync.Mutex
	store *store.Store
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// NewID returns a fresh entity id. Random UUIDs keep ids unique even for
// entities created within the same clock tick.
func NewID() string {
	return uuid.NewString()
}
