package planner

import (
	"sync"

	"mileage-logbook/internal/models"
)

// Store holds every user's in-progress trip draft. All access goes through
// Mutate/View so sequence changes and their derived fields stay consistent;
// nothing outside this type touches a draft directly.
type Store struct {
	mu     sync.Mutex
	drafts map[string]*models.Draft
}

// NewStore creates an empty draft store.
func NewStore() *Store {
	return &Store{drafts: make(map[string]*models.Draft)}
}

func (s *Store) draft(userID string) *models.Draft {
	d, ok := s.drafts[userID]
	if !ok {
		d = &models.Draft{Stops: []models.DraftStop{}, LegDistances: []string{}}
		s.drafts[userID] = d
	}
	return d
}

// Mutate runs fn against the user's draft under the store lock.
func (s *Store) Mutate(userID string, fn func(d *models.Draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.draft(userID))
}

// View returns a copy of the user's draft; callers can't mutate store state
// through it.
func (s *Store) View(userID string) models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.draft(userID)
	cp := *d
	cp.Stops = append([]models.DraftStop{}, d.Stops...)
	cp.LegDistances = append([]string{}, d.LegDistances...)
	return cp
}

// Reset discards the user's draft entirely.
func (s *Store) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, userID)
}
