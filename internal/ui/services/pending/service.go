// Package pending tracks rows with a backend call in flight so their controls
// can be disabled until the call settles.
package pending

// Service holds the in-flight set
type Service struct {
	rows map[string]bool
	bulk bool
}

// NewService creates an empty in-flight set
func NewService() *Service {
	return &Service{rows: make(map[string]bool)}
}

// Lock marks id as in flight. It returns false if id was already locked.
func (s *Service) Lock(id string) bool {
	if s.rows[id] {
		return false
	}
	s.rows[id] = true
	return true
}

// Unlock releases id
func (s *Service) Unlock(id string) {
	delete(s.rows, id)
}

// IsPending reports whether id has a call in flight
func (s *Service) IsPending(id string) bool {
	return s.rows[id]
}

// LockBulk marks a bulk action as in flight. It returns false if one already is.
func (s *Service) LockBulk() bool {
	if s.bulk {
		return false
	}
	s.bulk = true
	return true
}

// UnlockBulk releases the bulk lock
func (s *Service) UnlockBulk() {
	s.bulk = false
}

// BulkPending reports whether a bulk action is in flight
func (s *Service) BulkPending() bool {
	return s.bulk
}

// Count returns the number of in-flight calls
func (s *Service) Count() int {
	n := len(s.rows)
	if s.bulk {
		n++
	}
	return n
}
