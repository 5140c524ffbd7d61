package search

import "time"

// Service holds the search box state and debounces re-evaluation.
// Every keystroke bumps a sequence number; only the timer carrying the
// latest sequence is allowed to apply the query.
type Service struct {
	state *State
	delay time.Duration
}

// NewService creates a new search service
func NewService(delay time.Duration) *Service {
	return &Service{
		state: &State{},
		delay: delay,
	}
}

// Delay returns the quiet period before a typed query is applied
func (s *Service) Delay() time.Duration {
	return s.delay
}

// Input records the live value of the search box and returns the sequence
// number the pending debounce timer must carry
func (s *Service) Input(query string) int {
	s.state.Input = query
	s.state.Seq++
	return s.state.Seq
}

// Due reports whether a debounce timer with seq is still the latest one
func (s *Service) Due(seq int) bool {
	return seq == s.state.Seq
}

// Apply commits the live input as the active query and cancels any pending
// timer. It reports whether the active query changed.
func (s *Service) Apply() bool {
	s.state.Seq++
	changed := s.state.Applied != s.state.Input
	s.state.Applied = s.state.Input
	return changed
}

// Clear empties both the input and the active query
func (s *Service) Clear() bool {
	s.state.Input = ""
	return s.Apply()
}

// Value returns the live search box value
func (s *Service) Value() string {
	return s.state.Input
}

// Query returns the active query the rows are filtered by
func (s *Service) Query() string {
	return s.state.Applied
}
