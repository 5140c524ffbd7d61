// Package notify keeps the transient notifications shown at the bottom of the
// list. Notifications coexist; each one expires on its own timer.
package notify

import (
	"time"

	"adminctl/internal/domain"
)

// ExpiredMsg is delivered when a notification's timer fires
type ExpiredMsg struct {
	ID int
}

// Service holds the live notifications
type Service struct {
	ttl    time.Duration
	nextID int
	items  []domain.Notification
	now    func() time.Time
}

// NewService creates a notification service whose entries live for ttl
func NewService(ttl time.Duration) *Service {
	return &Service{ttl: ttl, now: time.Now}
}

// TTL returns how long a notification stays visible
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Post adds a notification and returns it; the caller schedules its expiry
func (s *Service) Post(text string, level domain.Level) domain.Notification {
	s.nextID++
	n := domain.Notification{
		ID:       s.nextID,
		Text:     text,
		Level:    level,
		PostedAt: s.now(),
	}
	s.items = append(s.items, n)
	return n
}

// Expire removes the notification with id. It reports whether it was present.
func (s *Service) Expire(id int) bool {
	for i, n := range s.items {
		if n.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns the live notifications, oldest first
func (s *Service) Active() []domain.Notification {
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}
