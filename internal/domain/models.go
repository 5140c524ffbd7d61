package domain

import (
	"strings"
	"time"
)

// Row statuses understood by the status toggle
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Row represents one listed record (an application or an opportunity)
type Row struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	Owner     string    `json:"owner"` // company for opportunities, applicant for applications
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Text returns the row's full visible text, which free-text search matches against
func (r Row) Text() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{r.Title, r.Type, r.Owner, r.Status} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// IsActive reports whether the row's status is active
func (r Row) IsActive() bool {
	return strings.EqualFold(r.Status, StatusActive)
}

// ToggledStatus returns the status a toggle moves the row to.
// Anything that is not active becomes active.
func (r Row) ToggledStatus() string {
	if r.IsActive() {
		return StatusInactive
	}
	return StatusActive
}

// Level is a notification severity
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a transient message shown to the user
type Notification struct {
	ID       int
	Text     string
	Level    Level
	PostedAt time.Time
}

// Resource describes which admin list is being managed
type Resource struct {
	Name   string // "applications" or "opportunities"
	Noun   string // singular noun used in prompts
	Plural string
}

// Known resources
var (
	Applications  = Resource{Name: "applications", Noun: "application", Plural: "applications"}
	Opportunities = Resource{Name: "opportunities", Noun: "opportunity", Plural: "opportunities"}
)

// ResourceByName looks up a known resource
func ResourceByName(name string) (Resource, bool) {
	switch strings.ToLower(name) {
	case Applications.Name, "application":
		return Applications, true
	case Opportunities.Name, "opportunity":
		return Opportunities, true
	}
	return Resource{}, false
}
