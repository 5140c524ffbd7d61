package logic

import (
	"sort"
	"strings"

	"adminctl/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByCreated SortMode = iota // newest first; rows without created_at last, by title
	SortByTitle
	SortByType
	SortByStatus
)

var sortModeNames = map[SortMode]string{
	SortByCreated: "created",
	SortByTitle:   "title",
	SortByType:    "type",
	SortByStatus:  "status",
}

func (m SortMode) String() string {
	return sortModeNames[m]
}

// Next cycles to the following sort mode
func (m SortMode) Next() SortMode {
	return (m + 1) % SortMode(len(sortModeNames))
}

// SortRows sorts rows in place. Ties fall back to title, then id, so the
// order is stable across reloads.
func SortRows(rows []domain.Row, mode SortMode) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch mode {
		case SortByCreated:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		case SortByType:
			if ta, tb := strings.ToLower(a.Type), strings.ToLower(b.Type); ta != tb {
				return ta < tb
			}
		case SortByStatus:
			// Active rows first
			if a.IsActive() != b.IsActive() {
				return a.IsActive()
			}
			if sa, sb := strings.ToLower(a.Status), strings.ToLower(b.Status); sa != sb {
				return sa < sb
			}
		}
		if ta, tb := strings.ToLower(a.Title), strings.ToLower(b.Title); ta != tb {
			return ta < tb
		}
		return a.ID < b.ID
	})
}
