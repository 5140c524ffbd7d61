package logic

import (
	"strings"

	"adminctl/internal/domain"
)

// FilterState is the current search term and type filter.
// An empty Type means any type.
type FilterState struct {
	Query string
	Type  string
}

// IsActive reports whether the filter constrains anything
func (f FilterState) IsActive() bool {
	return f.Query != "" || f.Type != ""
}

// Matches reports whether a row passes both predicates
func (f FilterState) Matches(row domain.Row) bool {
	return MatchesQuery(row, f.Query) && MatchesType(row, f.Type)
}

// MatchesQuery is a case-insensitive substring match against the row's full text
func MatchesQuery(row domain.Row, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(row.Text()), strings.ToLower(query))
}

// MatchesType is a case-insensitive exact match against the row's type cell
func MatchesType(row domain.Row, typ string) bool {
	if typ == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(row.Type), strings.TrimSpace(typ))
}

// VisibleRows returns the rows that pass the filter, preserving order
func VisibleRows(rows []domain.Row, f FilterState) []domain.Row {
	visible := make([]domain.Row, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

// KnownTypes merges the configured types with the types present in rows,
// keeping configured order first and deduplicating case-insensitively.
func KnownTypes(configured []string, rows []domain.Row) []string {
	seen := make(map[string]bool)
	var out []string
	add := func(t string) {
		t = strings.TrimSpace(t)
		key := strings.ToLower(t)
		if t == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, t)
	}
	for _, t := range configured {
		add(t)
	}
	for _, r := range rows {
		add(r.Type)
	}
	return out
}
