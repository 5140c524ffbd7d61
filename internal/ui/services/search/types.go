package search

// State holds search state
type State struct {
	Input   string // live search box value
	Applied string // query the rows are currently filtered by
	Seq     int    // latest debounce sequence
}

// DebounceMsg is delivered when a search debounce timer fires
type DebounceMsg struct {
	Seq int
}
