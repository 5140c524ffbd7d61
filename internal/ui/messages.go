package ui

// detailsPagerMsg contains the result of a details pager command
type detailsPagerMsg struct {
	id  string
	err error
}

// tickMsg is sent on a timer while a load is in flight to animate the spinner
type tickMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
