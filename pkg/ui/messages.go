package ui

// Message types for TUI updates

// SubmittedMsg carries the result of reporting the confirmed record.
type SubmittedMsg struct {
	Err error
}

// AssetsChangedMsg is sent when the set of existing assets has been reloaded.
type AssetsChangedMsg struct {
	Count int
}

// ErrorMsg is sent when a background error occurs.
type ErrorMsg struct {
	Error error
}
