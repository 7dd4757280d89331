package model

// ControlResult reports the outcome of a lifecycle or configuration
// request. Misuse (double start, stopping an idle engine) is a
// non-error outcome, not a Go error.
type ControlResult struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	IntervalMs int     `json:"interval_ms,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"` // percent, set by threshold updates
}
