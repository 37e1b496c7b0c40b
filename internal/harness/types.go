package harness

import "github.com/roach88/longrun/internal/runs"

// Trace event types.
const (
	EventRun    = "run"    // a maximal run found during the scan
	EventResult = "result" // the run chosen as longest
)

// TraceEvent records one step of a scenario execution.
type TraceEvent struct {
	Type     string `json:"type"`
	Start    int    `json:"start"`
	Len      int    `json:"length"`
	Elements []int  `json:"elements,omitempty"`
	Seq      int64  `json:"seq"`
}

// Canonical implements canonical.Canonicaler.
func (e TraceEvent) Canonical() any {
	m := map[string]any{
		"type":   e.Type,
		"start":  e.Start,
		"length": e.Len,
		"seq":    e.Seq,
	}
	if e.Elements != nil {
		m["elements"] = e.Elements
	}
	return m
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true if the output matched expect, every check held and every
	// property check succeeded.
	Pass bool `json:"pass"`

	// Output is the run returned by runs.Longest.
	Output []int `json:"output"`

	// Span locates Output inside the scenario input.
	Span runs.Span `json:"span"`

	// Trace contains every maximal run followed by the chosen result.
	Trace []TraceEvent `json:"trace"`

	// Errors contains failure messages. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Output: []int{},
		Trace:  []TraceEvent{},
		Errors: []string{},
	}
}

// AddError adds a failure message and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

// AddRunTrace records a maximal run.
func (r *Result) AddRunTrace(span runs.Span, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:  EventRun,
		Start: span.Start,
		Len:   span.Len,
		Seq:   seq,
	})
}

// AddResultTrace records the chosen run and its elements.
func (r *Result) AddResultTrace(span runs.Span, elements []int, seq int64) {
	r.Trace = append(r.Trace, TraceEvent{
		Type:     EventResult,
		Start:    span.Start,
		Len:      span.Len,
		Elements: elements,
		Seq:      seq,
	})
}
