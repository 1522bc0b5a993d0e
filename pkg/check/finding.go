package check

import (
	"encoding/json"
	"fmt"
	"strings"
)

// =============================================================================
// Status
// =============================================================================

// Status indicates the outcome of a single check observation.
type Status int

// Status values for findings.
const (
	// StatusOk indicates the check passed.
	StatusOk Status = iota
	// StatusWarn indicates a non-blocking concern.
	StatusWarn
	// StatusErr indicates a blocking failure that affects the exit status.
	StatusErr
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOk:
		return "ok"
	case StatusWarn:
		return "warn"
	case StatusErr:
		return "err"
	default:
		return "unknown"
	}
}

// Glyph returns the single-character marker used in report output.
func (s Status) Glyph() string {
	switch s {
	case StatusOk:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusErr:
		return "✗"
	default:
		return "?"
	}
}

// MarshalJSON encodes the status as its string form.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the string form produced by MarshalJSON.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, ok := ParseStatus(raw)
	if !ok {
		return fmt.Errorf("invalid status %q", raw)
	}
	*s = parsed
	return nil
}

// ParseStatus converts a string to a Status value.
// Returns the status and true if valid, or StatusErr and false if invalid.
func ParseStatus(s string) (Status, bool) {
	switch strings.ToLower(s) {
	case "ok":
		return StatusOk, true
	case "warn":
		return StatusWarn, true
	case "err":
		return StatusErr, true
	default:
		return StatusErr, false
	}
}

// =============================================================================
// Finding
// =============================================================================

// Finding is one reported observation. It is immutable once created: rules
// build findings and hand them to the sink, nothing mutates them afterwards.
type Finding struct {
	Status  Status   `json:"status"`
	RuleID  string   `json:"rule_id"`
	File    string   `json:"file,omitempty"`
	Line    int      `json:"line,omitempty"`
	Message string   `json:"message"`
	Context []string `json:"context,omitempty"`
}

// Ok creates a passing finding.
func Ok(ruleID, format string, args ...any) Finding {
	return Finding{Status: StatusOk, RuleID: ruleID, Message: fmt.Sprintf(format, args...)}
}

// Warn creates a non-blocking finding.
func Warn(ruleID, format string, args ...any) Finding {
	return Finding{Status: StatusWarn, RuleID: ruleID, Message: fmt.Sprintf(format, args...)}
}

// Err creates a blocking finding.
func Err(ruleID, format string, args ...any) Finding {
	return Finding{Status: StatusErr, RuleID: ruleID, Message: fmt.Sprintf(format, args...)}
}

// ErrAt creates a blocking finding anchored to a file and line.
func ErrAt(ruleID, file string, line int, format string, args ...any) Finding {
	return Finding{Status: StatusErr, RuleID: ruleID, File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}

// String renders the finding as a single human-readable line. Line-level
// findings carry their location; context lines are appended indented.
func (f Finding) String() string {
	var b strings.Builder
	b.WriteString(f.Status.Glyph())
	b.WriteString(" ")
	if f.File != "" {
		b.WriteString(f.File)
		if f.Line > 0 {
			fmt.Fprintf(&b, ":%d", f.Line)
		}
		b.WriteString(" ")
	}
	b.WriteString(f.Message)
	for _, line := range f.Context {
		b.WriteString("\n    ")
		b.WriteString(line)
	}
	return b.String()
}

// =============================================================================
// Sink and Report
// =============================================================================

// Sink accumulates findings for the lifetime of a run. It is append-only;
// there is no concurrent writer, so no locking is needed.
type Sink struct {
	findings []Finding
}

// Add appends findings to the sink.
func (s *Sink) Add(findings ...Finding) {
	s.findings = append(s.findings, findings...)
}

// Findings returns all accumulated findings in insertion order.
func (s *Sink) Findings() []Finding {
	return s.findings
}

// Report folds the accumulated findings into status counts. It is always
// recomputed from the finding sequence, never mutated independently.
func (s *Sink) Report() Report {
	var r Report
	for _, f := range s.findings {
		switch f.Status {
		case StatusOk:
			r.Ok++
		case StatusWarn:
			r.Warn++
		case StatusErr:
			r.Err++
		}
	}
	return r
}

// Report holds the aggregated counts for a run.
type Report struct {
	Ok   int `json:"ok"`
	Warn int `json:"warn"`
	Err  int `json:"err"`
}

// ExitCode returns the process exit status for the report: 1 iff any
// blocking finding was recorded, regardless of warnings.
func (r Report) ExitCode() int {
	if r.Err > 0 {
		return 1
	}
	return 0
}

// String returns the one-line run summary.
func (r Report) String() string {
	return fmt.Sprintf("✓ %d passed  ⚠ %d warnings  ✗ %d errors", r.Ok, r.Warn, r.Err)
}
