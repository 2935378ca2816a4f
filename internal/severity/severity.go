// Package severity provides severity level constants for lint findings.
//
// The levels are ordered from most to least severe:
// Error > Warning > Info
package severity

// Severity indicates the severity level of a lint finding.
type Severity int

const (
	// SeverityError indicates a rule violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or recommendation
	// that does not prevent processing but should be addressed.
	SeverityWarning

	// SeverityInfo indicates an informational notice about the document.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}
