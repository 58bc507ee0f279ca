package lineage

import "strings"

// Severity indicates how serious an impact or anomaly finding is.
type Severity int

// Severity levels, ordered from least to most severe.
const (
	// SeverityLow indicates minimal or informational impact.
	SeverityLow Severity = iota
	// SeverityMedium indicates impact that should be reviewed.
	SeverityMedium
	// SeverityHigh indicates impact requiring coordination before proceeding.
	SeverityHigh
	// SeverityCritical indicates impact that may break downstream consumers.
	SeverityCritical
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a string to a Severity value.
// Returns the severity and true if valid, or SeverityLow and false if invalid.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityLow, false
	}
}

// MarshalJSON renders the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Max returns the more severe of s and other.
func (s Severity) Max(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}
