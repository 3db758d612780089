package constants

import "strings"

// ResultStatus is the canonical status for a lab result relative to its
// reference range.
type ResultStatus string

// Stable values (store these exact strings in DB).
const (
	StatusNormal   ResultStatus = "normal"
	StatusHigh     ResultStatus = "high"
	StatusLow      ResultStatus = "low"
	StatusCritical ResultStatus = "critical"
)

// ResultSeverity grades how far a result sits outside its reference range.
type ResultSeverity string

const (
	SeverityNormal   ResultSeverity = "normal"
	SeverityWarning  ResultSeverity = "warning"
	SeverityCritical ResultSeverity = "critical"
)

// ParseStatus maps a free-form status label onto the canonical set,
// defaulting to normal.
func ParseStatus(s string) ResultStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "elevated", "h":
		return StatusHigh
	case "low", "decreased", "l":
		return StatusLow
	case "critical", "panic":
		return StatusCritical
	default:
		return StatusNormal
	}
}

// ParseSeverity maps a free-form severity label onto the canonical set,
// defaulting to normal.
func ParseSeverity(s string) ResultSeverity {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "warning", "abnormal", "moderate":
		return SeverityWarning
	case "critical", "severe":
		return SeverityCritical
	default:
		return SeverityNormal
	}
}
