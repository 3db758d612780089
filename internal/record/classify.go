package record

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tykimikk/ndash-extract/constants"
)

var reRange = regexp.MustCompile(`(\d+(\.\d+)?)\s*-\s*(\d+(\.\d+)?)`)

// CanClassify reports whether Classify has a numeric value and a parseable
// interval to work with. When it returns false the caller falls back to
// whatever status the extraction supplied (defaulting to normal).
func CanClassify(value, referenceRange string) bool {
	if _, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err != nil {
		return false
	}
	m := reRange.FindStringSubmatch(referenceRange)
	if m == nil {
		return false
	}
	min, err1 := strconv.ParseFloat(m[1], 64)
	max, err2 := strconv.ParseFloat(m[3], 64)
	return err1 == nil && err2 == nil && min <= max
}

// Classify derives status and severity for a lab result from its value and
// free-text reference range. Non-numeric values and unparsable ranges
// classify as normal/normal: qualitative results ("Positive", "Trace") carry
// no interval to compare against.
//
// For out-of-range values the fractional deviation is the distance outside
// [min,max] divided by the range width: up to 0.2 stays severity normal, up
// to 0.5 (inclusive) is warning, beyond that critical. A zero-width range
// treats any deviation as critical.
func Classify(value, referenceRange string) (constants.ResultStatus, constants.ResultSeverity) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return constants.StatusNormal, constants.SeverityNormal
	}

	m := reRange.FindStringSubmatch(referenceRange)
	if m == nil {
		return constants.StatusNormal, constants.SeverityNormal
	}
	min, err1 := strconv.ParseFloat(m[1], 64)
	max, err2 := strconv.ParseFloat(m[3], 64)
	if err1 != nil || err2 != nil || min > max {
		return constants.StatusNormal, constants.SeverityNormal
	}

	// inclusive bounds
	if v >= min && v <= max {
		return constants.StatusNormal, constants.SeverityNormal
	}

	status := constants.StatusHigh
	distance := v - max
	if v < min {
		status = constants.StatusLow
		distance = min - v
	}

	width := max - min
	if width == 0 {
		return status, constants.SeverityCritical
	}

	deviation := distance / width
	switch {
	case deviation <= 0.2:
		return status, constants.SeverityNormal
	case deviation <= 0.5:
		return status, constants.SeverityWarning
	default:
		return status, constants.SeverityCritical
	}
}
