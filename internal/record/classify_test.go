package record

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tykimikk/ndash-extract/constants"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		rng      string
		status   constants.ResultStatus
		severity constants.ResultSeverity
	}{
		{"inside range", "15", "10-20", constants.StatusNormal, constants.SeverityNormal},
		{"at lower bound", "10", "10-20", constants.StatusNormal, constants.SeverityNormal},
		{"at upper bound", "20", "10-20", constants.StatusNormal, constants.SeverityNormal},
		{"slightly high", "21", "10-20", constants.StatusHigh, constants.SeverityNormal},
		{"high warning boundary", "25", "10-20", constants.StatusHigh, constants.SeverityWarning},
		{"far high", "100", "10-20", constants.StatusHigh, constants.SeverityCritical},
		{"slightly low", "9.5", "10-20", constants.StatusLow, constants.SeverityNormal},
		{"far low", "1", "10-20", constants.StatusLow, constants.SeverityCritical},
		{"decimal range", "5.8", "3.5-5.5", constants.StatusHigh, constants.SeverityNormal},
		{"annotated range text", "150", "Ref: 50-100 mg/dL", constants.StatusHigh, constants.SeverityCritical},
		{"qualitative value", "Positive", "Negative", constants.StatusNormal, constants.SeverityNormal},
		{"no range", "42", "", constants.StatusNormal, constants.SeverityNormal},
		{"garbage range", "42", "see note", constants.StatusNormal, constants.SeverityNormal},
		{"zero width range above", "7.5", "7-7", constants.StatusHigh, constants.SeverityCritical},
		{"zero width range below", "6", "7-7", constants.StatusLow, constants.SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, severity := Classify(tt.value, tt.rng)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.severity, severity)
		})
	}
}

func TestCanClassify(t *testing.T) {
	assert.True(t, CanClassify("12", "10-20"))
	assert.True(t, CanClassify(" 4.5 ", "3.5-5.5 mmol/L"))
	assert.False(t, CanClassify("Positive", "10-20"))
	assert.False(t, CanClassify("12", ""))
	assert.False(t, CanClassify("12", "negative"))
}
