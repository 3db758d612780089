package record

import (
	"time"

	"github.com/google/uuid"

	"github.com/tykimikk/ndash-extract/constants"
)

// LabResult is one persisted lab test for a patient. Lifecycle is
// create-once, user-editable, delete-by-id; re-importing a report creates
// new rows rather than deduplicating.
type LabResult struct {
	ID             uuid.UUID               `json:"id"`
	PatientID      uuid.UUID               `json:"patient_id"`
	TestName       string                  `json:"test_name"`
	Category       constants.LabCategory   `json:"category"`
	Result         string                  `json:"result"` // numeric or qualitative
	Unit           string                  `json:"unit"`
	ReferenceRange string                  `json:"reference_range"` // free text, may encode "min-max"
	Status         constants.ResultStatus  `json:"status"`
	Severity       constants.ResultSeverity `json:"severity"`
	TestDate       time.Time               `json:"test_date"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}
