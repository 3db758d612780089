package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/llm"
	"github.com/tykimikk/ndash-extract/internal/record"
	"github.com/tykimikk/ndash-extract/internal/repository"
)

// LabExtractor produces lab test candidates from one chunk of report text.
type LabExtractor interface {
	ExtractLabTests(ctx context.Context, chunk string) ([]llm.LabTestFields, error)
}

// ImportSummary counts what happened to each candidate row during an import.
type ImportSummary struct {
	Chunks       int `json:"chunks"`
	FailedChunks int `json:"failed_chunks"`
	Candidates   int `json:"candidates"`
	Imported     int `json:"imported"`
	Skipped      int `json:"skipped"`
	Failed       int `json:"failed"`
}

// LabImporter ingests a lab report document for a patient: extract text,
// split into line-aligned chunks, extract candidate rows per chunk, then
// filter, classify and persist each row individually. A failing chunk or
// a failing insert never aborts the rest of the import.
type LabImporter struct {
	docs        *document.Extractor
	engine      LabExtractor
	labs        repository.LabResultRepository
	chunkBudget int
	log         *slog.Logger
}

func NewLabImporter(docs *document.Extractor, engine LabExtractor, labs repository.LabResultRepository, chunkBudget int, logger *slog.Logger) *LabImporter {
	if logger == nil {
		logger = slog.Default()
	}
	if chunkBudget <= 0 {
		chunkBudget = 2000
	}
	return &LabImporter{docs: docs, engine: engine, labs: labs, chunkBudget: chunkBudget, log: logger}
}

var labDateLayouts = []string{"2006-01-02", "2006/01/02", "2006.01.02", "01/02/2006"}

// ImportLabReport runs the whole import for one document and one patient.
// The returned records are the rows actually persisted.
func (li *LabImporter) ImportLabReport(ctx context.Context, path string, patientID uuid.UUID) ([]*record.LabResult, ImportSummary, error) {
	start := time.Now()
	var sum ImportSummary

	li.log.Info("labimport.start", "path", path, "patient_id", patientID)

	res, err := li.docs.Extract(ctx, path)
	if err != nil {
		li.log.Error("labimport.read_failed", "path", path, "error", err)
		return nil, sum, err
	}

	chunks := SplitChunks(res.Text, li.chunkBudget)
	sum.Chunks = len(chunks)

	var candidates []llm.LabTestFields
	for i, chunk := range chunks {
		tests, err := li.engine.ExtractLabTests(ctx, chunk)
		if err != nil {
			sum.FailedChunks++
			li.log.Warn("labimport.chunk_failed", "chunk", i+1, "of", len(chunks), "error", err)
			continue
		}
		candidates = append(candidates, tests...)
	}
	sum.Candidates = len(candidates)

	var imported []*record.LabResult
	for _, t := range candidates {
		lr, ok := li.buildRecord(t, patientID)
		if !ok {
			sum.Skipped++
			continue
		}
		if err := li.labs.CreateLabResult(ctx, lr); err != nil {
			sum.Failed++
			li.log.Warn("labimport.persist_failed", "test_name", lr.TestName, "error", err)
			continue
		}
		sum.Imported++
		imported = append(imported, lr)
	}

	li.log.Info("labimport.ok",
		"path", path,
		"patient_id", patientID,
		"chunks", sum.Chunks,
		"failed_chunks", sum.FailedChunks,
		"candidates", sum.Candidates,
		"imported", sum.Imported,
		"skipped", sum.Skipped,
		"failed", sum.Failed,
		"elapsed_ms", time.Since(start).Milliseconds())
	return imported, sum, nil
}

// buildRecord validates and normalizes one extracted row. Rows missing a
// test name, a result value or a test date are not importable.
func (li *LabImporter) buildRecord(t llm.LabTestFields, patientID uuid.UUID) (*record.LabResult, bool) {
	name := strings.TrimSpace(t.TestName)
	value := strings.TrimSpace(t.Result)
	if name == "" || value == "" {
		li.log.Debug("labimport.skip_incomplete", "test_name", name)
		return nil, false
	}

	testDate, ok := parseLabDate(t.TestDate)
	if !ok {
		li.log.Debug("labimport.skip_bad_date", "test_name", name, "test_date", t.TestDate)
		return nil, false
	}

	category, known := constants.CanonicalizeCategory(t.Category)
	if !known {
		category = constants.OtherCategory
	}

	var status constants.ResultStatus
	var severity constants.ResultSeverity
	if record.CanClassify(value, t.ReferenceRange) {
		status, severity = record.Classify(value, t.ReferenceRange)
	} else {
		status = constants.ParseStatus(t.Status)
		severity = constants.ParseSeverity(t.Severity)
	}

	return &record.LabResult{
		PatientID:      patientID,
		TestName:       name,
		Category:       category,
		Result:         value,
		Unit:           strings.TrimSpace(t.Unit),
		ReferenceRange: strings.TrimSpace(t.ReferenceRange),
		Status:         status,
		Severity:       severity,
		TestDate:       testDate,
	}, true
}

func parseLabDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range labDateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
