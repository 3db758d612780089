package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/llm"
	"github.com/tykimikk/ndash-extract/internal/record"
)

// PatientExtractor produces structured patient fields from raw document text.
type PatientExtractor interface {
	ExtractPatient(ctx context.Context, text string) llm.PatientFields
}

// Processor turns a single admission document into a normalized patient
// record: read the file, extract structured fields, normalize into the
// full record shape. It does not persist anything; the caller decides
// whether the result becomes a new patient or an update.
type Processor struct {
	docs   *document.Extractor
	engine PatientExtractor
	log    *slog.Logger
}

func NewProcessor(docs *document.Extractor, engine PatientExtractor, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{docs: docs, engine: engine, log: logger}
}

// ProcessDocument runs the full extraction pipeline for one document path.
func (p *Processor) ProcessDocument(ctx context.Context, path string) (*record.Patient, error) {
	start := time.Now()
	log := p.log
	// Re-extraction runs carry the target patient id in the context.
	if pid := common.PatientIDFromContext(ctx); pid != "" {
		log = log.With("patient_id", pid)
	}
	log.Info("pipeline.process.start", "path", path)

	res, err := p.docs.Extract(ctx, path)
	if err != nil {
		log.Error("pipeline.process.read_failed", "path", path, "error", err)
		return nil, err
	}

	fields := p.engine.ExtractPatient(ctx, res.Text)
	patient := record.Normalize(fields)

	log.Info("pipeline.process.ok",
		"path", path,
		"source_type", res.SourceType,
		"pages", res.Pages,
		"patient_name", patient.Name,
		"elapsed_ms", time.Since(start).Milliseconds())
	return patient, nil
}
