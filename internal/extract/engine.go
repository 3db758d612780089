package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/common"
	"github.com/tykimikk/ndash-extract/internal/llm"
	"github.com/tykimikk/ndash-extract/internal/retry"
)

// Config holds the engine's attempt schedule and input budget.
type Config struct {
	Attempts       int           // default 3
	AttemptTimeout time.Duration // default 60s, first attempt
	TimeoutStep    time.Duration // default 5s added per subsequent attempt
	CharBudget     int           // default 4000, single-document truncation
	MaxTokens      int           // per-call completion budget
}

// Engine turns raw document text into a partial extracted record. The remote
// model is tried first under the retry schedule; when every attempt fails or
// the result misses both critical fields (name, chief complaint), the engine
// degrades to the deterministic pattern extractor and merges. Past this
// boundary the engine never returns an error for the patient path, so
// callers can rely on always getting a partial record.
type Engine struct {
	client llm.CompletionClient
	cfg    Config
	logger *slog.Logger
}

func NewEngine(client llm.CompletionClient, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 3
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 60 * time.Second
	}
	if cfg.TimeoutStep <= 0 {
		cfg.TimeoutStep = 5 * time.Second
	}
	if cfg.CharBudget <= 0 {
		cfg.CharBudget = 4000
	}
	return &Engine{client: client, cfg: cfg, logger: logger}
}

// ExtractPatient runs the single-document path.
func (e *Engine) ExtractPatient(ctx context.Context, text string) llm.PatientFields {
	start := time.Now()
	text = Truncate(text, e.cfg.CharBudget)

	// One request id spans every retry attempt for this document.
	rid := uuid.NewString()
	ctx = common.WithRequestID(ctx, rid)

	if e.client == nil {
		e.logger.Info("extract.patient.ok",
			"source", "pattern",
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractPatterns(text)
	}

	schema := llm.BuildPatientJSONSchema()
	req := llm.CompletionRequest{
		System:    llm.BuildPatientSystemPrompt(),
		User:      llm.BuildUserPrompt(text, schema),
		MaxTokens: e.cfg.MaxTokens,
	}

	var remote llm.PatientFields
	gotRemote := false
	err := retry.Do(ctx, e.retryConfig(), func(attemptCtx context.Context) error {
		content, err := e.client.Complete(attemptCtx, req)
		if err != nil {
			if retry.IsTimeout(err) {
				return fmt.Errorf("%w: %v", common.ErrExtractionTimeout, err)
			}
			return err
		}
		raw, err := llm.RecoverJSON(content, false)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		if err := llm.ValidateJSONAgainstSchema(schema, raw); err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		var f llm.PatientFields
		if err := json.Unmarshal(raw, &f); err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		remote = f
		gotRemote = true
		return nil
	})

	missingCritical := gotRemote && remote.Name == "" && remote.ChiefComplaint == ""
	if err == nil && !missingCritical {
		e.logger.Info("extract.patient.ok",
			"req_id", rid,
			"source", "remote",
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return remote
	}

	fallback := ExtractPatterns(text)
	if !gotRemote {
		// No attempt produced parseable content; the fallback stands alone.
		e.logger.Warn("extract.patient.fallback",
			"req_id", rid,
			"source", "pattern",
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fallback
	}

	e.logger.Warn("extract.patient.fallback",
		"req_id", rid,
		"source", "merged",
		"missing_critical", missingCritical,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return MergePatientFields(remote, fallback)
}

// ExtractLabTests runs the batch path for one chunk. Unlike the patient
// path there is no deterministic fallback for tabular lab data, so exhausted
// retries surface as an error and the orchestrator skips the chunk.
func (e *Engine) ExtractLabTests(ctx context.Context, chunk string) ([]llm.LabTestFields, error) {
	start := time.Now()
	if e.client == nil {
		return nil, fmt.Errorf("%w: no completion client configured", common.ErrInvalidInput)
	}
	rid := uuid.NewString()
	ctx = common.WithRequestID(ctx, rid)
	allowed := constants.CategoriesAsStrings()
	schema := llm.BuildLabTestArraySchema(allowed)
	req := llm.CompletionRequest{
		System:    llm.BuildLabSystemPrompt(allowed),
		User:      llm.BuildUserPrompt(chunk, schema),
		MaxTokens: e.cfg.MaxTokens,
	}

	var tests []llm.LabTestFields
	err := retry.Do(ctx, e.retryConfig(), func(attemptCtx context.Context) error {
		content, err := e.client.Complete(attemptCtx, req)
		if err != nil {
			if retry.IsTimeout(err) {
				return fmt.Errorf("%w: %v", common.ErrExtractionTimeout, err)
			}
			return err
		}
		raw, err := llm.RecoverJSON(content, true)
		if err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		if err := llm.ValidateJSONAgainstSchema(schema, raw); err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		var out []llm.LabTestFields
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("%w: %v", common.ErrExtractionParse, err)
		}
		tests = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("extract.labs.ok",
		"req_id", rid,
		"tests", len(tests),
		"chunk_len", len(chunk),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return tests, nil
}

func (e *Engine) retryConfig() retry.Config {
	return retry.Config{
		Attempts:    e.cfg.Attempts,
		Timeout:     e.cfg.AttemptTimeout,
		TimeoutStep: e.cfg.TimeoutStep,
	}
}

// Truncate cuts text to at most budget bytes without splitting a rune.
func Truncate(text string, budget int) string {
	if budget <= 0 || len(text) <= budget {
		return text
	}
	cut := budget
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
