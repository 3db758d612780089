package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/common"
)

// Result is the outcome of text acquisition for one file.
type Result struct {
	Text       string
	Pages      int // PDF only; 1 otherwise
	SourceType string // constants.PDF | constants.WORD | constants.TEXT
	Duration   time.Duration
}

type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract picks a strategy based on file extension and produces UTF-8 text.
// An unreadable or corrupt file fails with common.ErrDocumentRead; the
// pipeline aborts rather than producing a partial record. Reading order
// inside a PDF page follows extraction order, which is a known limitation.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("document.extract.start", "path", path, "ext", ext)

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	var err error
	switch constants.MapExtToFormat(ext) {
	case constants.PDF:
		res, err = e.extractPDF(path)
	case constants.WORD:
		res, err = e.extractWord(path)
	case constants.TEXT:
		res, err = e.extractPlain(path)
	default:
		err = fmt.Errorf("unsupported extension: %q", ext)
	}
	if err != nil {
		e.logger.Error("document.extract.failed", "path", path, "error", err)
		return Result{}, fmt.Errorf("%w: %s: %v", common.ErrDocumentRead, path, err)
	}

	res.Duration = time.Since(start)
	e.logger.Info("document.extract.ok",
		"path", path,
		"source_type", res.SourceType,
		"pages", res.Pages,
		"bytes", len(res.Text),
		"elapsed_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) extractPlain(path string) (Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: string(b), Pages: 1, SourceType: constants.TEXT}, nil
}
