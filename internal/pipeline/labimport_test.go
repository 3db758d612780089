package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tykimikk/ndash-extract/constants"
	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/llm"
	"github.com/tykimikk/ndash-extract/internal/record"
	"github.com/tykimikk/ndash-extract/internal/repository"
)

// stubLabExtractor returns one scripted result per chunk, in call order.
type stubLabExtractor struct {
	perChunk []func() ([]llm.LabTestFields, error)
	calls    int
}

func (s *stubLabExtractor) ExtractLabTests(ctx context.Context, chunk string) ([]llm.LabTestFields, error) {
	i := s.calls
	s.calls++
	if i >= len(s.perChunk) {
		return nil, nil
	}
	return s.perChunk[i]()
}

type failingLabRepo struct {
	repository.LabResultRepository
	failName string
}

func (f *failingLabRepo) CreateLabResult(ctx context.Context, lr *record.LabResult) error {
	if lr.TestName == f.failName {
		return errors.New("constraint violation")
	}
	return f.LabResultRepository.CreateLabResult(ctx, lr)
}

func newTestLabRepo(t *testing.T) repository.LabResultRepository {
	t.Helper()
	db, err := repository.OpenSQLite(":memory:", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repository.Migrate(context.Background(), db))
	return repository.NewLabResultRepository(db, nil)
}

func writeReport(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))
	return path
}

func TestImportLabReportHappyPath(t *testing.T) {
	repo := newTestLabRepo(t)
	engine := &stubLabExtractor{perChunk: []func() ([]llm.LabTestFields, error){
		func() ([]llm.LabTestFields, error) {
			return []llm.LabTestFields{
				{TestName: "Hemoglobin", Category: "CBC", Result: "11.2", Unit: "g/dL",
					ReferenceRange: "12-16", TestDate: "2024-05-01"},
				{TestName: "Malaria smear", Result: "Negative", Status: "normal",
					TestDate: "2024-05-01"},
			}, nil
		},
	}}
	importer := NewLabImporter(document.NewExtractor(nil), engine, repo, 2000, nil)

	patientID := uuid.New()
	path := writeReport(t, "Hemoglobin 11.2 g/dL (12-16)\nMalaria smear: Negative\n")
	imported, sum, err := importer.ImportLabReport(context.Background(), path, patientID)
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Chunks)
	assert.Equal(t, 2, sum.Candidates)
	assert.Equal(t, 2, sum.Imported)
	assert.Equal(t, 0, sum.Skipped)
	require.Len(t, imported, 2)

	// CBC canonicalizes to Hematology; the below-range value classifies low.
	hb := imported[0]
	assert.Equal(t, constants.Hematology, hb.Category)
	assert.Equal(t, constants.StatusLow, hb.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), hb.TestDate)

	// Qualitative result keeps the supplied status and an Other category.
	smear := imported[1]
	assert.Equal(t, constants.OtherCategory, smear.Category)
	assert.Equal(t, constants.StatusNormal, smear.Status)
	assert.Equal(t, constants.SeverityNormal, smear.Severity)

	// Rows actually landed in the store.
	stored, err := repo.ListByPatient(context.Background(), patientID)
	require.NoError(t, err)
	assert.Len(t, stored, 2)
}

func TestImportLabReportSkipsIncompleteRows(t *testing.T) {
	repo := newTestLabRepo(t)
	engine := &stubLabExtractor{perChunk: []func() ([]llm.LabTestFields, error){
		func() ([]llm.LabTestFields, error) {
			return []llm.LabTestFields{
				{TestName: "", Result: "5", TestDate: "2024-05-01"},             // no name
				{TestName: "WBC", Result: "", TestDate: "2024-05-01"},          // no value
				{TestName: "RBC", Result: "4.7", TestDate: "sometime in May"},  // bad date
				{TestName: "PLT", Result: "250", TestDate: "2024-05-01"},       // keeps
			}, nil
		},
	}}
	importer := NewLabImporter(document.NewExtractor(nil), engine, repo, 2000, nil)

	path := writeReport(t, "irrelevant body\n")
	imported, sum, err := importer.ImportLabReport(context.Background(), path, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Candidates)
	assert.Equal(t, 3, sum.Skipped)
	assert.Equal(t, 1, sum.Imported)
	require.Len(t, imported, 1)
	assert.Equal(t, "PLT", imported[0].TestName)
}

func TestImportLabReportChunkFailureIsolated(t *testing.T) {
	repo := newTestLabRepo(t)
	engine := &stubLabExtractor{perChunk: []func() ([]llm.LabTestFields, error){
		func() ([]llm.LabTestFields, error) { return nil, errors.New("model flaked") },
		func() ([]llm.LabTestFields, error) {
			return []llm.LabTestFields{
				{TestName: "Sodium", Result: "141", ReferenceRange: "135-145", TestDate: "2024-05-02"},
			}, nil
		},
	}}
	importer := NewLabImporter(document.NewExtractor(nil), engine, repo, 2000, nil)

	// Two ~1500-char lines force two chunks under a 2000-char budget.
	text := strings.Repeat("a", 1500) + "\n" + strings.Repeat("b", 1500) + "\n"
	path := writeReport(t, text)
	imported, sum, err := importer.ImportLabReport(context.Background(), path, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2, sum.Chunks)
	assert.Equal(t, 1, sum.FailedChunks)
	assert.Equal(t, 1, sum.Imported)
	require.Len(t, imported, 1)
	assert.Equal(t, constants.StatusNormal, imported[0].Status)
}

func TestImportLabReportPersistFailureIsolated(t *testing.T) {
	repo := &failingLabRepo{LabResultRepository: newTestLabRepo(t), failName: "Potassium"}
	engine := &stubLabExtractor{perChunk: []func() ([]llm.LabTestFields, error){
		func() ([]llm.LabTestFields, error) {
			return []llm.LabTestFields{
				{TestName: "Potassium", Result: "4.1", TestDate: "2024-05-02"},
				{TestName: "Chloride", Result: "101", TestDate: "2024-05-02"},
			}, nil
		},
	}}
	importer := NewLabImporter(document.NewExtractor(nil), engine, repo, 2000, nil)

	path := writeReport(t, "electrolyte panel\n")
	imported, sum, err := importer.ImportLabReport(context.Background(), path, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Failed)
	assert.Equal(t, 1, sum.Imported)
	require.Len(t, imported, 1)
	assert.Equal(t, "Chloride", imported[0].TestName)
}

func TestImportLabReportUnreadableFile(t *testing.T) {
	repo := newTestLabRepo(t)
	engine := &stubLabExtractor{}
	importer := NewLabImporter(document.NewExtractor(nil), engine, repo, 2000, nil)

	_, _, err := importer.ImportLabReport(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 0, engine.calls)
}
