package pipeline

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tykimikk/ndash-extract/internal/document"
	"github.com/tykimikk/ndash-extract/internal/llm"
)

type stubPatientExtractor struct {
	gotText string
	fields  llm.PatientFields
}

func (s *stubPatientExtractor) ExtractPatient(ctx context.Context, text string) llm.PatientFields {
	s.gotText = text
	return s.fields
}

func TestProcessDocument(t *testing.T) {
	engine := &stubPatientExtractor{fields: llm.PatientFields{
		Name:           "Jane Roe",
		ChiefComplaint: "vertigo",
	}}
	p := NewProcessor(document.NewExtractor(nil), engine, nil)

	path := writeReport(t, "Patient Name: Jane Roe\nChief Complaint: vertigo\n")
	patient, err := p.ProcessDocument(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Patient Name: Jane Roe\nChief Complaint: vertigo\n", engine.gotText)
	assert.Equal(t, "Jane Roe", patient.Name)
	assert.Equal(t, "vertigo", patient.ChiefComplaint)
	// Output is always fully scaffolded.
	assert.Equal(t, "midline", patient.NeurologicalExamination.CranialNerves.CNXII.TonguePosition)
	assert.NotNil(t, patient.Diagnoses)
}

func TestProcessDocumentUnreadable(t *testing.T) {
	p := NewProcessor(document.NewExtractor(nil), &stubPatientExtractor{}, nil)
	_, err := p.ProcessDocument(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
