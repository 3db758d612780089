package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tykimikk/ndash-extract/internal/llm"
)

func TestMergeRemoteWinsWhenPresent(t *testing.T) {
	remote := llm.PatientFields{Name: "Jane Roe", ChiefComplaint: "dizziness"}
	fallback := llm.PatientFields{Name: "J. Roe", Gender: "Female", ChiefComplaint: "vertigo"}

	out := MergePatientFields(remote, fallback)

	assert.Equal(t, "Jane Roe", out.Name)
	assert.Equal(t, "dizziness", out.ChiefComplaint)
	// Fallback fills gaps the remote left empty.
	assert.Equal(t, "Female", out.Gender)
}

func TestMergeBooleansNeverSuppressed(t *testing.T) {
	remote := llm.PatientFields{}
	fallback := llm.PatientFields{}
	fallback.MedicalHistory.Hypertension = true
	fallback.Habits.Smoking = true
	remote.MedicalHistory.Diabetes = true

	out := MergePatientFields(remote, fallback)

	assert.True(t, out.MedicalHistory.Hypertension)
	assert.True(t, out.MedicalHistory.Diabetes)
	assert.True(t, out.Habits.Smoking)
}

func TestMergeListsRemotePriority(t *testing.T) {
	remote := llm.PatientFields{Diagnoses: []string{"migraine"}}
	fallback := llm.PatientFields{Diagnoses: []string{"tension headache"}}

	out := MergePatientFields(remote, fallback)
	assert.Equal(t, []string{"migraine"}, out.Diagnoses)

	out = MergePatientFields(llm.PatientFields{}, fallback)
	assert.Equal(t, []string{"tension headache"}, out.Diagnoses)
}
