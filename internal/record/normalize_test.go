package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tykimikk/ndash-extract/internal/llm"
)

func TestNormalizeEmptyInputKeepsScaffold(t *testing.T) {
	p := Normalize(llm.PatientFields{})

	assert.Equal(t, "", p.Name)
	assert.Equal(t, "midline", p.NeurologicalExamination.CranialNerves.CNXII.TonguePosition)
	assert.NotNil(t, p.Allergies)
	assert.Len(t, p.Allergies, 0)
	assert.NotNil(t, p.Diagnoses)
	assert.NotNil(t, p.MedicalHistory.Cardiovascular.Other)
	assert.NotNil(t, p.FamilyHistory.HereditaryDiseaseList)
	assert.False(t, p.FamilyHistory.HereditaryDiseases)

	// Nested shapes always serialize; the UI destructures without nil checks.
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"tongue_position":"midline"`)
	assert.Contains(t, string(b), `"cn_i"`)
	assert.Contains(t, string(b), `"allergies":[]`)
}

func TestNormalizeAnnotatedNumerics(t *testing.T) {
	raw := llm.PatientFields{
		VitalSigns: llm.VitalSignFields{
			Temperature:     "98.6°F",
			HeartRate:       "72 bpm",
			RespiratoryRate: "18",
			BloodPressure:   "120 / 80 mmHg",
		},
		NeuroExam: llm.NeuroExamFields{
			MotorStrength: llm.MotorStrengthFields{LeftUpper: "4/5", RightUpper: "5"},
		},
	}
	p := Normalize(raw)

	assert.Equal(t, 98.6, p.VitalSigns.Temperature)
	assert.Equal(t, 72, p.VitalSigns.HeartRate)
	assert.Equal(t, 18, p.VitalSigns.RespiratoryRate)
	assert.Equal(t, 120, p.VitalSigns.SystolicBP)
	assert.Equal(t, 80, p.VitalSigns.DiastolicBP)
	assert.Equal(t, 4, p.NeurologicalExamination.MotorStrength.LeftUpper)
	assert.Equal(t, 5, p.NeurologicalExamination.MotorStrength.RightUpper)
	assert.Equal(t, 0, p.NeurologicalExamination.MotorStrength.LeftLower)
}

func TestNormalizeUnparsableNumericLeavesDefault(t *testing.T) {
	raw := llm.PatientFields{
		VitalSigns: llm.VitalSignFields{Temperature: "afebrile", HeartRate: "regular"},
	}
	p := Normalize(raw)
	assert.Equal(t, 0.0, p.VitalSigns.Temperature)
	assert.Equal(t, 0, p.VitalSigns.HeartRate)
}

func TestNormalizeDerivesFamilyHistoryBooleans(t *testing.T) {
	raw := llm.PatientFields{
		FamilyHistory: llm.FamilyHistoryFields{
			HereditaryDiseases: []string{"Huntington disease"},
			CancerHistory:      []string{"  ", ""},
			FatherStatus:       " deceased ",
		},
	}
	p := Normalize(raw)

	assert.True(t, p.FamilyHistory.HereditaryDiseases)
	assert.Equal(t, []string{"Huntington disease"}, p.FamilyHistory.HereditaryDiseaseList)
	// Whitespace-only entries are dropped, so the derived flag stays false.
	assert.False(t, p.FamilyHistory.CancerHistory)
	assert.Equal(t, []string{}, p.FamilyHistory.CancerList)
	assert.False(t, p.FamilyHistory.InfectiousDiseasesInFamily)
	assert.Equal(t, "deceased", p.FamilyHistory.FatherStatus)
}

func TestNormalizeMedicalHistoryAndSections(t *testing.T) {
	raw := llm.PatientFields{
		Name:           " Jane Roe ",
		ChiefComplaint: "headache for 3 days",
		MedicalHistory: llm.MedicalHistoryFields{
			Hypertension:        true,
			Diabetes:            true,
			OtherCardiovascular: []string{"mitral valve prolapse"},
		},
		NeuroExam: llm.NeuroExamFields{
			TonguePosition: "deviates left",
			BabinskiSign:   "positive",
			NeckStiffness:  true,
		},
		Allergies: []llm.AllergyFields{{Allergen: "penicillin", Reaction: "rash"}},
		Diagnoses: []string{"ischemic stroke", ""},
	}
	p := Normalize(raw)

	assert.Equal(t, "Jane Roe", p.Name)
	assert.True(t, p.MedicalHistory.Cardiovascular.Hypertension)
	assert.True(t, p.MedicalHistory.Endocrine.Diabetes)
	assert.False(t, p.MedicalHistory.Respiratory.Asthma)
	assert.Equal(t, []string{"mitral valve prolapse"}, p.MedicalHistory.Cardiovascular.Other)
	assert.Equal(t, "deviates left", p.NeurologicalExamination.CranialNerves.CNXII.TonguePosition)
	assert.Equal(t, "positive", p.NeurologicalExamination.BabinskiSign)
	assert.True(t, p.NeurologicalExamination.MeningealSigns.NeckStiffness)
	assert.Equal(t, []Allergy{{Allergen: "penicillin", Reaction: "rash"}}, p.Allergies)
	assert.Equal(t, []string{"ischemic stroke"}, p.Diagnoses)
}
