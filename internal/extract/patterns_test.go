package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const admissionNote = `Patient Name: John Smith
Gender: Male
Date of Birth: 1958-03-14
Chief Complaint: sudden weakness of right arm
History of Present Illness: Symptoms began 2 hours before arrival.

Vitals: Temp: 37.2°C  HR: 88 bpm  RR: 18  BP: 160/95
History of hypertension and diabetes mellitus. Non-smoker, denies alcohol.
Father: deceased  Mother: alive

Neuro exam: right upper extremity strength 3/5, right lower limb 4/5.
Babinski sign: positive on the right. Nuchal rigidity noted.
`

func TestExtractPatternsLabeledFields(t *testing.T) {
	f := ExtractPatterns(admissionNote)

	assert.Equal(t, "John Smith", f.Name)
	assert.Equal(t, "Male", f.Gender)
	assert.Equal(t, "1958-03-14", f.DateOfBirth)
	assert.Equal(t, "sudden weakness of right arm", f.ChiefComplaint)
	assert.Equal(t, "Symptoms began 2 hours before arrival.", f.PresentIllness)
}

func TestExtractPatternsVitals(t *testing.T) {
	f := ExtractPatterns(admissionNote)

	assert.Equal(t, "37.2°C", f.VitalSigns.Temperature)
	assert.Equal(t, "88 bpm", f.VitalSigns.HeartRate)
	assert.Equal(t, "18", f.VitalSigns.RespiratoryRate)
	assert.Equal(t, "160/95", f.VitalSigns.BloodPressure)
}

func TestExtractPatternsHistoryAndHabits(t *testing.T) {
	f := ExtractPatterns(admissionNote)

	assert.True(t, f.MedicalHistory.Hypertension)
	assert.True(t, f.MedicalHistory.Diabetes)
	assert.False(t, f.MedicalHistory.Asthma)
	// Negation phrasing suppresses the positive habit patterns.
	assert.False(t, f.Habits.Smoking)
	assert.False(t, f.Habits.Alcohol)
	assert.Equal(t, "deceased", f.FamilyHistory.FatherStatus)
	assert.Equal(t, "alive", f.FamilyHistory.MotherStatus)
}

func TestExtractPatternsNeuroExam(t *testing.T) {
	f := ExtractPatterns(admissionNote)

	assert.Equal(t, "3", f.NeuroExam.MotorStrength.RightUpper)
	assert.Equal(t, "4", f.NeuroExam.MotorStrength.RightLower)
	assert.Equal(t, "", f.NeuroExam.MotorStrength.LeftUpper)
	assert.Equal(t, "positive", f.NeuroExam.BabinskiSign)
	assert.True(t, f.NeuroExam.NeckStiffness)
	assert.False(t, f.NeuroExam.KernigSign)
}

func TestExtractPatternsPositiveHabits(t *testing.T) {
	f := ExtractPatterns("Social history: smoker, 20 pack-years. Drinks beer daily.")
	assert.True(t, f.Habits.Smoking)
	assert.True(t, f.Habits.Alcohol)
}

func TestExtractPatternsEmptyText(t *testing.T) {
	f := ExtractPatterns("")
	assert.Equal(t, "", f.Name)
	assert.Equal(t, "", f.ChiefComplaint)
	assert.False(t, f.MedicalHistory.Hypertension)
}
