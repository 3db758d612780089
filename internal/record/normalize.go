package record

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tykimikk/ndash-extract/internal/llm"
)

var (
	reLeadingFloat = regexp.MustCompile(`[0-9.]+`)
	reLeadingInt   = regexp.MustCompile(`[0-9]+`)
	reBloodPress   = regexp.MustCompile(`([0-9]+)\s*/\s*([0-9]+)`)
)

// Normalize maps the loosely-typed extraction output onto the scaffolded
// patient shape. It is a pure function: defaults are laid down first via
// NewPatient, then raw values are overlaid, so no nested field is ever
// missing regardless of how sparse the input is. Annotated numerics
// ("98.6°F", "72 bpm", "4/5") parse via a leading-numeric match; a failed
// parse leaves the scaffolded default in place.
func Normalize(raw llm.PatientFields) *Patient {
	p := NewPatient()

	p.Name = strings.TrimSpace(raw.Name)
	p.Gender = strings.TrimSpace(raw.Gender)
	p.BirthDate = strings.TrimSpace(raw.DateOfBirth)
	p.ChiefComplaint = strings.TrimSpace(raw.ChiefComplaint)
	p.PresentIllness = strings.TrimSpace(raw.PresentIllness)

	p.VitalSigns.Temperature = leadingFloat(raw.VitalSigns.Temperature)
	p.VitalSigns.HeartRate = leadingInt(raw.VitalSigns.HeartRate)
	p.VitalSigns.RespiratoryRate = leadingInt(raw.VitalSigns.RespiratoryRate)
	if m := reBloodPress.FindStringSubmatch(raw.VitalSigns.BloodPressure); m != nil {
		p.VitalSigns.SystolicBP, _ = strconv.Atoi(m[1])
		p.VitalSigns.DiastolicBP, _ = strconv.Atoi(m[2])
	}

	h := raw.MedicalHistory
	p.MedicalHistory.Cardiovascular.Hypertension = h.Hypertension
	p.MedicalHistory.Cardiovascular.CoronaryHeartDisease = h.CoronaryHeartDisease
	p.MedicalHistory.Cardiovascular.Arrhythmia = h.Arrhythmia
	p.MedicalHistory.Cardiovascular.Other = cleanList(h.OtherCardiovascular)
	p.MedicalHistory.Endocrine.Diabetes = h.Diabetes
	p.MedicalHistory.Endocrine.ThyroidDisease = h.ThyroidDisease
	p.MedicalHistory.Endocrine.Other = cleanList(h.OtherEndocrine)
	p.MedicalHistory.Respiratory.Asthma = h.Asthma
	p.MedicalHistory.Respiratory.COPD = h.COPD
	p.MedicalHistory.Respiratory.Other = cleanList(h.OtherRespiratory)
	p.MedicalHistory.Kidney.ChronicKidneyDisease = h.ChronicKidneyDisease
	p.MedicalHistory.Kidney.Other = cleanList(h.OtherKidney)
	p.MedicalHistory.Liver.HepatitisB = h.HepatitisB
	p.MedicalHistory.Liver.Cirrhosis = h.Cirrhosis
	p.MedicalHistory.Liver.Other = cleanList(h.OtherLiver)
	p.MedicalHistory.Infectious.Tuberculosis = h.Tuberculosis
	p.MedicalHistory.Infectious.HIV = h.HIV
	p.MedicalHistory.Infectious.Other = cleanList(h.OtherInfectious)

	n := raw.NeuroExam
	p.NeurologicalExamination.MotorStrength.LeftUpper = leadingInt(n.MotorStrength.LeftUpper)
	p.NeurologicalExamination.MotorStrength.RightUpper = leadingInt(n.MotorStrength.RightUpper)
	p.NeurologicalExamination.MotorStrength.LeftLower = leadingInt(n.MotorStrength.LeftLower)
	p.NeurologicalExamination.MotorStrength.RightLower = leadingInt(n.MotorStrength.RightLower)
	if tp := strings.TrimSpace(n.TonguePosition); tp != "" {
		p.NeurologicalExamination.CranialNerves.CNXII.TonguePosition = tp
	}
	p.NeurologicalExamination.BabinskiSign = strings.TrimSpace(n.BabinskiSign)
	p.NeurologicalExamination.MeningealSigns.NeckStiffness = n.NeckStiffness
	p.NeurologicalExamination.MeningealSigns.KernigSign = n.KernigSign
	p.NeurologicalExamination.MeningealSigns.BrudzinskiSign = n.BrudzinskiSign
	p.NeurologicalExamination.Findings = cleanList(n.CranialNerveFindings)

	// Family-history booleans are derived from list contents, never copied.
	fh := raw.FamilyHistory
	p.FamilyHistory.HereditaryDiseaseList = cleanList(fh.HereditaryDiseases)
	p.FamilyHistory.HereditaryDiseases = len(p.FamilyHistory.HereditaryDiseaseList) > 0
	p.FamilyHistory.InfectiousDiseaseList = cleanList(fh.InfectiousDiseases)
	p.FamilyHistory.InfectiousDiseasesInFamily = len(p.FamilyHistory.InfectiousDiseaseList) > 0
	p.FamilyHistory.CancerList = cleanList(fh.CancerHistory)
	p.FamilyHistory.CancerHistory = len(p.FamilyHistory.CancerList) > 0
	p.FamilyHistory.FatherStatus = strings.TrimSpace(fh.FatherStatus)
	p.FamilyHistory.MotherStatus = strings.TrimSpace(fh.MotherStatus)

	p.Habits.Smoking = raw.Habits.Smoking
	p.Habits.SmokingDetail = strings.TrimSpace(raw.Habits.SmokingDetail)
	p.Habits.Alcohol = raw.Habits.Alcohol
	p.Habits.AlcoholDetail = strings.TrimSpace(raw.Habits.AlcoholDetail)

	for _, a := range raw.Allergies {
		p.Allergies = append(p.Allergies, Allergy{
			Allergen: strings.TrimSpace(a.Allergen),
			Reaction: strings.TrimSpace(a.Reaction),
		})
	}
	for _, s := range raw.SurgicalHistory {
		p.SurgicalHistory = append(p.SurgicalHistory, Surgery{
			Name: strings.TrimSpace(s.Name),
			Year: strings.TrimSpace(s.Year),
		})
	}
	for _, d := range raw.DrugUseHistory {
		p.DrugUseHistory = append(p.DrugUseHistory, DrugUse{
			Name:   strings.TrimSpace(d.Name),
			Detail: strings.TrimSpace(d.Detail),
		})
	}
	for _, v := range raw.VaccinationHistory {
		p.VaccinationHistory = append(p.VaccinationHistory, Vaccination{
			Name: strings.TrimSpace(v.Name),
			Date: strings.TrimSpace(v.Date),
		})
	}
	p.Diagnoses = cleanList(raw.Diagnoses)

	return p
}

func leadingFloat(s string) float64 {
	m := reLeadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func leadingInt(s string) int {
	m := reLeadingInt.FindString(s)
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

func cleanList(in []string) []string {
	out := []string{}
	for _, s := range in {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}
