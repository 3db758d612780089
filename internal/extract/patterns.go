package extract

import (
	"regexp"
	"strings"

	"github.com/tykimikk/ndash-extract/internal/llm"
)

// Deterministic fallback: a fixed, ordered list of case-insensitive patterns
// over labeled fields. Each rule either sets a scalar or flips a boolean;
// a non-match leaves the zero default. This extractor never fails; it is
// best-effort, not authoritative.

var (
	reName           = regexp.MustCompile(`(?im)^\s*(?:patient\s+)?name\s*[:：]\s*(.+?)\s*$`)
	reGender         = regexp.MustCompile(`(?im)^\s*(?:gender|sex)\s*[:：]\s*([A-Za-z]+)`)
	reDOB            = regexp.MustCompile(`(?im)^\s*(?:date of birth|dob|birth date)\s*[:：]\s*([0-9]{4}-[0-9]{2}-[0-9]{2}|[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4})`)
	reChiefComplaint = regexp.MustCompile(`(?im)^\s*chief complaint\s*[:：]\s*(.+?)\s*$`)
	rePresentIllness = regexp.MustCompile(`(?im)^\s*(?:history of present illness|present illness|hpi)\s*[:：]\s*(.+?)\s*$`)

	reTemperature = regexp.MustCompile(`(?i)\btemp(?:erature)?\s*[:：]?\s*([0-9.]+\s*(?:°?[CF])?)`)
	reHeartRate   = regexp.MustCompile(`(?i)\b(?:heart rate|pulse|hr)\s*[:：]?\s*([0-9]+\s*(?:bpm)?)`)
	reRespRate    = regexp.MustCompile(`(?i)\b(?:respiratory rate|rr)\s*[:：]?\s*([0-9]+)`)
	reBloodPress  = regexp.MustCompile(`(?i)\b(?:blood pressure|bp)\s*[:：]?\s*([0-9]{2,3}\s*/\s*[0-9]{2,3})`)

	reFatherStatus = regexp.MustCompile(`(?i)\bfather\s*[:：]?\s*(deceased|alive|healthy|living)`)
	reMotherStatus = regexp.MustCompile(`(?i)\bmother\s*[:：]?\s*(deceased|alive|healthy|living)`)

	reNoSmoking = regexp.MustCompile(`(?i)\b(?:non[- ]?smoker|denies smoking|no smoking|never smoked)\b`)
	reSmoking   = regexp.MustCompile(`(?i)\b(?:smoker|smoking|smokes)\b`)
	reNoAlcohol = regexp.MustCompile(`(?i)\b(?:denies alcohol|no alcohol|does not drink)\b`)
	reAlcohol   = regexp.MustCompile(`(?i)\b(?:alcohol|drinks|drinker)\b`)

	reStrengthLU = regexp.MustCompile(`(?i)\bleft upper (?:limb|extremity)[^0-9]{0,20}([0-5])`)
	reStrengthRU = regexp.MustCompile(`(?i)\bright upper (?:limb|extremity)[^0-9]{0,20}([0-5])`)
	reStrengthLL = regexp.MustCompile(`(?i)\bleft lower (?:limb|extremity)[^0-9]{0,20}([0-5])`)
	reStrengthRL = regexp.MustCompile(`(?i)\bright lower (?:limb|extremity)[^0-9]{0,20}([0-5])`)
	reBabinski   = regexp.MustCompile(`(?i)\bbabinski(?:'s)?(?:\s+sign)?\s*[:：]?\s*(positive|negative|present|absent)`)
	reNeckStiff  = regexp.MustCompile(`(?i)\bneck stiffness\b|\bnuchal rigidity\b`)
	reKernig     = regexp.MustCompile(`(?i)\bkernig(?:'s)?(?:\s+sign)?\s*[:：]?\s*(positive|present)`)
	reBrudzinski = regexp.MustCompile(`(?i)\bbrudzinski(?:'s)?(?:\s+sign)?\s*[:：]?\s*(positive|present)`)
)

// diseasePhrases flip history booleans when the phrase appears anywhere in
// the text. Order matters only for readability; the flags are independent.
var diseasePhrases = []struct {
	re  *regexp.Regexp
	set func(*llm.PatientFields)
}{
	{regexp.MustCompile(`(?i)history of hypertension|\bhypertensive\b`), func(f *llm.PatientFields) { f.MedicalHistory.Hypertension = true }},
	{regexp.MustCompile(`(?i)coronary (?:artery|heart) disease|\bCAD\b|\bCHD\b`), func(f *llm.PatientFields) { f.MedicalHistory.CoronaryHeartDisease = true }},
	{regexp.MustCompile(`(?i)\barrhythmia\b|atrial fibrillation`), func(f *llm.PatientFields) { f.MedicalHistory.Arrhythmia = true }},
	{regexp.MustCompile(`(?i)\bdiabet(?:es|ic)\b`), func(f *llm.PatientFields) { f.MedicalHistory.Diabetes = true }},
	{regexp.MustCompile(`(?i)thyroid (?:disease|disorder)|hyperthyroid|hypothyroid`), func(f *llm.PatientFields) { f.MedicalHistory.ThyroidDisease = true }},
	{regexp.MustCompile(`(?i)\basthma\b`), func(f *llm.PatientFields) { f.MedicalHistory.Asthma = true }},
	{regexp.MustCompile(`(?i)\bCOPD\b|chronic obstructive pulmonary`), func(f *llm.PatientFields) { f.MedicalHistory.COPD = true }},
	{regexp.MustCompile(`(?i)chronic kidney disease|\bCKD\b|renal failure`), func(f *llm.PatientFields) { f.MedicalHistory.ChronicKidneyDisease = true }},
	{regexp.MustCompile(`(?i)hepatitis b\b|\bHBV\b`), func(f *llm.PatientFields) { f.MedicalHistory.HepatitisB = true }},
	{regexp.MustCompile(`(?i)\bcirrhosis\b`), func(f *llm.PatientFields) { f.MedicalHistory.Cirrhosis = true }},
	{regexp.MustCompile(`(?i)\btuberculosis\b|\bTB\b`), func(f *llm.PatientFields) { f.MedicalHistory.Tuberculosis = true }},
	{regexp.MustCompile(`(?i)\bHIV\b`), func(f *llm.PatientFields) { f.MedicalHistory.HIV = true }},
}

// ExtractPatterns runs the fallback over raw document text.
func ExtractPatterns(text string) llm.PatientFields {
	var f llm.PatientFields

	f.Name = firstGroup(reName, text)
	f.Gender = firstGroup(reGender, text)
	f.DateOfBirth = firstGroup(reDOB, text)
	f.ChiefComplaint = firstGroup(reChiefComplaint, text)
	f.PresentIllness = firstGroup(rePresentIllness, text)

	f.VitalSigns.Temperature = firstGroup(reTemperature, text)
	f.VitalSigns.HeartRate = firstGroup(reHeartRate, text)
	f.VitalSigns.RespiratoryRate = firstGroup(reRespRate, text)
	f.VitalSigns.BloodPressure = firstGroup(reBloodPress, text)

	for _, d := range diseasePhrases {
		if d.re.MatchString(text) {
			d.set(&f)
		}
	}

	f.FamilyHistory.FatherStatus = firstGroup(reFatherStatus, text)
	f.FamilyHistory.MotherStatus = firstGroup(reMotherStatus, text)

	// Negations first; "non-smoker" also matches the positive pattern.
	if !reNoSmoking.MatchString(text) && reSmoking.MatchString(text) {
		f.Habits.Smoking = true
	}
	if !reNoAlcohol.MatchString(text) && reAlcohol.MatchString(text) {
		f.Habits.Alcohol = true
	}

	f.NeuroExam.MotorStrength.LeftUpper = firstGroup(reStrengthLU, text)
	f.NeuroExam.MotorStrength.RightUpper = firstGroup(reStrengthRU, text)
	f.NeuroExam.MotorStrength.LeftLower = firstGroup(reStrengthLL, text)
	f.NeuroExam.MotorStrength.RightLower = firstGroup(reStrengthRL, text)
	f.NeuroExam.BabinskiSign = strings.ToLower(firstGroup(reBabinski, text))
	f.NeuroExam.NeckStiffness = reNeckStiff.MatchString(text)
	f.NeuroExam.KernigSign = reKernig.MatchString(text)
	f.NeuroExam.BrudzinskiSign = reBrudzinski.MatchString(text)

	return f
}

func firstGroup(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
