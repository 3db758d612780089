package llm

import "context"

// PatientFields is the loosely-typed bag of fields the model (or the pattern
// fallback) produces for a clinical document. Every field is optional and
// numeric-looking values stay strings ("98.6°F", "72 bpm") until the
// normalizer runs. It exists only inside the pipeline.
type PatientFields struct {
	Name           string `json:"name,omitempty"`
	Gender         string `json:"gender,omitempty"`
	DateOfBirth    string `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	ChiefComplaint string `json:"chief_complaint,omitempty"`
	PresentIllness string `json:"present_illness,omitempty"`

	VitalSigns VitalSignFields `json:"vital_signs,omitempty"`

	MedicalHistory MedicalHistoryFields `json:"medical_history,omitempty"`
	NeuroExam      NeuroExamFields      `json:"neurological_examination,omitempty"`
	FamilyHistory  FamilyHistoryFields  `json:"family_history,omitempty"`
	Habits         HabitFields          `json:"habits,omitempty"`

	Allergies          []AllergyFields     `json:"allergies,omitempty"`
	SurgicalHistory    []SurgeryFields     `json:"surgical_history,omitempty"`
	DrugUseHistory     []DrugUseFields     `json:"drug_use_history,omitempty"`
	VaccinationHistory []VaccinationFields `json:"vaccination_history,omitempty"`
	Diagnoses          []string            `json:"diagnoses,omitempty"`
}

type VitalSignFields struct {
	Temperature     string `json:"temperature,omitempty"`
	HeartRate       string `json:"heart_rate,omitempty"`
	RespiratoryRate string `json:"respiratory_rate,omitempty"`
	BloodPressure   string `json:"blood_pressure,omitempty"` // "120/80"
}

// MedicalHistoryFields keeps disease flags flat, the way the model emits
// them; the normalizer folds them into per-system categories.
type MedicalHistoryFields struct {
	Hypertension         bool `json:"hypertension,omitempty"`
	CoronaryHeartDisease bool `json:"coronary_heart_disease,omitempty"`
	Arrhythmia           bool `json:"arrhythmia,omitempty"`
	Diabetes             bool `json:"diabetes,omitempty"`
	ThyroidDisease       bool `json:"thyroid_disease,omitempty"`
	Asthma               bool `json:"asthma,omitempty"`
	COPD                 bool `json:"copd,omitempty"`
	ChronicKidneyDisease bool `json:"chronic_kidney_disease,omitempty"`
	HepatitisB           bool `json:"hepatitis_b,omitempty"`
	Cirrhosis            bool `json:"cirrhosis,omitempty"`
	Tuberculosis         bool `json:"tuberculosis,omitempty"`
	HIV                  bool `json:"hiv,omitempty"`

	OtherCardiovascular []string `json:"other_cardiovascular,omitempty"`
	OtherEndocrine      []string `json:"other_endocrine,omitempty"`
	OtherRespiratory    []string `json:"other_respiratory,omitempty"`
	OtherKidney         []string `json:"other_kidney,omitempty"`
	OtherLiver          []string `json:"other_liver,omitempty"`
	OtherInfectious     []string `json:"other_infectious,omitempty"`
}

type NeuroExamFields struct {
	MotorStrength        MotorStrengthFields `json:"motor_strength,omitempty"`
	TonguePosition       string              `json:"tongue_position,omitempty"`
	BabinskiSign         string              `json:"babinski_sign,omitempty"`
	NeckStiffness        bool                `json:"neck_stiffness,omitempty"`
	KernigSign           bool                `json:"kernig_sign,omitempty"`
	BrudzinskiSign       bool                `json:"brudzinski_sign,omitempty"`
	CranialNerveFindings []string            `json:"cranial_nerve_findings,omitempty"`
}

// MotorStrengthFields hold MRC grades as strings; the model sometimes emits
// "4/5" rather than a bare digit.
type MotorStrengthFields struct {
	LeftUpper  string `json:"left_upper,omitempty"`
	RightUpper string `json:"right_upper,omitempty"`
	LeftLower  string `json:"left_lower,omitempty"`
	RightLower string `json:"right_lower,omitempty"`
}

type FamilyHistoryFields struct {
	HereditaryDiseases []string `json:"hereditary_diseases,omitempty"`
	InfectiousDiseases []string `json:"infectious_diseases,omitempty"`
	CancerHistory      []string `json:"cancer_history,omitempty"`
	FatherStatus       string   `json:"father_status,omitempty"`
	MotherStatus       string   `json:"mother_status,omitempty"`
}

type HabitFields struct {
	Smoking       bool   `json:"smoking,omitempty"`
	SmokingDetail string `json:"smoking_detail,omitempty"`
	Alcohol       bool   `json:"alcohol,omitempty"`
	AlcoholDetail string `json:"alcohol_detail,omitempty"`
}

type AllergyFields struct {
	Allergen string `json:"allergen,omitempty"`
	Reaction string `json:"reaction,omitempty"`
}

type SurgeryFields struct {
	Name string `json:"name,omitempty"`
	Year string `json:"year,omitempty"`
}

type DrugUseFields struct {
	Name   string `json:"name,omitempty"`
	Detail string `json:"detail,omitempty"`
}

type VaccinationFields struct {
	Name string `json:"name,omitempty"`
	Date string `json:"date,omitempty"`
}

// LabTestFields is one extracted lab test as emitted by the model for the
// batch (PDF import) path.
type LabTestFields struct {
	TestName       string `json:"test_name,omitempty"`
	Category       string `json:"category,omitempty"`
	Result         string `json:"result,omitempty"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"reference_range,omitempty"`
	Status         string `json:"status,omitempty"`
	Severity       string `json:"severity,omitempty"`
	TestDate       string `json:"test_date,omitempty"` // YYYY-MM-DD
}

// CompletionRequest is one chat-completion call to the remote endpoint.
type CompletionRequest struct {
	System    string
	User      string
	MaxTokens int
}

// CompletionClient is the transport interface the extraction engine depends
// on. It returns the raw assistant content; parsing and repair happen above.
type CompletionClient interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
