package record

// Patient is the fully scaffolded target shape the rest of the system
// consumes. Downstream code destructures nested fields without nil checks,
// so construction goes through NewPatient and every slice and sub-struct is
// always present.
type Patient struct {
	Name           string `json:"name"`
	Gender         string `json:"gender"`
	BirthDate      string `json:"birth_date"` // YYYY-MM-DD
	ChiefComplaint string `json:"chief_complaint"`
	PresentIllness string `json:"present_illness"`

	VitalSigns VitalSigns `json:"vital_signs"`

	MedicalHistory          MedicalHistory   `json:"medical_history"`
	NeurologicalExamination NeurologicalExam `json:"neurological_examination"`
	FamilyHistory           FamilyHistory    `json:"family_history"`
	Habits                  Habits           `json:"habits"`

	Allergies          []Allergy     `json:"allergies"`
	SurgicalHistory    []Surgery     `json:"surgical_history"`
	DrugUseHistory     []DrugUse     `json:"drug_use_history"`
	VaccinationHistory []Vaccination `json:"vaccination_history"`
	Diagnoses          []string      `json:"diagnoses"`
}

type VitalSigns struct {
	Temperature     float64 `json:"temperature"`
	HeartRate       int     `json:"heart_rate"`
	RespiratoryRate int     `json:"respiratory_rate"`
	SystolicBP      int     `json:"systolic_bp"`
	DiastolicBP     int     `json:"diastolic_bp"`
}

type MedicalHistory struct {
	Cardiovascular CardiovascularHistory `json:"cardiovascular"`
	Endocrine      EndocrineHistory      `json:"endocrine"`
	Respiratory    RespiratoryHistory    `json:"respiratory"`
	Kidney         KidneyHistory         `json:"kidney"`
	Liver          LiverHistory          `json:"liver"`
	Infectious     InfectiousHistory     `json:"infectious"`
}

type CardiovascularHistory struct {
	Hypertension         bool     `json:"hypertension"`
	CoronaryHeartDisease bool     `json:"coronary_heart_disease"`
	Arrhythmia           bool     `json:"arrhythmia"`
	Other                []string `json:"other"`
}

type EndocrineHistory struct {
	Diabetes       bool     `json:"diabetes"`
	ThyroidDisease bool     `json:"thyroid_disease"`
	Other          []string `json:"other"`
}

type RespiratoryHistory struct {
	Asthma bool     `json:"asthma"`
	COPD   bool     `json:"copd"`
	Other  []string `json:"other"`
}

type KidneyHistory struct {
	ChronicKidneyDisease bool     `json:"chronic_kidney_disease"`
	Other                []string `json:"other"`
}

type LiverHistory struct {
	HepatitisB bool     `json:"hepatitis_b"`
	Cirrhosis  bool     `json:"cirrhosis"`
	Other      []string `json:"other"`
}

type InfectiousHistory struct {
	Tuberculosis bool     `json:"tuberculosis"`
	HIV          bool     `json:"hiv"`
	Other        []string `json:"other"`
}

type NeurologicalExam struct {
	CranialNerves  CranialNerves  `json:"cranial_nerves"`
	MotorStrength  MotorStrength  `json:"motor_strength"`
	MeningealSigns MeningealSigns `json:"meningeal_signs"`
	BabinskiSign   string         `json:"babinski_sign"`
	Findings       []string       `json:"findings"`
}

// CranialNerves covers I through XII individually; per-nerve findings stay
// free text so the exam form can render whatever the examiner recorded.
type CranialNerves struct {
	CNI   CNOlfactory        `json:"cn_i"`
	CNII  CNOptic            `json:"cn_ii"`
	CNIII CNOculomotor       `json:"cn_iii"`
	CNIV  CNTrochlear        `json:"cn_iv"`
	CNV   CNTrigeminal       `json:"cn_v"`
	CNVI  CNAbducens         `json:"cn_vi"`
	CNVII CNFacial           `json:"cn_vii"`
	CNVIII CNVestibulocochlear `json:"cn_viii"`
	CNIX  CNGlossopharyngeal `json:"cn_ix"`
	CNX   CNVagus            `json:"cn_x"`
	CNXI  CNAccessory        `json:"cn_xi"`
	CNXII CNHypoglossal      `json:"cn_xii"`
}

type CNOlfactory struct {
	Smell string `json:"smell"`
}

type CNOptic struct {
	VisualAcuity string `json:"visual_acuity"`
	VisualFields string `json:"visual_fields"`
}

type CNOculomotor struct {
	PupilSize   string `json:"pupil_size"`
	LightReflex string `json:"light_reflex"`
}

type CNTrochlear struct {
	EyeMovement string `json:"eye_movement"`
}

type CNTrigeminal struct {
	FacialSensation string `json:"facial_sensation"`
	JawStrength     string `json:"jaw_strength"`
}

type CNAbducens struct {
	Abduction string `json:"abduction"`
}

type CNFacial struct {
	FacialSymmetry string `json:"facial_symmetry"`
}

type CNVestibulocochlear struct {
	Hearing string `json:"hearing"`
}

type CNGlossopharyngeal struct {
	GagReflex string `json:"gag_reflex"`
}

type CNVagus struct {
	PalateElevation string `json:"palate_elevation"`
}

type CNAccessory struct {
	ShoulderShrug string `json:"shoulder_shrug"`
}

type CNHypoglossal struct {
	TonguePosition string `json:"tongue_position"` // defaults to "midline"
	Atrophy        bool   `json:"atrophy"`
}

// MotorStrength holds MRC 0-5 grades per limb.
type MotorStrength struct {
	LeftUpper  int `json:"left_upper"`
	RightUpper int `json:"right_upper"`
	LeftLower  int `json:"left_lower"`
	RightLower int `json:"right_lower"`
}

type MeningealSigns struct {
	NeckStiffness  bool `json:"neck_stiffness"`
	KernigSign     bool `json:"kernig_sign"`
	BrudzinskiSign bool `json:"brudzinski_sign"`
}

type FamilyHistory struct {
	// The booleans are derived from the lists (non-empty list => true);
	// they are never copied straight from extraction output.
	HereditaryDiseases         bool     `json:"hereditary_diseases"`
	HereditaryDiseaseList      []string `json:"hereditary_disease_list"`
	InfectiousDiseasesInFamily bool     `json:"infectious_diseases_in_family"`
	InfectiousDiseaseList      []string `json:"infectious_disease_list"`
	CancerHistory              bool     `json:"cancer_history"`
	CancerList                 []string `json:"cancer_list"`
	FatherStatus               string   `json:"father_status"`
	MotherStatus               string   `json:"mother_status"`
}

type Habits struct {
	Smoking       bool   `json:"smoking"`
	SmokingDetail string `json:"smoking_detail"`
	Alcohol       bool   `json:"alcohol"`
	AlcoholDetail string `json:"alcohol_detail"`
}

type Allergy struct {
	Allergen string `json:"allergen"`
	Reaction string `json:"reaction"`
}

type Surgery struct {
	Name string `json:"name"`
	Year string `json:"year"`
}

type DrugUse struct {
	Name   string `json:"name"`
	Detail string `json:"detail"`
}

type Vaccination struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// NewPatient returns the complete default scaffold: all booleans false, all
// strings empty (tongue position "midline"), all scores 0, all slices empty.
func NewPatient() *Patient {
	p := &Patient{
		Allergies:          []Allergy{},
		SurgicalHistory:    []Surgery{},
		DrugUseHistory:     []DrugUse{},
		VaccinationHistory: []Vaccination{},
		Diagnoses:          []string{},
	}
	p.MedicalHistory = MedicalHistory{
		Cardiovascular: CardiovascularHistory{Other: []string{}},
		Endocrine:      EndocrineHistory{Other: []string{}},
		Respiratory:    RespiratoryHistory{Other: []string{}},
		Kidney:         KidneyHistory{Other: []string{}},
		Liver:          LiverHistory{Other: []string{}},
		Infectious:     InfectiousHistory{Other: []string{}},
	}
	p.NeurologicalExamination = NeurologicalExam{
		CranialNerves: CranialNerves{
			CNXII: CNHypoglossal{TonguePosition: "midline"},
		},
		Findings: []string{},
	}
	p.FamilyHistory = FamilyHistory{
		HereditaryDiseaseList: []string{},
		InfectiousDiseaseList: []string{},
		CancerList:            []string{},
	}
	return p
}
