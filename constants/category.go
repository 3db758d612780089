package constants

import (
	"strings"
)

// LabCategory is the closed taxonomy for lab results.
type LabCategory string

const (
	Hematology     LabCategory = "Hematology"
	Biochemistry   LabCategory = "Biochemistry"
	Electrolytes   LabCategory = "Electrolytes"
	LiverFunction  LabCategory = "LiverFunction"
	KidneyFunction LabCategory = "KidneyFunction"
	Lipids         LabCategory = "Lipids"
	Glucose        LabCategory = "Glucose"
	Coagulation    LabCategory = "Coagulation"
	Thyroid        LabCategory = "Thyroid"
	Immunology     LabCategory = "Immunology"
	Microbiology   LabCategory = "Microbiology"
	Urinalysis     LabCategory = "Urinalysis"
	TumorMarkers   LabCategory = "TumorMarkers"
	BloodGas       LabCategory = "BloodGas"
	CSF            LabCategory = "CSF"
	OtherCategory  LabCategory = "Other"
)

var allCategories = []LabCategory{
	Hematology,
	Biochemistry,
	Electrolytes,
	LiverFunction,
	KidneyFunction,
	Lipids,
	Glucose,
	Coagulation,
	Thyroid,
	Immunology,
	Microbiology,
	Urinalysis,
	TumorMarkers,
	BloodGas,
	CSF,
	OtherCategory,
}

func CategoriesAsStrings() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// CanonicalizeCategory maps a free-form label from the model onto the closed
// taxonomy. Unknown labels resolve to Other with ok=false.
func CanonicalizeCategory(input string) (LabCategory, bool) {
	if input == "" {
		return OtherCategory, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]LabCategory{
		"cbc":                  Hematology,
		"complete blood count": Hematology,
		"blood count":          Hematology,
		"chemistry":            Biochemistry,
		"serum chemistry":      Biochemistry,
		"metabolic panel":      Biochemistry,
		"lft":                  LiverFunction,
		"liver panel":          LiverFunction,
		"liver function test":  LiverFunction,
		"rft":                  KidneyFunction,
		"renal function":       KidneyFunction,
		"renal panel":          KidneyFunction,
		"kidney panel":         KidneyFunction,
		"lipid panel":          Lipids,
		"lipid profile":        Lipids,
		"blood sugar":          Glucose,
		"blood glucose":        Glucose,
		"hba1c":                Glucose,
		"pt/inr":               Coagulation,
		"coag":                 Coagulation,
		"tft":                  Thyroid,
		"thyroid function":     Thyroid,
		"thyroid panel":        Thyroid,
		"serology":             Immunology,
		"culture":              Microbiology,
		"urine":                Urinalysis,
		"urine analysis":       Urinalysis,
		"tumor marker":         TumorMarkers,
		"abg":                  BloodGas,
		"arterial blood gas":   BloodGas,
		"cerebrospinal fluid":  CSF,
		"spinal fluid":         CSF,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return OtherCategory, false
}
