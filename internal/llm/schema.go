package llm

// BuildPatientJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// single-document extraction as a generic map. It constrains shape, not
// content: everything is optional because the output is a partial record by
// design.
func BuildPatientJSONSchema() map[string]any {
	strList := map[string]any{"type": "array", "items": map[string]any{"type": "string"}}

	historyProps := map[string]any{}
	for _, k := range []string{
		"hypertension", "coronary_heart_disease", "arrhythmia",
		"diabetes", "thyroid_disease", "asthma", "copd",
		"chronic_kidney_disease", "hepatitis_b", "cirrhosis",
		"tuberculosis", "hiv",
	} {
		historyProps[k] = map[string]any{"type": "boolean"}
	}
	for _, k := range []string{
		"other_cardiovascular", "other_endocrine", "other_respiratory",
		"other_kidney", "other_liver", "other_infectious",
	} {
		historyProps[k] = strList
	}

	props := map[string]any{
		"name":            map[string]any{"type": "string"},
		"gender":          map[string]any{"type": "string"},
		"date_of_birth":   map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"chief_complaint": map[string]any{"type": "string"},
		"present_illness": map[string]any{"type": "string"},
		"vital_signs": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"temperature":      map[string]any{"type": "string"},
				"heart_rate":       map[string]any{"type": "string"},
				"respiratory_rate": map[string]any{"type": "string"},
				"blood_pressure":   map[string]any{"type": "string"},
			},
		},
		"medical_history": map[string]any{
			"type":       "object",
			"properties": historyProps,
		},
		"neurological_examination": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"motor_strength": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left_upper":  map[string]any{"type": "string"},
						"right_upper": map[string]any{"type": "string"},
						"left_lower":  map[string]any{"type": "string"},
						"right_lower": map[string]any{"type": "string"},
					},
				},
				"tongue_position":        map[string]any{"type": "string"},
				"babinski_sign":          map[string]any{"type": "string"},
				"neck_stiffness":         map[string]any{"type": "boolean"},
				"kernig_sign":            map[string]any{"type": "boolean"},
				"brudzinski_sign":        map[string]any{"type": "boolean"},
				"cranial_nerve_findings": strList,
			},
		},
		"family_history": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hereditary_diseases": strList,
				"infectious_diseases": strList,
				"cancer_history":      strList,
				"father_status":       map[string]any{"type": "string"},
				"mother_status":       map[string]any{"type": "string"},
			},
		},
		"habits": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"smoking":        map[string]any{"type": "boolean"},
				"smoking_detail": map[string]any{"type": "string"},
				"alcohol":        map[string]any{"type": "boolean"},
				"alcohol_detail": map[string]any{"type": "string"},
			},
		},
		"allergies": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"allergen": map[string]any{"type": "string"},
					"reaction": map[string]any{"type": "string"},
				},
			},
		},
		"surgical_history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"year": map[string]any{"type": "string"},
				},
			},
		},
		"drug_use_history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   map[string]any{"type": "string"},
					"detail": map[string]any{"type": "string"},
				},
			},
		},
		"vaccination_history": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{"type": "string"},
					"date": map[string]any{"type": "string"},
				},
			},
		},
		"diagnoses": strList,
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

// BuildLabTestArraySchema returns the schema for the batch path: an array of
// lab test objects. Only test_name is required per item; the orchestrator
// filters incomplete records afterwards.
func BuildLabTestArraySchema(allowedCategories []string) map[string]any {
	category := map[string]any{"type": "string"}
	if len(allowedCategories) > 0 {
		category = map[string]any{"type": "string", "enum": allowedCategories}
	}

	item := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"test_name":       map[string]any{"type": "string", "minLength": 1},
			"category":        category,
			"result":          map[string]any{"type": "string"},
			"unit":            map[string]any{"type": "string"},
			"reference_range": map[string]any{"type": "string"},
			"status":          map[string]any{"type": "string"},
			"severity":        map[string]any{"type": "string"},
			"test_date":       map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		},
		"required": []string{"test_name"},
	}

	return map[string]any{
		"type":  "array",
		"items": item,
	}
}
