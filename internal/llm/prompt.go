package llm

import (
	"encoding/json"
	"strings"
)

// BuildPatientSystemPrompt composes the system message for the
// single-document path: translate first, then emit exactly one JSON object
// against the provided schema with no surrounding prose.
func BuildPatientSystemPrompt() string {
	parts := []string{
		"You are a clinical records parser.",
		"First, translate the source text to professional medical English, preserving clinical terms, numbers, units, and dates exactly.",
		"Then return ONLY one JSON object that matches the provided JSON Schema. No prose before or after the JSON.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Keep numeric values as they appear in the text, including units (e.g. \"98.6°F\", \"72 bpm\").",
		"Set a disease-history boolean to true only when the text states the patient has that condition.",
		"Never output null. If a field is not present in the text, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildLabSystemPrompt is the batch-path variant: the model receives one
// chunk of a lab report and must emit a JSON array of test objects.
func BuildLabSystemPrompt(allowedCategories []string) string {
	var catLine string
	if len(allowedCategories) > 0 {
		catLine = "The 'category' MUST be exactly one of: " + strings.Join(allowedCategories, ", ") + ". If uncertain, use 'Other'. "
	} else {
		catLine = "The 'category' must be a short, sensible label; if uncertain, use 'Other'. "
	}
	parts := []string{
		"You are a lab report parser.",
		"First, translate the source text to professional medical English, preserving test names, numbers, units, reference ranges, and dates exactly.",
		"Then return ONLY one JSON array of lab test objects matching the provided JSON Schema. No prose before or after the JSON.",
		catLine,
		"Use ISO-8601 dates (YYYY-MM-DD) for 'test_date'.",
		"Copy 'result', 'unit', and 'reference_range' verbatim from the text.",
		"Never output null. If a field is not present, omit it.",
	}
	return strings.Join(parts, " ")
}

// BuildUserPrompt wraps the (already truncated or chunked) document text and
// attaches the schema so the model sees the target shape inline.
func BuildUserPrompt(text string, schema map[string]any) string {
	var b strings.Builder
	b.WriteString("Document text:\n")
	b.WriteString(text)
	b.WriteString("\n\nJSON Schema:\n")
	b.WriteString(mustJSON(schema))
	b.WriteString("\n\nReturn ONLY JSON that matches the schema.")
	return b.String()
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
