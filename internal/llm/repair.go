package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// The model is asked for bare JSON but routinely wraps it in prose or code
// fences. Recovery is an ordered chain of strategies, each returning the
// candidate bytes or failing over to the next: direct parse, then extraction
// of the first balanced top-level literal, then reassembly of individual
// well-formed object fragments into an array.

var reObjectFragment = regexp.MustCompile(`\{[^{}]*\}`)

type parseStrategy func(content string, wantArray bool) ([]byte, bool)

var parseChain = []parseStrategy{
	parseDirect,
	parseBalancedLiteral,
	parseFragments,
}

// RecoverJSON runs the repair chain over raw assistant content. wantArray
// selects the batch path, where the target literal is a JSON array.
func RecoverJSON(content string, wantArray bool) ([]byte, error) {
	content = strings.TrimSpace(content)
	for _, strategy := range parseChain {
		if out, ok := strategy(content, wantArray); ok {
			return out, nil
		}
	}
	return nil, fmt.Errorf("no JSON %s found in model output", literalName(wantArray))
}

func literalName(wantArray bool) string {
	if wantArray {
		return "array"
	}
	return "object"
}

func parseDirect(content string, wantArray bool) ([]byte, bool) {
	b := []byte(content)
	if !validJSON(b, wantArray) {
		return nil, false
	}
	return b, true
}

// parseBalancedLiteral scans for the first top-level {...} or [...] literal,
// tracking nesting depth and string state so braces inside values don't
// terminate the scan early.
func parseBalancedLiteral(content string, wantArray bool) ([]byte, bool) {
	open, close := byte('{'), byte('}')
	if wantArray {
		open, close = '[', ']'
	}

	start := strings.IndexByte(content, open)
	for start >= 0 {
		depth := 0
		inString := false
		escaped := false
		for i := start; i < len(content); i++ {
			c := content[i]
			if inString {
				switch {
				case escaped:
					escaped = false
				case c == '\\':
					escaped = true
				case c == '"':
					inString = false
				}
				continue
			}
			switch c {
			case '"':
				inString = true
			case open:
				depth++
			case close:
				depth--
				if depth == 0 {
					candidate := []byte(content[start : i+1])
					if validJSON(candidate, wantArray) {
						return candidate, true
					}
					i = len(content) // abandon this start position
				}
			}
		}
		next := strings.IndexByte(content[start+1:], open)
		if next < 0 {
			break
		}
		start = start + 1 + next
	}
	return nil, false
}

// parseFragments pulls individual flat {...} fragments, keeps the ones that
// parse, and re-wraps them into an array. On the object path the first
// surviving fragment wins.
func parseFragments(content string, wantArray bool) ([]byte, bool) {
	matches := reObjectFragment.FindAllString(content, -1)
	var kept []json.RawMessage
	for _, m := range matches {
		var v map[string]any
		if err := json.Unmarshal([]byte(m), &v); err == nil && len(v) > 0 {
			kept = append(kept, json.RawMessage(m))
		}
	}
	if len(kept) == 0 {
		return nil, false
	}
	if !wantArray {
		return kept[0], true
	}
	out, err := json.Marshal(kept)
	if err != nil {
		return nil, false
	}
	return out, true
}

func validJSON(b []byte, wantArray bool) bool {
	if wantArray {
		var v []any
		return json.Unmarshal(b, &v) == nil
	}
	var v map[string]any
	return json.Unmarshal(b, &v) == nil
}
