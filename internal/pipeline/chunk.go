package pipeline

import "strings"

// SplitChunks splits extracted document text into chunks no larger than
// budget characters, breaking only at line boundaries so a table row is
// never cut in half. A single line longer than the budget becomes its own
// chunk rather than being dropped.
func SplitChunks(text string, budget int) []string {
	if budget <= 0 {
		budget = 2000
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var chunks []string
	var buf strings.Builder
	for _, line := range strings.Split(text, "\n") {
		need := len(line)
		if buf.Len() > 0 {
			need++
		}
		if buf.Len()+need > budget && buf.Len() > 0 {
			chunks = append(chunks, buf.String())
			buf.Reset()
		}
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(line)
	}
	if buf.Len() > 0 {
		chunks = append(chunks, buf.String())
	}
	return chunks
}
