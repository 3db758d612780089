package constants

import "strings"

// Document formats accepted by the text-acquisition stage.
const (
	PDF  = "PDF"
	WORD = "WORD"
	TEXT = "TEXT"
)

// AllowedExtensions holds the default allowed file extensions for clinical
// document ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
	"txt":  {},
	"md":   {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a (normalized or raw) extension to a document format.
// Unknown text-like extensions fall through to TEXT; anything else returns "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "doc", "docx":
		return WORD
	case "txt", "md", "text":
		return TEXT
	default:
		return ""
	}
}
