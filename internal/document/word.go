package document

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/tykimikk/ndash-extract/constants"
)

// Word documents are unzipped and the main document part is walked for text
// runs; formatting is discarded. Legacy binary .doc files are not parseable
// this way and fail as unreadable.

func (e *Extractor) extractWord(path string) (Result, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Result{}, fmt.Errorf("open docx container: %w", err)
	}
	defer func() {
		if err := zr.Close(); err != nil {
			e.logger.Warn("document.word.close_error", "path", path, "error", err)
		}
	}()

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return Result{}, fmt.Errorf("no word/document.xml in %s", path)
	}

	rc, err := doc.Open()
	if err != nil {
		return Result{}, fmt.Errorf("open document part: %w", err)
	}
	defer rc.Close()

	text, err := wordPartText(rc)
	if err != nil {
		return Result{}, err
	}
	return Result{Text: text, Pages: 1, SourceType: constants.WORD}, nil
}

// wordPartText streams the WordprocessingML and collects the character data
// of <w:t> runs, inserting a newline per paragraph close.
func wordPartText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var b strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document part: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}
