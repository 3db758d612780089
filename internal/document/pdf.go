package document

import (
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tykimikk/ndash-extract/constants"
)

func (e *Extractor) extractPDF(path string) (Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("document.pdf.close_error", "path", path, "error", err)
		}
	}()

	var b strings.Builder
	pageCount := reader.NumPage()
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single bad page doesn't abort the document.
			e.logger.Warn("document.pdf.page_error", "path", path, "page", i, "error", err)
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	return Result{Text: b.String(), Pages: pageCount, SourceType: constants.PDF}, nil
}
