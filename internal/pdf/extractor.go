// Package pdf extracts plain text from résumé PDF files.
package pdf

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// MinUsableLength is the trimmed rune count a document must exceed to count
// as usable text. Shorter results are typical of scanned or image-only PDFs.
const MinUsableLength = 50

// Extract returns the concatenated plain text of every page of the PDF at
// path, in document order with no separator between pages. Any decode or
// parse failure is returned as an error; it never aborts anything beyond
// this one file.
func Extract(path string) (text string, err error) {
	// The underlying library panics on some malformed documents instead of
	// returning an error; a corrupt résumé must only skip itself.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("decoding %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting page %d of %s: %w", i, path, err)
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}

// Usable reports whether extracted text clears the minimum content threshold.
func Usable(text string, minLen int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(text)) > minLen
}
