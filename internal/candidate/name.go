package candidate

import (
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// nameLabelRe matches a "nombre:" / "nombre completo:" label followed by
	// a run of Spanish letters and spaces. The run stops at the end of the
	// line, so values from the next field never bleed in.
	nameLabelRe = regexp.MustCompile(`nombre\s*(?:completo)?\s*:\s*([a-záéíóúñ ]+)`)

	// filePrefixRe strips the conventional résumé file-name prefixes.
	filePrefixRe = regexp.MustCompile(`(?i)^(cv|hoja|vida)_?`)

	spaceRunRe = regexp.MustCompile(`\s+`)

	titleCaser = cases.Title(language.Spanish)
)

// fieldLabels are résumé field names that may follow the person's name on the
// same line; the captured run is cut at the first of them.
var fieldLabels = map[string]struct{}{
	"código": {}, "codigo": {},
	"email": {}, "correo": {},
	"teléfono": {}, "telefono": {}, "celular": {},
}

// ResolveName derives a display name for a candidate. It first looks for a
// name label inside the extracted text and otherwise falls back to the source
// file name. Best-effort heuristic: an unrecognized label phrasing simply
// means the file name wins.
func ResolveName(text, file string) string {
	if m := nameLabelRe.FindStringSubmatch(strings.ToLower(text)); m != nil {
		if name := cleanCapturedName(m[1]); name != "" {
			return name
		}
	}
	return nameFromFile(file)
}

func cleanCapturedName(raw string) string {
	words := strings.Fields(raw)
	kept := words[:0]
	for _, w := range words {
		if _, isLabel := fieldLabels[w]; isLabel {
			break
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return ""
	}
	return titleCaser.String(strings.Join(kept, " "))
}

func nameFromFile(file string) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	name := filePrefixRe.ReplaceAllString(base, "")
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.TrimSpace(spaceRunRe.ReplaceAllString(name, " "))
	if name == "" {
		name = base
	}
	return titleCaser.String(name)
}
