// Package report renders a finished ranking for the operator: a sectioned
// console report and a flat CSV export.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcamilor/cv-ranker/internal/ranking"
)

const (
	lineWidth = 85
	barWidth  = 50
)

// Console writes the human-readable report. All computation happens before
// any of these methods run; they only format.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) rule(ch string) {
	fmt.Fprintln(c.Out, strings.Repeat(ch, lineWidth))
}

func (c *Console) center(s string) {
	pad := (lineWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	fmt.Fprintf(c.Out, "%s%s\n", strings.Repeat(" ", pad), s)
}

// Header prints the opening banner.
func (c *Console) Header(title string) {
	c.rule("=")
	c.center(title)
	c.rule("=")
	fmt.Fprintln(c.Out)
}

// Profile prints the configured ideal-profile block.
func (c *Console) Profile(profile string) {
	fmt.Fprintln(c.Out, "Perfil ideal configurado:")
	c.rule("-")
	fmt.Fprintln(c.Out, strings.TrimSpace(profile))
	c.rule("-")
	fmt.Fprintln(c.Out)
}

// ScanSummary prints the folder being read and how many PDFs were found.
func (c *Console) ScanSummary(folder string, count int) {
	fmt.Fprintf(c.Out, "Carpeta: %s\n", folder)
	fmt.Fprintf(c.Out, "PDFs encontrados: %d\n\n", count)
	fmt.Fprintln(c.Out, "Leyendo archivos...")
}

// Progress prints one per-file extraction line with a success or failure mark.
func (c *Console) Progress(n int, file string, ok bool) {
	mark := "OK"
	if !ok {
		mark = "FALLO"
	}
	fmt.Fprintf(c.Out, "   %d. %s... %s\n", n, file, mark)
}

// Processed prints the count of résumés that survived extraction.
func (c *Console) Processed(count int) {
	fmt.Fprintf(c.Out, "\n%d CVs procesados correctamente\n\n", count)
}

// Ranking prints the full ordered listing: position, name, score with four
// decimals and an integer percentage, a proportional bar, and the source file.
func (c *Console) Ranking(r *ranking.Ranking) {
	c.rule("=")
	c.center("RANKING DE CANDIDATOS")
	c.rule("=")
	fmt.Fprintln(c.Out)

	for i, e := range r.Entries {
		bar := strings.Repeat("#", int(e.Score*barWidth))
		fmt.Fprintf(c.Out, "%d. %s\n", i+1, e.Name)
		fmt.Fprintf(c.Out, "    Score: %.4f (%d%%) [%s]\n", e.Score, int(e.Score*100), bar)
		fmt.Fprintf(c.Out, "    Archivo: %s\n\n", e.File)
	}

	if top := r.Top(); top != nil {
		c.rule("=")
		c.center(fmt.Sprintf("RECOMENDADO: %s (Score: %.4f)", top.Name, top.Score))
		c.rule("=")
		fmt.Fprintln(c.Out)
	}
}

// Stats prints the summary statistics block.
func (c *Console) Stats(r *ranking.Ranking) {
	fmt.Fprintln(c.Out, "ESTADISTICAS")
	c.rule("-")
	fmt.Fprintf(c.Out, "   Total candidatos: %d\n", r.Len())
	fmt.Fprintf(c.Out, "   Score promedio:   %.4f\n", r.Mean())
	fmt.Fprintf(c.Out, "   Score maximo:     %.4f\n", r.Max())
	fmt.Fprintf(c.Out, "   Score minimo:     %.4f\n", r.Min())
	c.rule("-")
	fmt.Fprintln(c.Out)
}
