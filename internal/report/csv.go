package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jcamilor/cv-ranker/internal/ranking"
)

// WriteCSV exports the ranking to path as Nombre,Archivo,Score rows in
// ranking order. An existing file is overwritten.
func WriteCSV(path string, r *ranking.Ranking) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"Nombre", "Archivo", "Score"}); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}
	for _, e := range r.Entries {
		row := []string{e.Name, e.File, strconv.FormatFloat(e.Score, 'f', -1, 64)}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing export row for %s: %w", e.File, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing export file %s: %w", path, err)
	}
	return nil
}
