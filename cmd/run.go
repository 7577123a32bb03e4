package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcamilor/cv-ranker/internal/candidate"
	"github.com/jcamilor/cv-ranker/internal/logger"
	"github.com/jcamilor/cv-ranker/internal/pdf"
	"github.com/jcamilor/cv-ranker/internal/ranking"
	"github.com/jcamilor/cv-ranker/internal/report"
	"github.com/jcamilor/cv-ranker/internal/textproc"
	"github.com/jcamilor/cv-ranker/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	defaultFolder        = "hojas_de_vida"
	defaultExportFile    = "ranking_monitores.csv"
	defaultMaxFeatures   = ranking.DefaultMaxFeatures
	defaultMinTextLength = pdf.MinUsableLength

	reportTitle = "SISTEMA DE SELECCION DE MONITORES"
)

var prompt = promptui.Select{
	Label: "Analizar las hojas de vida?",
	Items: []string{PromptYes, PromptNo},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the cv-ranker main command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("auto-aprove", "y", false, "do not ask for confirmation before the analysis")
	runCmd.Flags().StringP("folder", "f", "", "folder with the resume PDFs. Default is hojas_de_vida.")
	runCmd.Flags().StringP("export-file", "e", "", "csv file for the final ranking. Default is ranking_monitores.csv.")

	viper.BindPFlag("folder", runCmd.Flags().Lookup("folder"))
	viper.BindPFlag("export-file", runCmd.Flags().Lookup("export-file"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the cv-ranker", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	if config == nil {
		logger.Fatal("config is required")
	}

	if strings.TrimSpace(config.Profile) == "" {
		logger.Fatal("ideal profile description is required under profile to rank resumes")
	}

	console := report.NewConsole(os.Stdout)
	console.Header(reportTitle)
	console.Profile(config.Profile)

	files, err := scanFolder(config.Folder, logger)
	if err != nil {
		logger.Fatal("scanning the resume folder", zap.Error(err))
	}

	if len(files) == 0 {
		logger.Info("exiting", zap.String("reason", "no pdf files to analyze"))
		return
	}

	console.ScanSummary(config.Folder, len(files))

	if cmd.Flag("auto-aprove").Value.String() == "false" {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if action == PromptNo {
			logger.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
	}

	candidates := processFiles(config, files, console, logger)

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no pdf could be processed"))
		return
	}

	console.Processed(candidates.Len())

	result, err := ranking.Rank(candidates, config.Profile, ranking.Options{
		MaxFeatures: config.MaxFeatures,
	})
	if err != nil {
		if errors.Is(err, ranking.ErrEmptyCorpus) {
			logger.Fatal("nothing to rank: every resume and the profile normalized to empty text", zap.Error(err))
		}
		logger.Fatal("ranking candidates", zap.Error(err))
	}

	console.Ranking(result)
	console.Stats(result)

	if err := report.WriteCSV(config.ExportFile, result); err != nil {
		logger.Fatal("exporting the ranking", zap.Error(err))
	}

	logger.Info("ranking exported",
		zap.String("filename", config.ExportFile),
		zap.Int("candidates", result.Len()),
		zap.String("recommended", result.Top().Name),
	)
}

// scanFolder lists the PDF file names inside folder, non-recursively. A
// missing folder is created and reported as the empty list so the operator
// can populate it and re-run; that is a clean exit, not an error.
func scanFolder(folder string, logger *zap.Logger) ([]string, error) {
	if _, err := os.Stat(folder); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return nil, fmt.Errorf("creating folder %s: %w", folder, err)
		}
		logger.Info("folder created, place the resume PDFs there and run again",
			zap.String("folder", folder),
		)
		return nil, nil
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			files = append(files, entry.Name())
		}
	}

	return files, nil
}

var extractText = pdf.Extract

// processFiles extracts and normalizes every PDF, one at a time. A failed
// file is logged and skipped; it never stops the rest of the batch.
func processFiles(config *Config, files []string, console *report.Console, logger *zap.Logger) *candidate.Candidates {
	candidates := &candidate.Candidates{}

	for i, file := range files {
		path := filepath.Join(config.Folder, file)

		text, err := extractText(path)
		if err != nil {
			console.Progress(i+1, file, false)
			logger.Warn("skipping resume", zap.String("file", file), zap.Error(err))
			continue
		}

		if !pdf.Usable(text, config.MinTextLength) {
			console.Progress(i+1, file, false)
			logger.Warn("skipping resume",
				zap.String("file", file),
				zap.String("reason", "not enough extractable text"),
			)
			continue
		}

		normalized := textproc.Normalize(text)
		logger.Debug("extracted resume",
			zap.String("file", file),
			zap.String("text", util.TruncateForLog(normalized, 120)),
		)

		candidates.Add(&candidate.Candidate{
			File: file,
			Name: candidate.ResolveName(text, file),
			Text: normalized,
		})
		console.Progress(i+1, file, true)
	}

	return candidates
}
