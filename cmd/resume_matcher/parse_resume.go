package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/aggregate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into a structured record",
	Long: "Parse a resume (PDF, DOCX or plain text) into a structured JSON record " +
		"of contact details, skills, experience, education and other fields.",
	RunE: runParseResume,
}

var (
	parseResumeIn            string
	parseResumeOut           string
	parseResumeStrictLinks   bool
	parseResumeClassifyLinks bool
	parseResumeFormatPhone   bool
	parseResumeSave          bool
	parseResumeDatabaseURL   string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeIn, "in", "i", "", "Path to resume file")
	parseResumeCmd.Flags().StringVarP(&parseResumeOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().BoolVar(&parseResumeStrictLinks, "strict-links", false, "Exclude bare scheme-less domains from links")
	parseResumeCmd.Flags().BoolVar(&parseResumeClassifyLinks, "classify-links", false, "Group extracted links by category")
	parseResumeCmd.Flags().BoolVar(&parseResumeFormatPhone, "format-phone", false, "Render domestic phone numbers as (XXX) XXX-XXXX")
	parseResumeCmd.Flags().BoolVar(&parseResumeSave, "save", false, "Store the parsed resume in the database")
	parseResumeCmd.Flags().StringVar(&parseResumeDatabaseURL, "db-url", "", "Database URL (required with --save)")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(config.Config{
		Resume:        parseResumeIn,
		StrictLinks:   parseResumeStrictLinks,
		ClassifyLinks: parseResumeClassifyLinks,
		FormatPhone:   parseResumeFormatPhone,
		Verbose:       rootVerbose,
		DatabaseURL:   parseResumeDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("resume file is required (use --in or the config file)")
	}

	text, meta, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	parser, err := aggregate.NewResumeParser(aggregate.ResumeOptions{
		StrictLinks:   cfg.StrictLinks,
		ClassifyLinks: cfg.ClassifyLinks,
		FormatPhone:   cfg.FormatPhone,
	})
	if err != nil {
		return fmt.Errorf("failed to create resume parser: %w", err)
	}

	ctx := context.Background()
	record, err := parser.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	if err := schemas.ValidateResumeRecord(record); err != nil {
		return fmt.Errorf("parsed resume does not validate: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Ingested %d characters (%d lines) from %s\n",
			meta.Characters, meta.Lines, meta.Source)
		observability.NewPrinter(os.Stderr).PrintResumeRecord(record)
	}

	if err := writeJSON(parseResumeOut, record); err != nil {
		return err
	}

	if parseResumeSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("database URL is required with --save (use --db-url or DATABASE_URL)")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}

		id, err := database.SaveResume(ctx, nil, filepath.Base(cfg.Resume), text, record)
		if err != nil {
			return fmt.Errorf("failed to save resume: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved resume: %s\n", id)
	}

	return nil
}

// writeJSON marshals v with indentation to path, or stdout when path is
// empty.
func writeJSON(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if path == "" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
