package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/aggregate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into a structured requirement record",
	Long: "Parse a job description from a text file or a posting URL into a " +
		"structured JSON record of required skills, certifications, education, " +
		"experience and languages.",
	RunE: runParseJob,
}

var (
	parseJobIn          string
	parseJobURL         string
	parseJobOut         string
	parseJobSave        bool
	parseJobDatabaseURL string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobIn, "in", "i", "", "Path to job description text file")
	parseJobCmd.Flags().StringVarP(&parseJobURL, "url", "u", "", "URL of the job posting")
	parseJobCmd.Flags().StringVarP(&parseJobOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseJobCmd.Flags().BoolVar(&parseJobSave, "save", false, "Store the parsed job description in the database")
	parseJobCmd.Flags().StringVar(&parseJobDatabaseURL, "db-url", "", "Database URL (required with --save)")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(config.Config{
		Job:         parseJobIn,
		JobURL:      parseJobURL,
		Verbose:     rootVerbose,
		DatabaseURL: parseJobDatabaseURL,
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	text, meta, err := ingestJob(ctx, cfg)
	if err != nil {
		return err
	}

	record, err := parseJobText(ctx, text)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Ingested %d characters (%d lines) from %s\n",
			meta.Characters, meta.Lines, meta.Source)
		observability.NewPrinter(os.Stderr).PrintJobRecord(record)
	}

	if err := writeJSON(parseJobOut, record); err != nil {
		return err
	}

	if parseJobSave {
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

		id, err := database.SaveJob(ctx, nil, meta.Source, text, record)
		if err != nil {
			return fmt.Errorf("failed to save job description: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved job description: %s\n", id)
	}

	return nil
}

// ingestJob loads cleaned job text from the configured file or URL.
func ingestJob(ctx context.Context, cfg config.Config) (string, *ingestion.Metadata, error) {
	switch {
	case cfg.Job != "":
		text, meta, err := ingestion.IngestFromFile(cfg.Job)
		if err != nil {
			return "", nil, fmt.Errorf("failed to ingest job description: %w", err)
		}
		return text, meta, nil
	case cfg.JobURL != "":
		text, meta, err := ingestion.IngestFromURL(ctx, cfg.JobURL)
		if err != nil {
			return "", nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return text, meta, nil
	default:
		return "", nil, fmt.Errorf("a job description is required (use --in or --url)")
	}
}

// parseJobText runs the job parser and schema validation over cleaned text.
func parseJobText(ctx context.Context, text string) (*types.JobRecord, error) {
	parser, err := aggregate.NewJobParser(aggregate.JobOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create job parser: %w", err)
	}

	record, err := parser.Parse(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job description: %w", err)
	}
	if err := schemas.ValidateJobRecord(record); err != nil {
		return nil, fmt.Errorf("parsed job does not validate: %w", err)
	}
	return record, nil
}
