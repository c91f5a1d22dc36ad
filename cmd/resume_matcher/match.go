package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/aggregate"
	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long: "Parse a resume and a job description, then compute a weighted match " +
		"score with per-field breakdown and gap feedback.",
	RunE: runMatch,
}

var (
	matchResume        string
	matchJob           string
	matchJobURL        string
	matchOut           string
	matchStrictLinks   bool
	matchClassifyLinks bool
	matchFormatPhone   bool
	matchSave          bool
	matchDatabaseURL   string
)

func init() {
	matchCmd.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file")
	matchCmd.Flags().StringVarP(&matchJob, "job", "j", "", "Path to job description text file")
	matchCmd.Flags().StringVarP(&matchJobURL, "job-url", "u", "", "URL of the job posting")
	matchCmd.Flags().StringVarP(&matchOut, "out", "o", "", "Path to output JSON file (default: stdout)")
	matchCmd.Flags().BoolVar(&matchStrictLinks, "strict-links", false, "Exclude bare scheme-less domains from links")
	matchCmd.Flags().BoolVar(&matchClassifyLinks, "classify-links", false, "Group extracted links by category")
	matchCmd.Flags().BoolVar(&matchFormatPhone, "format-phone", false, "Render domestic phone numbers as (XXX) XXX-XXXX")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "Store the resume, job and match result in the database")
	matchCmd.Flags().StringVar(&matchDatabaseURL, "db-url", "", "Database URL (required with --save)")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	cfg, err := mergedConfig(config.Config{
		Resume:        matchResume,
		Job:           matchJob,
		JobURL:        matchJobURL,
		StrictLinks:   matchStrictLinks,
		ClassifyLinks: matchClassifyLinks,
		FormatPhone:   matchFormatPhone,
		Verbose:       rootVerbose,
		DatabaseURL:   matchDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("resume file is required (use --resume or the config file)")
	}

	ctx := context.Background()

	resumeText, resumeMeta, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}

	resumeParser, err := aggregate.NewResumeParser(aggregate.ResumeOptions{
		StrictLinks:   cfg.StrictLinks,
		ClassifyLinks: cfg.ClassifyLinks,
		FormatPhone:   cfg.FormatPhone,
	})
	if err != nil {
		return fmt.Errorf("failed to create resume parser: %w", err)
	}
	resumeRecord, err := resumeParser.Parse(ctx, resumeText)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	if err := schemas.ValidateResumeRecord(resumeRecord); err != nil {
		return fmt.Errorf("parsed resume does not validate: %w", err)
	}

	jobText, jobMeta, err := ingestJob(ctx, cfg)
	if err != nil {
		return err
	}
	jobRecord, err := parseJobText(ctx, jobText)
	if err != nil {
		return err
	}

	score := matching.ComputeMatch(resumeRecord, jobRecord)
	if err := schemas.ValidateMatchScore(score); err != nil {
		return fmt.Errorf("computed score does not validate: %w", err)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Resume: %s (%d characters), Job: %s (%d characters)\n",
			resumeMeta.Source, resumeMeta.Characters, jobMeta.Source, jobMeta.Characters)
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResumeRecord(resumeRecord)
		printer.PrintJobRecord(jobRecord)
		printer.PrintMatchScore(score)
	}

	if err := writeJSON(matchOut, score); err != nil {
		return err
	}

	if matchSave {
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

		resumeID, err := database.SaveResume(ctx, nil, filepath.Base(cfg.Resume), resumeText, resumeRecord)
		if err != nil {
			return fmt.Errorf("failed to save resume: %w", err)
		}
		jobID, err := database.SaveJob(ctx, nil, jobMeta.Source, jobText, jobRecord)
		if err != nil {
			return fmt.Errorf("failed to save job description: %w", err)
		}
		matchID, err := database.SaveMatch(ctx, nil, resumeID, jobID, score)
		if err != nil {
			return fmt.Errorf("failed to save match result: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Saved match %s (resume %s vs job %s)\n", matchID, resumeID, jobID)
	}

	return nil
}
