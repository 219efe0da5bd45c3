package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airesume/tailor/internal/config"
	"github.com/airesume/tailor/internal/llm"
	"github.com/airesume/tailor/internal/logger"
	"github.com/airesume/tailor/internal/observability"
	"github.com/airesume/tailor/internal/pipeline"
	"github.com/airesume/tailor/internal/schemas"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor",
	Short: "Rewrite a resume toward a job description",
	Long:  "Rewrites the most recent roles of a resume to close the gap with a job description, preserving all companies, dates, education, and certifications verbatim.",
	RunE:  runTailor,
}

var (
	tailorConfigPath string
	tailorResume     string
	tailorJob        string
	tailorJobURL     string
	tailorModel      string
	tailorIterative  bool
	tailorTarget     float64
	tailorIterations int
	tailorProjects   int
	tailorBrowser    bool
	tailorOut        string
	tailorJSON       bool
	tailorVerbose    bool
)

func init() {
	tailorCmd.Flags().StringVarP(&tailorConfigPath, "config", "c", "", "Path to JSON config file; flags override its values")
	tailorCmd.Flags().StringVarP(&tailorResume, "resume", "r", "", "Path to resume file (txt/docx/pdf)")
	tailorCmd.Flags().StringVarP(&tailorJob, "job", "j", "", "Path to job description file")
	tailorCmd.Flags().StringVarP(&tailorJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	tailorCmd.Flags().StringVarP(&tailorModel, "model", "m", "", "Generation model ID (default gemini-2.5-flash)")
	tailorCmd.Flags().BoolVar(&tailorIterative, "iterative", false, "Refine over multiple iterations until the target score")
	tailorCmd.Flags().Float64Var(&tailorTarget, "target-score", 0, "Iterative mode stop threshold (default 85)")
	tailorCmd.Flags().IntVar(&tailorIterations, "max-iterations", 0, "Iterative mode bound (default 2)")
	tailorCmd.Flags().IntVar(&tailorProjects, "max-projects", 0, "Most recent roles the rewrite may touch (default 2)")
	tailorCmd.Flags().BoolVar(&tailorBrowser, "browser", false, "Use a headless browser when the posting needs JavaScript")
	tailorCmd.Flags().StringVarP(&tailorOut, "out", "o", "", "Write the rewritten resume to this file")
	tailorCmd.Flags().BoolVar(&tailorJSON, "json", false, "Emit the full result as JSON")
	tailorCmd.Flags().BoolVarP(&tailorVerbose, "verbose", "v", false, "Print detailed progress logging")

	rootCmd.AddCommand(tailorCmd)
}

func runTailor(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(tailorConfigPath, &config.Config{
		Resume:        tailorResume,
		Job:           tailorJob,
		JobURL:        tailorJobURL,
		Model:         tailorModel,
		MaxProjects:   tailorProjects,
		TargetScore:   tailorTarget,
		MaxIterations: tailorIterations,
		UseBrowser:    tailorBrowser,
		Verbose:       tailorVerbose,
	})
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume (or config 'resume') is required")
	}
	if err := cfg.RequireAPIKey(); err != nil {
		return err
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failures are harmless

	resumeText, err := loadResumeText(cfg.Resume)
	if err != nil {
		return err
	}
	jobText, err := loadJobText(cmd.Context(), cfg.Job, cfg.JobURL, cfg.UseBrowser, log)
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(cmd.Context(), modelConfig(cfg.Model), llm.TierStandard, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer client.Close()

	tailorer := pipeline.New(client, pipeline.Options{
		EditableZoneLimit: cfg.MaxProjects,
		BulletDelta:       cfg.BulletDelta,
		TargetScore:       cfg.TargetScore,
		MaxIterations:     cfg.MaxIterations,
		Logger:            log,
	})

	run := tailorer.QuickTailor
	if tailorIterative {
		run = tailorer.IterativeTailor
	}
	result := run(cmd.Context(), resumeText, jobText)

	if tailorOut != "" {
		if err := os.WriteFile(tailorOut, []byte(result.RewrittenText), 0o644); err != nil {
			return fmt.Errorf("failed to write rewritten resume: %w", err)
		}
	}

	if tailorJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		if err := schemas.ValidateTailorResult(data); err != nil {
			return fmt.Errorf("tailor result failed schema validation: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintTailorResult(result)
	if result.Validation != nil {
		printer.PrintValidationReport(result.Validation)
	}
	if !result.Success {
		return fmt.Errorf("tailoring failed: %s", result.Error)
	}
	return nil
}
