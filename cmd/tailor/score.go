package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/analysis"
	"github.com/airesume/tailor/internal/config"
	"github.com/airesume/tailor/internal/observability"
	"github.com/airesume/tailor/internal/pipeline"
	"github.com/airesume/tailor/internal/schemas"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against one or more job descriptions",
	Long:  "Computes the technical and keyword match between a resume and job descriptions without calling any external API.",
	RunE:  runScore,
}

var (
	scoreConfigPath string
	scoreResume     string
	scoreJobs       []string
	scoreJobURL     string
	scoreBrowser    bool
	scoreJSON       bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "Path to JSON config file; flags override its values")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume file (txt/docx/pdf)")
	scoreCmd.Flags().StringArrayVarP(&scoreJobs, "job", "j", nil, "Path to job description file (repeatable for batch scoring)")
	scoreCmd.Flags().StringVarP(&scoreJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	scoreCmd.Flags().BoolVar(&scoreBrowser, "browser", false, "Use a headless browser when the posting needs JavaScript")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Emit the match result as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	flagCfg := &config.Config{Resume: scoreResume, JobURL: scoreJobURL, UseBrowser: scoreBrowser}
	if len(scoreJobs) == 1 {
		flagCfg.Job = scoreJobs[0]
	}
	cfg, err := resolveConfig(scoreConfigPath, flagCfg)
	if err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume (or config 'resume') is required")
	}

	resumeText, err := loadResumeText(cfg.Resume)
	if err != nil {
		return err
	}

	if len(scoreJobs) > 1 {
		if cfg.JobURL != "" {
			return fmt.Errorf("--job-url cannot be combined with multiple --job files")
		}
		return runScoreBatch(cmd, resumeText)
	}

	jobText, err := loadJobText(cmd.Context(), cfg.Job, cfg.JobURL, cfg.UseBrowser, zap.NewNop())
	if err != nil {
		return err
	}

	match := analysis.Score(resumeText, jobText)

	if scoreJSON {
		data, err := json.MarshalIndent(match, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode match result: %w", err)
		}
		if err := schemas.ValidateMatchResult(data); err != nil {
			return fmt.Errorf("match result failed schema validation: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintMatchResult(match)
	return nil
}

func runScoreBatch(cmd *cobra.Command, resumeText string) error {
	items := make([]pipeline.BatchItem, 0, len(scoreJobs))
	for _, path := range scoreJobs {
		text, err := loadJobText(cmd.Context(), path, "", false, zap.NewNop())
		if err != nil {
			return err
		}
		items = append(items, pipeline.BatchItem{Name: filepath.Base(path), Text: text})
	}

	scores, err := pipeline.ScoreBatch(cmd.Context(), resumeText, items)
	if err != nil {
		return fmt.Errorf("batch scoring failed: %w", err)
	}

	if scoreJSON {
		data, err := json.MarshalIndent(scores, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode batch results: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	for _, score := range scores {
		fmt.Fprintf(os.Stdout, "\n=== %s ===\n%s\n", score.Name, analysis.Summary(score.Result))
	}
	return nil
}
