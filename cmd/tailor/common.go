package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/config"
	"github.com/airesume/tailor/internal/ingestion"
	"github.com/airesume/tailor/internal/llm"
)

// resolveConfig loads the optional JSON config file, overlays the
// flag-provided values on top of it, fills remaining gaps from the
// environment and built-in defaults, and validates the result.
func resolveConfig(path string, flags *config.Config) (*config.Config, error) {
	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Merge(flags)
	cfg.FromEnv()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadJobText resolves the job description from either a file path or a URL.
// Exactly one of the two must be set.
func loadJobText(ctx context.Context, jobFile, jobURL string, useBrowser bool, log *zap.Logger) (string, error) {
	if jobFile == "" && jobURL == "" {
		return "", fmt.Errorf("either --job or --job-url must be provided")
	}
	if jobFile != "" && jobURL != "" {
		return "", fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if jobFile != "" {
		text, _, err := ingestion.IngestFromFile(jobFile)
		if err != nil {
			return "", fmt.Errorf("failed to load job description: %w", err)
		}
		return text, nil
	}

	text, _, err := ingestion.IngestFromURL(ctx, jobURL, useBrowser, log)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job posting: %w", err)
	}
	return text, nil
}

// loadResumeText loads and cleans the resume file.
func loadResumeText(path string) (string, error) {
	text, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load resume: %w", err)
	}
	return text, nil
}

// modelConfig maps an optional explicit model ID onto the tier table. An
// empty ID keeps the defaults.
func modelConfig(model string) *llm.Config {
	cfg := llm.DefaultConfig()
	if model != "" {
		cfg = cfg.WithModel(llm.TierStandard, model)
	}
	return cfg
}
