package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/airesume/tailor/internal/config"
	"github.com/airesume/tailor/internal/llm"
	"github.com/airesume/tailor/internal/logger"
	"github.com/airesume/tailor/internal/pipeline"
	"github.com/airesume/tailor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Starts an HTTP server exposing scoring and tailoring endpoints. Without GEMINI_API_KEY the scoring endpoints still work and tailoring reports itself unavailable.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	servePort       int
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to JSON config file; flags override its values")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Print detailed progress logging")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfigPath, &config.Config{Port: servePort, Verbose: serveVerbose})
	if err != nil {
		return err
	}

	log, err := logger.New(true, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stderr sync failures are harmless

	var tailorer *pipeline.Tailorer
	if cfg.APIKey != "" {
		client, err := llm.NewGeminiClient(cmd.Context(), modelConfig(cfg.Model), llm.TierStandard, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create generation client: %w", err)
		}
		defer client.Close()

		tailorer = pipeline.New(client, pipeline.Options{Logger: log})
	} else {
		log.Warn("GEMINI_API_KEY not set; tailoring endpoint disabled")
	}

	srv := server.New(server.Config{
		Port:      cfg.Port,
		JWTSecret: cfg.JWTSecret,
		Tailorer:  tailorer,
		Logger:    log,
	})
	return srv.Start()
}
