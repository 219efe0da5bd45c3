package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/ingestion"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Ingest a job posting from a file or URL",
	Long:  "Fetches a job posting from a text file or URL, cleans the content, and writes the cleaned text with metadata to a directory.",
	RunE:  runIngest,
}

var (
	ingestFile    string
	ingestURL     string
	ingestBrowser bool
	ingestOut     string
)

func init() {
	ingestCmd.Flags().StringVarP(&ingestFile, "text-file", "t", "", "Path to file containing the job posting")
	ingestCmd.Flags().StringVarP(&ingestURL, "url", "u", "", "URL to fetch the job posting from")
	ingestCmd.Flags().BoolVar(&ingestBrowser, "browser", false, "Use a headless browser when the posting needs JavaScript")
	ingestCmd.Flags().StringVarP(&ingestOut, "out", "o", "", "Output directory (required)")

	ingestCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestFile == "" && ingestURL == "" {
		return fmt.Errorf("either --text-file or --url must be provided")
	}
	if ingestFile != "" && ingestURL != "" {
		return fmt.Errorf("--text-file and --url are mutually exclusive; provide only one")
	}

	var cleanedText string
	var metadata *ingestion.Metadata
	var err error

	if ingestFile != "" {
		cleanedText, metadata, err = ingestion.IngestFromFile(ingestFile)
		if err != nil {
			return fmt.Errorf("failed to ingest from file: %w", err)
		}
	} else {
		cleanedText, metadata, err = ingestion.IngestFromURL(cmd.Context(), ingestURL, ingestBrowser, zap.NewNop())
		if err != nil {
			return fmt.Errorf("failed to ingest from URL: %w", err)
		}
	}

	if err := os.MkdirAll(ingestOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := filepath.Join(ingestOut, "job_posting.cleaned.txt")
	if err := os.WriteFile(textPath, []byte(cleanedText), 0o644); err != nil {
		return fmt.Errorf("failed to write cleaned text: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	metaPath := filepath.Join(ingestOut, "job_posting.meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0o644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Successfully ingested job posting\n")
	fmt.Fprintf(os.Stdout, "Cleaned text: %s\n", textPath)
	fmt.Fprintf(os.Stdout, "Metadata: %s\n", metaPath)

	return nil
}
