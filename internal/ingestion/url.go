package ingestion

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/fetch"
)

// IngestFromURL fetches a job posting, extracts the description text with
// board-specific selectors, and cleans it. When useBrowser is true and the
// plain HTTP fetch yields too little text, the page is re-rendered in a
// headless browser; a browser failure falls back to the HTTP content rather
// than failing the ingest.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, log *zap.Logger) (string, *Metadata, error) {
	if log == nil {
		log = zap.NewNop()
	}

	board := fetch.DetectBoard(urlStr)
	log.Debug("ingesting posting", zap.String("url", urlStr), zap.String("board", string(board)))

	page, err := fetch.Posting(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("posting fetch failed: %w", err)
	}

	text, err := fetch.ExtractPostingText(page.HTML, board.ContentSelectors(), board.NoiseSelectors()...)
	if err != nil {
		return "", nil, fmt.Errorf("posting extraction failed: %w", err)
	}

	if useBrowser && fetch.NeedsBrowser(text) {
		log.Debug("content too short, rendering in browser", zap.Int("chars", len(text)))
		html, browserErr := fetch.RenderWithBrowser(ctx, urlStr, 0)
		if browserErr != nil {
			log.Warn("browser rendering failed, using HTTP content", zap.Error(browserErr))
		} else if rendered, extractErr := fetch.ExtractPostingText(html, board.ContentSelectors(), board.NoiseSelectors()...); extractErr == nil {
			text = rendered
		}
	}

	cleaned := CleanText(text)
	metadata := NewMetadata(cleaned, urlStr)
	metadata.Board = string(board)

	return cleaned, metadata, nil
}
