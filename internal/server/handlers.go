package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/airesume/tailor/internal/analysis"
	"github.com/airesume/tailor/internal/llm"
	"github.com/airesume/tailor/internal/pipeline"
)

// ScoreRequest is the request body for POST /score
type ScoreRequest struct {
	Resume string `json:"resume" validate:"required"`
	Job    string `json:"job" validate:"required"`
}

// BatchJob is one named job description within a batch scoring request.
type BatchJob struct {
	Name string `json:"name" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// BatchScoreRequest is the request body for POST /score/batch
type BatchScoreRequest struct {
	Resume string     `json:"resume" validate:"required"`
	Jobs   []BatchJob `json:"jobs" validate:"required,min=1,dive"`
}

// TailorRequest is the request body for POST /tailor
type TailorRequest struct {
	Resume    string `json:"resume" validate:"required"`
	Job       string `json:"job" validate:"required"`
	Iterative bool   `json:"iterative"`
}

// decodeAndValidate decodes a JSON request body into dst and runs struct
// validation, writing the error response itself on failure.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid JSON: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// handleScore scores a resume against one job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	requestID := uuid.NewString()
	match := analysis.Score(req.Resume, req.Job)
	s.log.Info("scored",
		zap.String("request_id", requestID),
		zap.Float64("overall_score", match.OverallScore))

	s.jsonResponse(w, http.StatusOK, match)
}

// handleScoreBatch scores a resume against multiple job descriptions
// concurrently, preserving input order in the response.
func (s *Server) handleScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchScoreRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	items := make([]pipeline.BatchItem, len(req.Jobs))
	for i, job := range req.Jobs {
		items[i] = pipeline.BatchItem{Name: job.Name, Text: job.Text}
	}

	requestID := uuid.NewString()
	scores, err := pipeline.ScoreBatch(r.Context(), req.Resume, items)
	if err != nil {
		s.log.Warn("batch scoring failed",
			zap.String("request_id", requestID),
			zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Batch scoring failed: "+err.Error())
		return
	}
	s.log.Info("batch scored",
		zap.String("request_id", requestID),
		zap.Int("jobs", len(scores)))

	s.jsonResponse(w, http.StatusOK, map[string]any{"results": scores})
}

// handleTailor runs a tailoring pass. Requires a configured generation
// client; without one the route reports the server as misconfigured.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	if s.tailorer == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "Tailoring is not configured: missing API key")
		return
	}

	var req TailorRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	requestID := uuid.NewString()
	s.log.Info("tailoring",
		zap.String("request_id", requestID),
		zap.Bool("iterative", req.Iterative))

	tailor := s.tailorer.QuickTailor
	if req.Iterative {
		tailor = s.tailorer.IterativeTailor
	}
	result := tailor(r.Context(), req.Resume, req.Job)

	status := http.StatusOK
	if !result.Success {
		status = http.StatusBadGateway
	}
	s.jsonResponse(w, status, result)
}

// handleModels returns the selectable generation models.
func (s *Server) handleModels(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"models": llm.Catalog()})
}
