package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/resume"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Model     string `json:"model"`
	MaxLength int    `json:"max_length"`
}

// SpellCheckRequest is the body of POST /spell-check. Empty text is allowed
// and yields the documented no-op result.
type SpellCheckRequest struct {
	Text string `json:"text"`
}

// GenerateTextRequest is the body of POST /generate-text.
type GenerateTextRequest struct {
	Text        string  `json:"text" validate:"required"`
	MaxLength   int     `json:"max_length,omitempty" validate:"omitempty,min=1"`
	Temperature float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// GenerateTextResponse is the body of a successful POST /generate-text.
type GenerateTextResponse struct {
	GeneratedText string `json:"generated_text"`
}

// handleHealth reports the configured model and generation ceiling.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Model:     s.generator.Model(),
		MaxLength: s.generator.MaxLength(),
	})
}

// handleSpellCheck runs the correction service over the submitted text.
func (s *Server) handleSpellCheck(w http.ResponseWriter, r *http.Request) {
	var req SpellCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := s.speller.Check(req.Text)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleGenerateText forwards a prompt to the generation service. Upstream
// failures keep the status the service determined: 502 transport, 503
// not-ready, 500 otherwise.
func (s *Server) handleGenerateText(w http.ResponseWriter, r *http.Request) {
	var req GenerateTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validator.New().Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	opts := &generation.Options{
		MaxLength:   req.MaxLength,
		Temperature: req.Temperature,
	}
	text, err := s.generator.Generate(r.Context(), req.Text, opts)
	if err != nil {
		s.generationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, GenerateTextResponse{GeneratedText: text})
}

// handleGenerateResume renders the flattened resume payload to PDF and
// streams the bytes back as a download.
func (s *Server) handleGenerateResume(w http.ResponseWriter, r *http.Request) {
	var req resume.Simple
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validator.New().Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	rec := resume.FromSimple(req)
	pdfBytes, err := s.renderer.Render(rec)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := resume.PDFFileName(rec.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdfBytes); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}

// generationError writes a generation failure, carrying the retry hint for
// warm-up responses.
func (s *Server) generationError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)

	if nerr, ok := err.(*generation.NotReadyError); ok {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", nerr.RetryAfter))
		s.jsonResponse(w, status, map[string]any{
			"error":       nerr.Error(),
			"retry_after": nerr.RetryAfter,
		})
		return
	}

	s.errorResponse(w, status, err.Error())
}
