package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/generation"
	"github.com/jonathan/resume-builder/internal/resume"
	"github.com/jonathan/resume-builder/internal/spelling"
)

// fakeSpeller returns a canned result or error.
type fakeSpeller struct {
	result *spelling.Result
	err    error
}

func (f *fakeSpeller) Check(text string) (*spelling.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &spelling.Result{Original: text, Corrected: text, Misspelled: []string{}}, nil
}

// fakeGenerator returns a canned completion or error and records the options
// it was called with.
type fakeGenerator struct {
	text     string
	err      error
	lastOpts *generation.Options
}

func (f *fakeGenerator) Generate(_ context.Context, _ string, opts *generation.Options) (string, error) {
	f.lastOpts = opts
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func (f *fakeGenerator) Model() string  { return "google/flan-t5-large" }
func (f *fakeGenerator) MaxLength() int { return 500 }

// fakeRenderer returns canned PDF bytes or an error.
type fakeRenderer struct {
	out     []byte
	err     error
	lastRec *resume.Record
}

func (f *fakeRenderer) Render(rec *resume.Record) ([]byte, error) {
	f.lastRec = rec
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func newTestServer(sp Speller, gen Generator, rd Renderer) *Server {
	if sp == nil {
		sp = &fakeSpeller{}
	}
	if gen == nil {
		gen = &fakeGenerator{text: "generated"}
	}
	if rd == nil {
		rd = &fakeRenderer{out: []byte("%PDF-1.3 fake")}
	}
	return New(Config{Port: 0}, sp, gen, rd)
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	w := doJSON(t, s, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "google/flan-t5-large", resp.Model)
	assert.Equal(t, 500, resp.MaxLength)
}

func TestSpellCheckEndpoint(t *testing.T) {
	sp := &fakeSpeller{result: &spelling.Result{
		Original:   "teh text",
		Corrected:  "the text",
		Misspelled: []string{"teh"},
	}}
	s := newTestServer(sp, nil, nil)

	w := doJSON(t, s, http.MethodPost, "/spell-check", SpellCheckRequest{Text: "teh text"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp spelling.Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "teh text", resp.Original)
	assert.Equal(t, "the text", resp.Corrected)
	assert.Equal(t, []string{"teh"}, resp.Misspelled)
}

func TestSpellCheckEndpoint_ServiceFailure(t *testing.T) {
	sp := &fakeSpeller{err: &spelling.Error{Message: "correction failed", Cause: errors.New("boom")}}
	s := newTestServer(sp, nil, nil)

	w := doJSON(t, s, http.MethodPost, "/spell-check", SpellCheckRequest{Text: "text"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestSpellCheckEndpoint_MalformedBody(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/spell-check", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateTextEndpoint(t *testing.T) {
	gen := &fakeGenerator{text: "A seasoned engineer."}
	s := newTestServer(nil, gen, nil)

	w := doJSON(t, s, http.MethodPost, "/generate-text", GenerateTextRequest{
		Text:        "Write a summary",
		MaxLength:   200,
		Temperature: 0.4,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateTextResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "A seasoned engineer.", resp.GeneratedText)

	require.NotNil(t, gen.lastOpts)
	assert.Equal(t, 200, gen.lastOpts.MaxLength)
	assert.InDelta(t, 0.4, gen.lastOpts.Temperature, 0.0001)
}

func TestGenerateTextEndpoint_MissingPrompt(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	w := doJSON(t, s, http.MethodPost, "/generate-text", GenerateTextRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateTextEndpoint_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"transport failure", &generation.TransportError{Cause: errors.New("conn refused")}, http.StatusBadGateway},
		{"model warming up", &generation.NotReadyError{RetryAfter: 20}, http.StatusServiceUnavailable},
		{"upstream status", &generation.StatusError{StatusCode: 404, Message: "no model"}, http.StatusInternalServerError},
		{"not configured", &generation.ConfigError{Message: "API key not configured"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(nil, &fakeGenerator{err: tt.err}, nil)

			w := doJSON(t, s, http.MethodPost, "/generate-text", GenerateTextRequest{Text: "prompt"})
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestGenerateTextEndpoint_NotReadyCarriesRetryAfter(t *testing.T) {
	s := newTestServer(nil, &fakeGenerator{err: &generation.NotReadyError{RetryAfter: 20}}, nil)

	w := doJSON(t, s, http.MethodPost, "/generate-text", GenerateTextRequest{Text: "prompt"})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "20", w.Header().Get("Retry-After"))

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.EqualValues(t, 20, resp["retry_after"])
}

func TestGenerateResumeEndpoint(t *testing.T) {
	rd := &fakeRenderer{out: []byte("%PDF-1.3 fake")}
	s := newTestServer(nil, nil, rd)

	w := doJSON(t, s, http.MethodPost, "/generate-resume", resume.Simple{
		Name:        "Jane Doe",
		Summary:     "Engineer.",
		Experiences: []string{"Built things"},
		Education:   []string{"B.S."},
		Skills:      []string{"Go"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Jane_Doe_Resume.pdf", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.3 fake", w.Body.String())

	require.NotNil(t, rd.lastRec)
	assert.Equal(t, "Jane Doe", rd.lastRec.Name)
	assert.Equal(t, "Built things", rd.lastRec.Experience[0].Description)
}

func TestGenerateResumeEndpoint_MissingName(t *testing.T) {
	rd := &fakeRenderer{out: []byte("pdf")}
	s := newTestServer(nil, nil, rd)

	w := doJSON(t, s, http.MethodPost, "/generate-resume", resume.Simple{Summary: "Engineer."})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	// Validation fails before any render attempt.
	assert.Nil(t, rd.lastRec)
}

func TestGenerateResumeEndpoint_RenderFailure(t *testing.T) {
	rd := &fakeRenderer{err: errors.New("page overflow")}
	s := newTestServer(nil, nil, rd)

	w := doJSON(t, s, http.MethodPost, "/generate-resume", resume.Simple{
		Name:    "Jane Doe",
		Summary: "Engineer.",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodOptions, "/spell-check", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
