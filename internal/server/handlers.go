package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"ghstats/internal/generator"
	"ghstats/internal/github"
	"ghstats/internal/pipeline"

	"go.uber.org/zap"
)

var errMissingParam = errors.New("missing query parameter")

type errorResponse struct {
	Error     string                  `json:"error"`
	RequestID string                  `json:"request_id,omitempty"`
	Report    *pipeline.ProfileReport `json:"report,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRepo(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.requireParam(w, r, "url")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	repo, err := s.svc.RepoStats(ctx, raw)
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	writeJSON(w, http.StatusOK, repo)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireParam(w, r, "user")
	if !ok {
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	report, err := s.svc.AnalyzeProfile(ctx, user)
	if err != nil {
		s.writeError(w, r, err, report)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	md, err := s.svc.Readme(generator.ReadmeOptions{
		Name:   q.Get("name"),
		Owner:  q.Get("owner"),
		Author: q.Get("author"),
	})
	if err != nil {
		s.writeError(w, r, err, nil)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(md))
}

func (s *Server) requireParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		s.writeError(w, r, fmt.Errorf("%w: %s", errMissingParam, name), nil)
		return "", false
	}
	return v, true
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.requestTimeout)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, report *pipeline.ProfileReport) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Warn("request failed",
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Int("status", status),
			zap.Error(err))
	}
	writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		RequestID: requestIDFrom(r.Context()),
		Report:    report,
	})
}

// statusFor maps the error kinds of the pipeline onto HTTP statuses.
// Anything unrecognized came from GitHub or the AI provider.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errMissingParam),
		errors.Is(err, github.ErrInvalidURL),
		errors.Is(err, pipeline.ErrEmptyInput),
		errors.Is(err, generator.ErrEmptyRepoName):
		return http.StatusBadRequest
	case errors.Is(err, github.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, pipeline.ErrAnalyzerUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
