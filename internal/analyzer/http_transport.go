package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Bahjat/fashionhub-e2e/internal/model"
	"github.com/Bahjat/fashionhub-e2e/internal/platform/errs"
)

const checkTimeout = 60 * time.Second

var errURLRequired = errors.New("the \"url\" field is required")

// Transport serves link checks over HTTP.
type Transport struct {
	service *Service
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service.
func NewTransport(service *Service, logger *slog.Logger) *Transport {
	return &Transport{service: service, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /links/check", t.handleCheckLinks)
	mux.HandleFunc("GET /healthz", t.handleHealth)
}

type checkRequest struct {
	URL string `json:"url"`
	// FailOnBroken turns a report with broken links into a 422 response, for
	// callers that only look at the status code.
	FailOnBroken bool `json:"fail_on_broken"`
}

// brokenLinksResponse is the 422 body: the usual error fields plus the report.
type brokenLinksResponse struct {
	model.ErrorResponse
	Report *model.LinkReport `json:"report"`
}

func (r checkRequest) validate() error {
	if r.URL == "" {
		return errURLRequired
	}
	return nil
}

func (t *Transport) handleCheckLinks(w http.ResponseWriter, r *http.Request) {
	const maxRequestBody = 1 << 20 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.renderError(w, http.StatusBadRequest, "Invalid request body. Please send a JSON object with a \"url\" field.")
		return
	}

	if err := req.validate(); err != nil {
		t.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	report, err := t.service.CheckLinks(ctx, req.URL)
	if err != nil {
		t.handleServiceError(w, err)
		return
	}

	if req.FailOnBroken && report.HasBroken() {
		status := http.StatusUnprocessableEntity
		t.renderJSON(w, status, brokenLinksResponse{
			ErrorResponse: model.ErrorResponse{
				Error:      http.StatusText(status),
				StatusCode: status,
				Message:    fmt.Sprintf("Found %d broken link(s)", len(report.Broken)),
			},
			Report: report,
		})
		return
	}

	t.renderJSON(w, http.StatusOK, report)
}

func (t *Transport) handleHealth(w http.ResponseWriter, _ *http.Request) {
	t.renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case errs.InvalidInput:
			status = http.StatusBadRequest
		case errs.Unreachable:
			status = http.StatusBadGateway
		case errs.Timeout:
			status = http.StatusGatewayTimeout
		case errs.ParsingFailed, errs.Unknown, errs.BrokenLinks, errs.Upstream:
			// 500 Internal Server Error
		}
		t.renderError(w, status, appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}
