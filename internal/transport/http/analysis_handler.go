package http

import (
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "salescli/internal/errors"
)

// AnalysisHandler handles sales export analysis requests.
type AnalysisHandler struct {
	service       AnalysisServiceInterface
	logger        *slog.Logger
	errorHandler  *apierrors.ErrorHandler
	maxUploadSize int64
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(service AnalysisServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler, maxUploadSize int64) *AnalysisHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = 10 << 20
	}
	return &AnalysisHandler{
		service:       service,
		logger:        logger.With(slog.String("component", "analysis_handler")),
		errorHandler:  errorHandler,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the analysis routes.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/", h.CreateAnalysis)

	return r
}

// CreateAnalysis handles POST /api/analyses. Accepts a multipart upload
// under the "file" field or a raw CSV body.
func (h *AnalysisHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, sourceName, err := h.exportBody(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	defer body.Close()

	h.logger.InfoContext(ctx, "analysis requested",
		slog.String("source", sourceName),
	)

	rep, err := h.service.AnalyzeReader(ctx, sourceName, body)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, rep)
}

// exportBody resolves the uploaded export and its source name from either a
// multipart form or the raw request body.
func (h *AnalysisHandler) exportBody(r *http.Request) (io.ReadCloser, string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			if errors.Is(err, multipart.ErrMessageTooLarge) {
				return nil, "", apierrors.ErrPayloadTooLarge
			}
			return nil, "", apierrors.InvalidRequestWithError(err)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", apierrors.ErrValidation("file", "A file upload is required")
		}
		if header.Size > h.maxUploadSize {
			file.Close()
			return nil, "", apierrors.ErrPayloadTooLarge
		}
		return file, sanitizeSourceName(header.Filename), nil
	}

	sourceName := r.URL.Query().Get("source")
	if sourceName == "" {
		sourceName = "upload.csv"
	}
	return http.MaxBytesReader(nil, r.Body, h.maxUploadSize), sanitizeSourceName(sourceName), nil
}

// sanitizeSourceName strips any path components from a client-supplied name.
func sanitizeSourceName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "upload.csv"
	}
	return name
}
