package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "salescli/internal/errors"
	"salescli/pkg/contracts/domain"
)

type stubAnalysisService struct {
	report     *domain.Report
	err        error
	gotSource  string
	gotPayload string
}

func (s *stubAnalysisService) AnalyzeReader(ctx context.Context, sourceName string, r io.Reader) (*domain.Report, error) {
	s.gotSource = sourceName
	payload, _ := io.ReadAll(r)
	s.gotPayload = string(payload)
	return s.report, s.err
}

func newTestHandler(service AnalysisServiceInterface) *AnalysisHandler {
	errorHandler := apierrors.NewErrorHandler(slog.Default(), false)
	return NewAnalysisHandler(service, slog.Default(), errorHandler, 1<<20)
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func sampleDomainReport() *domain.Report {
	return &domain.Report{
		ID:          "test-report-id",
		SourceName:  "january.csv",
		RecordCount: 2,
		Summary: domain.Summary{
			OperatingDays: 2,
			CalendarDays:  3,
		},
	}
}

func TestCreateAnalysis_MultipartUpload(t *testing.T) {
	stub := &stubAnalysisService{report: sampleDomainReport()}
	handler := newTestHandler(stub)

	body, contentType := multipartBody(t, "january.csv", "Date,Total Sales\n2024-01-01,100\n")
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "january.csv", stub.gotSource)
	assert.Contains(t, stub.gotPayload, "Total Sales")

	var got domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "test-report-id", got.ID)
	assert.Equal(t, 2, got.Summary.OperatingDays)
}

func TestCreateAnalysis_RawBody(t *testing.T) {
	stub := &stubAnalysisService{report: sampleDomainReport()}
	handler := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/?source=export.csv", strings.NewReader("Date,Total Sales\n2024-01-01,100\n"))
	req.Header.Set("Content-Type", "text/csv")

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "export.csv", stub.gotSource)
}

func TestCreateAnalysis_MissingFileField(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{report: sampleDomainReport()})

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("note", "no file here"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file upload is required")
}

func TestCreateAnalysis_AnalysisFailures(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		failureKind string
	}{
		{"empty input", apierrors.NewEmptyInputError(), "EMPTY_INPUT"},
		{"no date column", apierrors.NewNoDateColumnError(), "NO_DATE_COLUMN"},
		{"missing metric columns", apierrors.NewMissingMetricColumnsError("gross", "net"), "MISSING_METRIC_COLUMNS"},
		{"no usable dated rows", apierrors.NewNoUsableDatedRowsError(), "NO_USABLE_DATED_ROWS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(&stubAnalysisService{err: tt.err})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("whatever"))
			req.Header.Set("Content-Type", "text/csv")

			rec := httptest.NewRecorder()
			handler.Routes().ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

			var problem map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
			assert.Equal(t, tt.failureKind, problem["failure_kind"])
			assert.Equal(t, "Export Could Not Be Analyzed", problem["title"])
		})
	}
}

func TestCreateAnalysis_InternalError(t *testing.T) {
	handler := newTestHandler(&stubAnalysisService{err: io.ErrUnexpectedEOF})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("whatever"))
	req.Header.Set("Content-Type", "text/csv")

	rec := httptest.NewRecorder()
	handler.Routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSanitizeSourceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"january.csv", "january.csv"},
		{"../../etc/passwd", "passwd"},
		{"C:\\exports\\q1.xlsx", "q1.xlsx"},
		{"", "upload.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeSourceName(tt.in), tt.in)
	}
}
