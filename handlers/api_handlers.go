package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Akash-2201/Student-data-analysis/analysis"
	"github.com/Akash-2201/Student-data-analysis/db"
	"github.com/Akash-2201/Student-data-analysis/export"
	"github.com/Akash-2201/Student-data-analysis/ingest"
	"github.com/Akash-2201/Student-data-analysis/metrics"
	"github.com/Akash-2201/Student-data-analysis/models"
)

// uploadField is the multipart field the JSON API reads
const uploadField = "file"

var (
	errNoStudents   = errors.New("no student rows found")
	errFileTooLarge = errors.New("file exceeds the upload limit")
	errEncodeReport = errors.New("report could not be encoded")
)

// ReportStore caches built reports for later retrieval
type ReportStore interface {
	Save(ctx context.Context, report *models.Report) error
	Get(ctx context.Context, id string) (*models.Report, error)
}

// APIHandler holds the dependencies for the page and API handlers
type APIHandler struct {
	Reports        ReportStore // nil when the report cache is disabled
	Metrics        *metrics.Metrics
	MaxUploadBytes int64
}

// NewAPIHandler creates a new APIHandler
func NewAPIHandler(reports ReportStore, m *metrics.Metrics, maxUploadBytes int64) *APIHandler {
	return &APIHandler{
		Reports:        reports,
		Metrics:        m,
		MaxUploadBytes: maxUploadBytes,
	}
}

// buildReport reads an uploaded file and runs the analysis on it. The
// returned error wraps errNoStudents when the table has no rows.
func (h *APIHandler) buildReport(ctx context.Context, header *multipart.FileHeader) (*models.Report, error) {
	start := time.Now()
	format, _ := ingest.DetectFormat(header.Filename)

	content, err := h.readUpload(header)
	if err != nil {
		h.Metrics.ObserveUpload(format, metrics.OutcomeReadError)
		return nil, err
	}
	table, err := ingest.Load(header.Filename, bytes.NewReader(content))
	if err != nil {
		h.Metrics.ObserveUpload(format, metrics.OutcomeReadError)
		return nil, err
	}
	report, err := analysis.BuildReport(table)
	if err != nil {
		h.Metrics.ObserveUpload(format, metrics.OutcomeReadError)
		return nil, err
	}
	if report.Students.Len() == 0 {
		h.Metrics.ObserveUpload(format, metrics.OutcomeNoData)
		return report, errNoStudents
	}
	if _, err := json.Marshal(report); err != nil {
		h.Metrics.ObserveUpload(format, metrics.OutcomeReadError)
		return nil, fmt.Errorf("%w: %v", errEncodeReport, err)
	}

	report.ID = db.ReportID(content)
	h.Metrics.ObserveUpload(format, metrics.OutcomeOK)
	h.Metrics.ObserveReport(report.Students.Len(), time.Since(start))
	slog.InfoContext(ctx, "Built report",
		slog.String("report_id", report.ID),
		slog.String("file", header.Filename),
		slog.Int("students", report.Students.Len()),
		slog.Int("subjects", len(report.Subjects)))

	h.cacheReport(ctx, report)
	return report, nil
}

func (h *APIHandler) readUpload(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, h.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(content)) > h.MaxUploadBytes {
		return nil, errFileTooLarge
	}
	return content, nil
}

// cacheReport stores the report when a cache is configured. A failed save
// clears the ID so no page links to a report that cannot be fetched.
func (h *APIHandler) cacheReport(ctx context.Context, report *models.Report) {
	if h.Reports == nil {
		report.ID = ""
		return
	}
	if err := h.Reports.Save(ctx, report); err != nil {
		slog.WarnContext(ctx, "Report not cached",
			slog.String("report_id", report.ID),
			slog.String("error", err.Error()))
		report.ID = ""
	}
}

// --- Report Handlers ---

// CreateReport handles POST /api/reports
func (h *APIHandler) CreateReport(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		h.Metrics.ObserveUpload("", metrics.OutcomeNoFile)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing '" + uploadField + "' in form data"})
		return
	}

	report, err := h.buildReport(c.Request.Context(), header)
	if errors.Is(err, errNoStudents) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No student rows found in the file", "subjects": report.Subjects})
		return
	}
	if err != nil {
		h.uploadError(c, header.Filename, err)
		return
	}

	writeJSON(c, http.StatusOK, report)
}

// uploadError answers a failed upload: 500 when the report could not be
// encoded, 400 when the file could not be read.
func (h *APIHandler) uploadError(c *gin.Context, filename string, err error) {
	if errors.Is(err, errEncodeReport) {
		slog.ErrorContext(c.Request.Context(), "Error encoding report",
			slog.String("file", filename),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode report"})
		return
	}
	slog.WarnContext(c.Request.Context(), "Error reading upload",
		slog.String("file", filename),
		slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file: " + err.Error()})
}

// writeJSON encodes before writing, so a value that cannot be encoded
// still gets an error status instead of an empty 200.
func writeJSON(c *gin.Context, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Error encoding response", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode response"})
		return
	}
	c.Data(status, "application/json; charset=utf-8", data)
}

// GetReport handles GET /api/reports/:reportId
func (h *APIHandler) GetReport(c *gin.Context) {
	report, ok := h.lookupReport(c)
	if !ok {
		return
	}
	writeJSON(c, http.StatusOK, report)
}

// GetReportWorkbook handles GET /api/reports/:reportId/workbook
func (h *APIHandler) GetReportWorkbook(c *gin.Context) {
	report, ok := h.lookupReport(c)
	if !ok {
		return
	}
	h.writeWorkbook(c, report)
}

// CreateWorkbook handles POST /api/reports/workbook
func (h *APIHandler) CreateWorkbook(c *gin.Context) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		h.Metrics.ObserveUpload("", metrics.OutcomeNoFile)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing '" + uploadField + "' in form data"})
		return
	}

	report, err := h.buildReport(c.Request.Context(), header)
	if err != nil && !errors.Is(err, errNoStudents) {
		h.uploadError(c, header.Filename, err)
		return
	}
	h.writeWorkbook(c, report)
}

func (h *APIHandler) lookupReport(c *gin.Context) (*models.Report, bool) {
	if h.Reports == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Report cache is disabled"})
		return nil, false
	}
	reportID := c.Param("reportId")
	report, err := h.Reports.Get(c.Request.Context(), reportID)
	if errors.Is(err, db.ErrReportNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return nil, false
	}
	if err != nil {
		slog.ErrorContext(c.Request.Context(), "Error in GetReport handler",
			slog.String("report_id", reportID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve report"})
		return nil, false
	}
	return report, true
}

func (h *APIHandler) writeWorkbook(c *gin.Context, report *models.Report) {
	var buf bytes.Buffer
	if err := export.WriteWorkbook(report, &buf); err != nil {
		slog.ErrorContext(c.Request.Context(), "Error writing workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	name := "report.xlsx"
	if report.ID != "" {
		name = "report-" + report.ID + ".xlsx"
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

// --- Ping Handler ---

// PingHandler handles GET /api/ping
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Pong!"})
}
