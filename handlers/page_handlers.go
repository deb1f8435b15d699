package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Akash-2201/Student-data-analysis/metrics"
)

// Flash categories, also the alert styles on the page
const (
	flashDanger  = "danger"
	flashWarning = "warning"
)

// pageField is the multipart field of the upload form
const pageField = "csv_file"

// Index handles GET /
func (h *APIHandler) Index(c *gin.Context) {
	session := sessions.Default(c)
	danger := flashStrings(session.Flashes(flashDanger))
	warning := flashStrings(session.Flashes(flashWarning))
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "Failed to clear flashes", slog.String("error", err.Error()))
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Danger":  danger,
		"Warning": warning,
		"Report":  nil,
	})
}

// Upload handles POST /: builds a report from the uploaded sheet and renders it.
// Problems are flashed and the user is sent back to the form.
func (h *APIHandler) Upload(c *gin.Context) {
	header, err := c.FormFile(pageField)
	if err != nil || header.Filename == "" {
		h.Metrics.ObserveUpload("", metrics.OutcomeNoFile)
		h.redirectWithFlash(c, flashDanger, "Please upload a CSV file.")
		return
	}

	report, err := h.buildReport(c.Request.Context(), header)
	if errors.Is(err, errNoStudents) {
		h.redirectWithFlash(c, flashWarning, "No student rows found in the CSV.")
		return
	}
	if errors.Is(err, errEncodeReport) {
		slog.ErrorContext(c.Request.Context(), "Error encoding report",
			slog.String("file", header.Filename),
			slog.String("error", err.Error()))
		h.redirectWithFlash(c, flashDanger, "Could not build the report for this CSV.")
		return
	}
	if err != nil {
		slog.WarnContext(c.Request.Context(), "Error reading upload",
			slog.String("file", header.Filename),
			slog.String("error", err.Error()))
		h.redirectWithFlash(c, flashDanger, "Could not read CSV: "+err.Error())
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Report": report,
	})
}

func (h *APIHandler) redirectWithFlash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	if err := session.Save(); err != nil {
		slog.WarnContext(c.Request.Context(), "Failed to save flash", slog.String("error", err.Error()))
	}
	c.Redirect(http.StatusFound, "/")
}

func flashStrings(flashes []interface{}) []string {
	out := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
