package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"zollkie/internal/csvexport"
	"zollkie/internal/extraction"
	"zollkie/internal/service"
)

// DocumentHandler handles document upload and extraction endpoints.
type DocumentHandler struct {
	jobService service.JobService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(jobService service.JobService) *DocumentHandler {
	return &DocumentHandler{jobService: jobService}
}

// Upload handles POST /api/v1/documents/upload
// @Summary Upload a document
// @Description Upload a document (PDF, JPG, PNG, DOCX, TXT) for key-information extraction
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to upload"
// @Success 201 {object} Response{data=UploadResponse} "Document uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file or unsupported type"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Router /documents/upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	job, err := h.jobService.Upload(c.Request.Context(), service.JobUploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, UploadResponse{
		JobID:    job.ID,
		Filename: job.OriginalName,
		Status:   string(job.Status),
	})
}

// Extract handles POST /api/v1/documents/:id/extract
// @Summary Queue a document for extraction
// @Description Queue an uploaded document for asynchronous key-information extraction
// @Tags documents
// @Produce json
// @Param id path string true "Job ID"
// @Success 202 {object} Response{data=ExtractResponse} "Extraction queued"
// @Failure 400 {object} ErrorResponseBody "Invalid job ID"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Failure 409 {object} ErrorResponseBody "Job already queued or processing"
// @Router /documents/{id}/extract [post]
func (h *DocumentHandler) Extract(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	job, err := h.jobService.Queue(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondAccepted(c, ExtractResponse{
		JobID:  job.ID,
		Status: string(job.Status),
	})
}

// GetJob handles GET /api/v1/documents/:id
// @Summary Get job status
// @Description Get the status of an extraction job
// @Tags documents
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} Response{data=domain.ExtractionJob} "Job status"
// @Failure 400 {object} ErrorResponseBody "Invalid job ID"
// @Failure 404 {object} ErrorResponseBody "Job not found"
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, job)
}

// GetResults handles GET /api/v1/documents/:id/results
// @Summary Get extraction results
// @Description Get the persisted extraction result document for a completed job
// @Tags documents
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} Response "Extraction result"
// @Failure 400 {object} ErrorResponseBody "Invalid job ID"
// @Failure 404 {object} ErrorResponseBody "Job or result not found"
// @Failure 409 {object} ErrorResponseBody "Result not ready yet"
// @Router /documents/{id}/results [get]
func (h *DocumentHandler) GetResults(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	res, err := h.jobService.GetResult(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	// The stored result is already the full response document.
	RespondOK(c, json.RawMessage(res.Result))
}

// ExportCSV handles GET /api/v1/documents/:id/export/csv
// @Summary Export extraction result as CSV
// @Description Export the field mapping summary of a completed job as a CSV file
// @Tags documents
// @Produce text/csv
// @Param id path string true "Job ID"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid job ID"
// @Failure 404 {object} ErrorResponseBody "Job or result not found"
// @Failure 409 {object} ErrorResponseBody "Result not ready yet"
// @Router /documents/{id}/export/csv [get]
func (h *DocumentHandler) ExportCSV(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_JOB_ID", "job id must be a valid UUID")
		return
	}

	job, err := h.jobService.GetByID(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	res, err := h.jobService.GetResult(c.Request.Context(), jobID)
	if err != nil {
		HandleError(c, err)
		return
	}

	var result extraction.JobResult
	if err := json.Unmarshal(res.Result, &result); err != nil {
		RespondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "stored result is not readable")
		return
	}

	filename := csvexport.BuildFilename(job.OriginalName)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}

	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteJobResult(&result); err != nil {
		return
	}
	w.Flush()
}
