package handler_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zollkie/internal/csvexport"
	"zollkie/internal/domain"
	"zollkie/internal/extraction"
	"zollkie/internal/handler"
	"zollkie/internal/schema"
	"zollkie/mocks"
)

func newDocumentHandler() (*handler.DocumentHandler, *mocks.MockJobService) {
	jobSvc := new(mocks.MockJobService)
	return handler.NewDocumentHandler(jobSvc), jobSvc
}

func TestDocumentHandler_Upload_Success(t *testing.T) {
	h, jobSvc := newDocumentHandler()

	jobID := uuid.New()
	expected := &domain.ExtractionJob{
		ID:           jobID,
		FileName:     jobID.String() + ".pdf",
		OriginalName: "declaration.pdf",
		FileType:     domain.FileTypePDF,
		Status:       domain.JobStatusUploaded,
	}
	jobSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.JobUploadInput")).
		Return(expected, nil)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "declaration.pdf")
	part.Write([]byte("%PDF-1.4 test content"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/upload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, jobID.String(), data["job_id"])
	assert.Equal(t, "declaration.pdf", data["filename"])
	assert.Equal(t, "uploaded", data["status"])
	jobSvc.AssertExpectations(t)
}

func TestDocumentHandler_Upload_NoFile(t *testing.T) {
	h, _ := newDocumentHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/upload", nil)

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Upload_UnsupportedType(t *testing.T) {
	h, jobSvc := newDocumentHandler()

	jobSvc.On("Upload", mock.Anything, mock.AnythingOfType("service.JobUploadInput")).
		Return(nil, domain.ErrUnsupportedFileType)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, _ := writer.CreateFormFile("file", "archive.zip")
	part.Write([]byte("PK content"))
	writer.Close()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/upload", body)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())

	h.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestDocumentHandler_Extract_Success(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("Queue", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusQueued}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/"+jobID.String()+"/extract", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.Extract(c)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "queued", data["status"])
	jobSvc.AssertExpectations(t)
}

func TestDocumentHandler_Extract_InvalidID(t *testing.T) {
	h, _ := newDocumentHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/not-a-uuid/extract", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.Extract(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentHandler_Extract_NotFound(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("Queue", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/"+jobID.String()+"/extract", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.Extract(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentHandler_Extract_AlreadyProcessing(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("Queue", mock.Anything, jobID).Return(nil, domain.ErrJobNotQueueable)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/documents/"+jobID.String()+"/extract", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.Extract(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDocumentHandler_GetJob_Success(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusCompleted}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+jobID.String(), http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.GetJob(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, "completed", data["status"])
}

func TestDocumentHandler_GetResults_Success(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	stored := `{"job_id":"` + jobID.String() + `","status":"completed","extracted_data":[]}`
	jobSvc.On("GetResult", mock.Anything, jobID).
		Return(&domain.ExtractionResult{JobID: jobID, Result: []byte(stored)}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+jobID.String()+"/results", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.GetResults(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "completed", data["status"])
}

func TestDocumentHandler_GetResults_NotReady(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("GetResult", mock.Anything, jobID).Return(nil, domain.ErrResultNotReady)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+jobID.String()+"/results", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.GetResults(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "RESULT_NOT_READY", resp.Error.Code)
}

func TestDocumentHandler_ExportCSV_Success(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	result := extraction.JobResult{
		JobID:  jobID.String(),
		Status: "completed",
		ExtractedData: []extraction.PageResult{
			{
				CustomsFormat: extraction.CustomsFormat{
					Document: schema.NewDocument(),
					MappingMetadata: &extraction.MappingMetadata{
						MappedFields: map[string]extraction.MappedField{
							"LRN": {SchemaField: "lrn", OriginalValue: "DE12345", MappedSuccessfully: true},
						},
						UnmappedFields:         map[string]any{},
						FieldMappingConfidence: map[string]string{"LRN": "high"},
					},
				},
			},
		},
	}
	stored, err := json.Marshal(result)
	require.NoError(t, err)

	jobSvc.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, OriginalName: "Ausfuhr Q3.pdf", Status: domain.JobStatusCompleted}, nil)
	jobSvc.On("GetResult", mock.Anything, jobID).
		Return(&domain.ExtractionResult{JobID: jobID, Result: stored}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+jobID.String()+"/export/csv", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.ExportCSV(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Ausfuhr_Q3")
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".csv")

	body := w.Body.Bytes()
	require.True(t, len(body) >= 3)
	assert.Equal(t, csvexport.BOM, body[:3])

	r := csv.NewReader(strings.NewReader(string(body[3:])))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2) // header + 1 mapped field

	assert.Equal(t, "Page", records[0][0])
	assert.Equal(t, "LRN", records[1][1])
	assert.Equal(t, "DE12345", records[1][2])
	assert.Equal(t, "lrn", records[1][3])
}

func TestDocumentHandler_ExportCSV_NotReady(t *testing.T) {
	h, jobSvc := newDocumentHandler()
	jobID := uuid.New()

	jobSvc.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusQueued}, nil)
	jobSvc.On("GetResult", mock.Anything, jobID).Return(nil, domain.ErrResultNotReady)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/documents/"+jobID.String()+"/export/csv", http.NoBody)
	c.Params = gin.Params{{Key: "id", Value: jobID.String()}}

	h.ExportCSV(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
