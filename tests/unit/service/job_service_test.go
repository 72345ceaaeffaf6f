package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"zollkie/internal/config"
	"zollkie/internal/domain"
	"zollkie/internal/port"
	"zollkie/internal/service"
	"zollkie/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "eu-central-1",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 50,
		PresignExpiry: 3600,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

// pdfContent returns minimal valid PDF bytes.
func pdfContent() []byte {
	return []byte("%PDF-1.4 test content that is at least a few bytes long for detection purposes")
}

func newJobService() (service.JobService, *mocks.MockJobRepository, *mocks.MockResultRepository, *mocks.MockObjectStorage) {
	jobRepo := new(mocks.MockJobRepository)
	resultRepo := new(mocks.MockResultRepository)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	return service.NewJobService(jobRepo, resultRepo, storage, &cfg), jobRepo, resultRepo, storage
}

func TestJobService_Upload_Success(t *testing.T) {
	svc, jobRepo, _, storage := newJobService()

	file, header := createMultipartFile("declaration.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "https://test-bucket.s3.amazonaws.com/test", ETag: "abc"}, nil)

	job, err := svc.Upload(context.Background(), service.JobUploadInput{File: file, Header: header})

	require.NoError(t, err)
	assert.Equal(t, "declaration.pdf", job.OriginalName)
	assert.Equal(t, domain.FileTypePDF, job.FileType)
	assert.Equal(t, domain.JobStatusUploaded, job.Status)
	assert.Equal(t, "test-bucket", job.S3Bucket)
	assert.Contains(t, job.S3Key, job.ID.String())
	jobRepo.AssertExpectations(t)
	storage.AssertExpectations(t)
}

func TestJobService_Upload_UnsupportedExtension(t *testing.T) {
	svc, _, _, _ := newJobService()

	file, header := createMultipartFile("archive.zip", []byte("PK\x03\x04 content"), "application/zip")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.JobUploadInput{File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestJobService_Upload_FileTooLarge(t *testing.T) {
	jobRepo := new(mocks.MockJobRepository)
	resultRepo := new(mocks.MockResultRepository)
	storage := new(mocks.MockObjectStorage)
	cfg := testS3Config()
	cfg.MaxFileSizeMB = 0
	svc := service.NewJobService(jobRepo, resultRepo, storage, &cfg)

	file, header := createMultipartFile("declaration.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.JobUploadInput{File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestJobService_Upload_ContentMismatch(t *testing.T) {
	svc, _, _, _ := newJobService()

	// Extension claims PDF, content is PNG.
	png := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, bytes.Repeat([]byte{0x00}, 100)...)
	file, header := createMultipartFile("fake.pdf", png, "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.JobUploadInput{File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
}

func TestJobService_Upload_StorageFailureMarksJobFailed(t *testing.T) {
	svc, jobRepo, _, storage := newJobService()

	file, header := createMultipartFile("declaration.pdf", pdfContent(), "application/pdf")
	defer file.Close()

	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ExtractionJob")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(nil, context.DeadlineExceeded)
	jobRepo.On("MarkFailed", mock.Anything, mock.AnythingOfType("uuid.UUID"), domain.ErrUploadFailed.Error()).Return(nil)

	_, err := svc.Upload(context.Background(), service.JobUploadInput{File: file, Header: header})

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Queue_Success(t *testing.T) {
	svc, jobRepo, _, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusUploaded}, nil)
	jobRepo.On("MarkQueued", mock.Anything, jobID).Return(nil)

	job, err := svc.Queue(context.Background(), jobID)

	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, job.Status)
	jobRepo.AssertExpectations(t)
}

func TestJobService_Queue_NotFound(t *testing.T) {
	svc, jobRepo, _, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

	_, err := svc.Queue(context.Background(), jobID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestJobService_Queue_NotQueueable(t *testing.T) {
	svc, jobRepo, _, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusProcessing}, nil)
	jobRepo.On("MarkQueued", mock.Anything, jobID).Return(domain.ErrJobNotQueueable)

	_, err := svc.Queue(context.Background(), jobID)

	assert.ErrorIs(t, err, domain.ErrJobNotQueueable)
}

func TestJobService_GetResult_Ready(t *testing.T) {
	svc, jobRepo, resultRepo, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusCompleted}, nil)
	resultRepo.On("GetByJobID", mock.Anything, jobID).
		Return(&domain.ExtractionResult{JobID: jobID, Result: []byte(`{"status":"completed"}`)}, nil)

	res, err := svc.GetResult(context.Background(), jobID)

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"completed"}`, string(res.Result))
}

func TestJobService_GetResult_NotReadyWhileProcessing(t *testing.T) {
	svc, jobRepo, resultRepo, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusProcessing}, nil)
	resultRepo.On("GetByJobID", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

	_, err := svc.GetResult(context.Background(), jobID)

	assert.ErrorIs(t, err, domain.ErrResultNotReady)
}

func TestJobService_GetResult_NotFoundForFailedJob(t *testing.T) {
	svc, jobRepo, resultRepo, _ := newJobService()
	jobID := uuid.New()

	jobRepo.On("GetByID", mock.Anything, jobID).
		Return(&domain.ExtractionJob{ID: jobID, Status: domain.JobStatusFailed}, nil)
	resultRepo.On("GetByJobID", mock.Anything, jobID).Return(nil, domain.ErrNotFound)

	_, err := svc.GetResult(context.Background(), jobID)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
