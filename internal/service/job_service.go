package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"zollkie/internal/config"
	"zollkie/internal/domain"
	"zollkie/internal/port"
)

// JobUploadInput is the DTO for document upload requests.
type JobUploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// JobService defines the extraction job lifecycle contract.
type JobService interface {
	Upload(ctx context.Context, input JobUploadInput) (*domain.ExtractionJob, error)
	Queue(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionJob, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionJob, error)
	GetResult(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionResult, error)
}

type jobService struct {
	jobRepo    port.JobRepository
	resultRepo port.ResultRepository
	storage    port.ObjectStorage
	cfg        *config.S3Config
}

// NewJobService creates a new JobService implementation.
func NewJobService(
	jobRepo port.JobRepository,
	resultRepo port.ResultRepository,
	storage port.ObjectStorage,
	cfg *config.S3Config,
) JobService {
	return &jobService{
		jobRepo:    jobRepo,
		resultRepo: resultRepo,
		storage:    storage,
		cfg:        cfg,
	}
}

func (s *jobService) Upload(ctx context.Context, input JobUploadInput) (*domain.ExtractionJob, error) {
	// Validate file extension
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Header.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return nil, domain.ErrUnsupportedFileType
	}

	// Validate file size
	maxBytes := s.cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	// Read first 512 bytes for magic-byte content type detection. DOCX files
	// detect as zip and plain text as a charset-qualified text type, so the
	// check is advisory for those two.
	buf := make([]byte, 512)
	n, err := input.File.Read(buf)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading file header: %w", err)
	}
	detectedType := http.DetectContentType(buf[:n])
	if !contentTypePlausible(fileType, detectedType) {
		return nil, domain.ErrUnsupportedFileType
	}

	// Seek back to beginning for upload
	if _, err := input.File.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking file: %w", err)
	}

	jobID := uuid.New()
	s3Key := fmt.Sprintf("jobs/%s/%s", jobID, input.Header.Filename)
	contentType := domain.AllowedFileTypes[fileType]

	job := &domain.ExtractionJob{
		ID:           jobID,
		FileName:     jobID.String() + "." + ext,
		OriginalName: input.Header.Filename,
		FileType:     fileType,
		FileSize:     input.Header.Size,
		ContentType:  contentType,
		S3Bucket:     s.cfg.Bucket,
		S3Key:        s3Key,
		Status:       domain.JobStatusUploaded,
	}

	log.Printf("jobService.Upload: uploading %s (%s, %d bytes) as job %s",
		input.Header.Filename, contentType, input.Header.Size, jobID)

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         s3Key,
		Body:        input.File,
		ContentType: contentType,
		Size:        input.Header.Size,
	})
	if err != nil {
		log.Printf("jobService.Upload: storage upload failed for job %s: %v", jobID, err)
		if markErr := s.jobRepo.MarkFailed(ctx, jobID, domain.ErrUploadFailed.Error()); markErr != nil {
			log.Printf("jobService.Upload: marking job %s failed: %v", jobID, markErr)
		}
		return nil, domain.ErrUploadFailed
	}

	return job, nil
}

// contentTypePlausible checks the sniffed content type against the declared
// file type where sniffing is reliable.
func contentTypePlausible(fileType domain.FileType, detected string) bool {
	switch fileType {
	case domain.FileTypePDF:
		return detected == "application/pdf"
	case domain.FileTypeJPG:
		return detected == "image/jpeg"
	case domain.FileTypePNG:
		return detected == "image/png"
	case domain.FileTypeDOCX:
		return detected == "application/zip" ||
			strings.HasPrefix(detected, "application/vnd.openxmlformats")
	case domain.FileTypeTXT:
		return strings.HasPrefix(detected, "text/plain")
	}
	return false
}

func (s *jobService) Queue(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionJob, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if err := s.jobRepo.MarkQueued(ctx, jobID); err != nil {
		return nil, err
	}

	log.Printf("jobService.Queue: job %s queued for extraction", jobID)
	job.Status = domain.JobStatusQueued
	return job, nil
}

func (s *jobService) GetByID(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionJob, error) {
	return s.jobRepo.GetByID(ctx, jobID)
}

func (s *jobService) GetResult(ctx context.Context, jobID uuid.UUID) (*domain.ExtractionResult, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	res, err := s.resultRepo.GetByJobID(ctx, jobID)
	if err != nil {
		if job.Status == domain.JobStatusQueued || job.Status == domain.JobStatusProcessing {
			return nil, domain.ErrResultNotReady
		}
		return nil, err
	}
	return res, nil
}
