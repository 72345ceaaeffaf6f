package handler

import "github.com/google/uuid"

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// UploadResponse represents the document upload response.
type UploadResponse struct {
	JobID    uuid.UUID `json:"job_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Filename string    `json:"filename" example:"ausfuhranmeldung.pdf"`
	Status   string    `json:"status" example:"uploaded"`
}

// ExtractResponse represents the queue-for-extraction response.
type ExtractResponse struct {
	JobID  uuid.UUID `json:"job_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Status string    `json:"status" example:"queued"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
