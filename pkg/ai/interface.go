package ai

import "context"

// ImageService is the interface for the generative image backend.
// Implement this interface to add new providers; all images cross the
// boundary as base64 data URLs.
type ImageService interface {
	// Analyze inspects a product photo and returns an ordered list of
	// suggested editing prompts, best first.
	Analyze(ctx context.Context, imageDataURL string) ([]string, error)

	// Edit applies a natural-language instruction to an image and returns
	// the resulting image.
	Edit(ctx context.Context, imageDataURL, instruction string) (string, error)

	// Generate creates a product image from a text prompt alone.
	Generate(ctx context.Context, prompt string) (string, error)
}

// ServiceError is any failure of the image backend. The message is surfaced
// verbatim to the user.
type ServiceError struct {
	Op      string
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError wraps an upstream failure for a given operation.
func NewServiceError(op, message string) *ServiceError {
	return &ServiceError{Op: op, Message: message}
}
