package usecase

import (
	"context"
	"io"

	studiodomain "sellshot-backend/internal/studio/domain"
)

// TransformUsecase drives the photo-editing workflow:
// upload -> edit -> result, with a refine loop on result.
// Every operation returns a snapshot of the session for the client.
type TransformUsecase interface {
	// Upload validates and loads a product photo, then asks the AI for
	// prompt suggestions. Analysis is best-effort: its failure is recorded
	// on the session but the workflow still advances to the edit step.
	Upload(ctx context.Context, userID, filename, contentType string, file io.Reader) (*studiodomain.TransformSession, error)

	// Transform runs the edit operation on the uploaded image.
	Transform(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error)

	// Refine applies a follow-up edit to the current result.
	Refine(ctx context.Context, userID, prompt string) (*studiodomain.TransformSession, error)

	// Reset discards all workflow state, from any step.
	Reset(userID string) *studiodomain.TransformSession

	// State returns the current session snapshot.
	State(userID string) *studiodomain.TransformSession
}

// GenerateUsecase drives the from-scratch creation workflow:
// prompt -> result, with a refine loop on result.
type GenerateUsecase interface {
	Generate(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error)
	Refine(ctx context.Context, userID, prompt string) (*studiodomain.GenerateSession, error)
	Reset(userID string) *studiodomain.GenerateSession
	State(userID string) *studiodomain.GenerateSession
}
