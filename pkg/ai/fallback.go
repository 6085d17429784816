package ai

import (
	"context"
	"log"
	"net"
	"strings"
)

// FallbackService routes image operations to a primary provider and retries
// a backup provider when the primary hits quota or connection failures.
type FallbackService struct {
	primary ImageService
	backup  ImageService
}

// NewFallbackService creates a fallback service. The backup may be nil, in
// which case primary errors are returned as-is.
func NewFallbackService(primary, backup ImageService) *FallbackService {
	return &FallbackService{
		primary: primary,
		backup:  backup,
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}

	// Check for network errors
	if _, ok := err.(net.Error); ok {
		return true
	}

	// Check for common connection error messages
	errStr := err.Error()
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"timeout",
		"dial tcp",
		"EOF",
	}

	for _, indicator := range connectionIndicators {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(indicator)) {
			return true
		}
	}

	return false
}

// isQuotaError checks if the error indicates API quota exhaustion (429)
func isQuotaError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"too many requests",
		"resource exhausted",
		"RESOURCE_EXHAUSTED",
	}

	for _, indicator := range quotaIndicators {
		if strings.Contains(strings.ToLower(errStr), strings.ToLower(indicator)) {
			return true
		}
	}

	return false
}

func (f *FallbackService) shouldFallBack(err error) bool {
	return f.backup != nil && (isQuotaError(err) || isConnectionError(err))
}

func (f *FallbackService) Analyze(ctx context.Context, imageDataURL string) ([]string, error) {
	result, err := f.primary.Analyze(ctx, imageDataURL)
	if err == nil {
		return result, nil
	}
	if f.shouldFallBack(err) {
		log.Printf("[AI] primary analyze failed: %v, falling back", err)
		return f.backup.Analyze(ctx, imageDataURL)
	}
	return nil, err
}

func (f *FallbackService) Edit(ctx context.Context, imageDataURL, instruction string) (string, error) {
	result, err := f.primary.Edit(ctx, imageDataURL, instruction)
	if err == nil {
		return result, nil
	}
	if f.shouldFallBack(err) {
		log.Printf("[AI] primary edit failed: %v, falling back", err)
		return f.backup.Edit(ctx, imageDataURL, instruction)
	}
	return "", err
}

func (f *FallbackService) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := f.primary.Generate(ctx, prompt)
	if err == nil {
		return result, nil
	}
	if f.shouldFallBack(err) {
		log.Printf("[AI] primary generate failed: %v, falling back", err)
		return f.backup.Generate(ctx, prompt)
	}
	return "", err
}
