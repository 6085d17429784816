package ai

import (
	"fmt"

	"sellshot-backend/pkg/gemini"
)

// Config holds image provider configuration
type Config struct {
	GeminiAPIKey string

	TextModel        string // e.g. "gemini-2.5-flash", used for analysis
	ImageModel       string // e.g. "gemini-2.5-flash-image"
	BackupImageModel string // optional, retried on quota/connection errors
}

// NewImageService creates an ImageService based on the config. When a backup
// image model is configured the service falls back to it automatically.
func NewImageService(cfg Config) (ImageService, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	primary := gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.TextModel, cfg.ImageModel)
	if cfg.BackupImageModel == "" || cfg.BackupImageModel == cfg.ImageModel {
		return primary, nil
	}

	backup := gemini.NewGeminiService(cfg.GeminiAPIKey, cfg.TextModel, cfg.BackupImageModel)
	return NewFallbackService(primary, backup), nil
}
