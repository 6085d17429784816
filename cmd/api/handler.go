package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	authUsecase "sellshot-backend/internal/auth/usecase"
	creditUsecase "sellshot-backend/internal/credits/usecase"
	galleryUsecase "sellshot-backend/internal/gallery/usecase"
	studioUsecase "sellshot-backend/internal/studio/usecase"
	"sellshot-backend/pkg/ai"
	"sellshot-backend/pkg/config"
	"sellshot-backend/pkg/spa"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase      authUsecase.AuthUsecase
	creditGate       creditUsecase.CreditGate
	galleryUsecase   galleryUsecase.GalleryUsecase
	transformUsecase studioUsecase.TransformUsecase
	generateUsecase  studioUsecase.GenerateUsecase
	config           *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, creditGate creditUsecase.CreditGate, galleryUc galleryUsecase.GalleryUsecase, cfg *config.Config) *Handler {
	// Initialize the image backend
	imageService, err := ai.NewImageService(ai.Config{
		GeminiAPIKey:     cfg.GeminiApiKey,
		TextModel:        cfg.GeminiTextModel,
		ImageModel:       cfg.GeminiImageModel,
		BackupImageModel: cfg.GeminiBackupImageModel,
	})
	if err != nil {
		// The server still comes up; studio and generate endpoints reject
		// requests until a key is configured.
		log.Printf("[WARN] Failed to initialize AI service: %v", err)
	} else {
		log.Printf("AI service initialized (image model: %s)", cfg.GeminiImageModel)
	}

	transformUc := studioUsecase.NewTransformUsecase(imageService, creditGate, galleryUc)
	generateUc := studioUsecase.NewGenerateUsecase(imageService, creditGate, galleryUc)

	return &Handler{
		authUsecase:      authUc,
		creditGate:       creditGate,
		galleryUsecase:   galleryUc,
		transformUsecase: transformUc,
		generateUsecase:  generateUc,
		config:           cfg,
	}
}

// Run serves the API and the SPA bundle until ctx is cancelled, then shuts
// down gracefully.
func (h *Handler) Run(ctx context.Context, addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.creditGate, h.galleryUsecase, h.transformUsecase, h.generateUsecase)

	// Everything that is not an API route is the SPA bundle.
	r.NoRoute(spa.Handler(h.config.StaticDir))

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
