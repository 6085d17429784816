package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	api "sellshot-backend/cmd/api"
	authdomain "sellshot-backend/internal/auth/domain"
	authRepo "sellshot-backend/internal/auth/repository"
	authUsecase "sellshot-backend/internal/auth/usecase"
	creditRepo "sellshot-backend/internal/credits/repository"
	creditUsecase "sellshot-backend/internal/credits/usecase"
	galleryRepo "sellshot-backend/internal/gallery/repository"
	galleryUsecase "sellshot-backend/internal/gallery/usecase"
	"sellshot-backend/pkg/config"
	"sellshot-backend/pkg/database"
	"sellshot-backend/pkg/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize persistence. Without a DSN everything runs in memory,
	// which is enough for the demo deployment.
	var (
		kv       store.Store
		userRepo authRepo.UserRepository
	)
	if cfg.DatabaseDSN != "" {
		db, err := database.NewPostgresConnection(cfg)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}

		// Auto-migrate database schemas
		if err := db.AutoMigrate(&authdomain.User{}, &authdomain.RefreshToken{}, &store.Entry{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}

		kv = store.NewGormStore(db)
		userRepo = authRepo.NewUserRepository(db)
	} else {
		log.Printf("[WARN] DATABASE_DSN not configured, using in-memory persistence")
		kv = store.NewMemoryStore()
		userRepo = authRepo.NewMemoryUserRepository()
	}

	// Initialize repositories and use cases (dependency injection)
	creditRepository := creditRepo.NewStoreCreditRepository(kv, cfg.DefaultCredits)
	galleryRepository := galleryRepo.NewStoreGalleryRepository(kv)

	authUsecaseInstance := authUsecase.NewAuthUsecase(userRepo, cfg)
	creditGate := creditUsecase.NewCreditUsecase(creditRepository)
	galleryUsecaseInstance := galleryUsecase.NewGalleryUsecase(galleryRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, creditGate, galleryUsecaseInstance, cfg)

	// Start server, shutting down gracefully on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	addr := cfg.Host + ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := handler.Run(ctx, addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
