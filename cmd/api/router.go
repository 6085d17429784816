package api

import (
	"net/http"

	authDelivery "sellshot-backend/internal/auth/delivery"
	authUsecase "sellshot-backend/internal/auth/usecase"
	creditDelivery "sellshot-backend/internal/credits/delivery"
	creditUsecase "sellshot-backend/internal/credits/usecase"
	galleryDelivery "sellshot-backend/internal/gallery/delivery"
	galleryUsecase "sellshot-backend/internal/gallery/usecase"
	studioDelivery "sellshot-backend/internal/studio/delivery"
	studioUsecase "sellshot-backend/internal/studio/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, creditGate creditUsecase.CreditGate, galleryUc galleryUsecase.GalleryUsecase, transformUc studioUsecase.TransformUsecase, generateUc studioUsecase.GenerateUsecase) {
	authHandler := authDelivery.NewAuthHandler(authUc)
	creditHandler := creditDelivery.NewCreditHandler(creditGate)
	galleryHandler := galleryDelivery.NewGalleryHandler(galleryUc)
	studioHandler := studioDelivery.NewStudioHandler(transformUc, generateUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.DemoLogin)
			auth.POST("/register", authHandler.Register)
			auth.POST("/password-login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUc), authHandler.Me)
		}

		// Credit routes (protected)
		credits := api.Group("/credits")
		credits.Use(authDelivery.AuthMiddleware(authUc))
		{
			credits.GET("", creditHandler.GetBalance)
			credits.POST("/upgrade", creditHandler.Upgrade)
		}

		// Transform workflow routes (protected)
		studio := api.Group("/studio")
		studio.Use(authDelivery.AuthMiddleware(authUc))
		{
			studio.GET("", studioHandler.TransformState)
			studio.POST("/upload", studioHandler.Upload)
			studio.POST("/transform", studioHandler.Transform)
			studio.POST("/refine", studioHandler.RefineTransform)
			studio.POST("/reset", studioHandler.ResetTransform)
		}

		// Generate workflow routes (protected)
		generate := api.Group("/generate")
		generate.Use(authDelivery.AuthMiddleware(authUc))
		{
			generate.GET("", studioHandler.GenerateState)
			generate.POST("", studioHandler.Generate)
			generate.POST("/refine", studioHandler.RefineGenerate)
			generate.POST("/reset", studioHandler.ResetGenerate)
		}

		// Gallery routes (protected)
		gallery := api.Group("/gallery")
		gallery.Use(authDelivery.AuthMiddleware(authUc))
		{
			gallery.GET("", galleryHandler.List)
			gallery.DELETE("/:id", galleryHandler.Remove)
			gallery.GET("/:id/download", galleryHandler.Download)
		}
	}
}
