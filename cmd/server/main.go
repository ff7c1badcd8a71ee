package main

import (
	"context"
	"log"
	"os"

	"lifeos-backend/crypto"
	"lifeos-backend/handlers"
	"lifeos-backend/repository"
	"lifeos-backend/service"
	"lifeos-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	// Initialize document store
	ctx := context.Background()
	db, err := store.NewStoreFromEnv(ctx)
	if err != nil {
		log.Fatal("Failed to initialize document store:", err)
	}
	defer db.Close(ctx)
	log.Println("Document store connection established")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	reflectionRepo := repository.NewReflectionRepository(db)
	emailLogRepo := repository.NewEmailLogRepository(db)

	// Initialize services
	passwordHasher := crypto.NewPasswordHasherFromEnv()

	tokenService := service.NewTokenService(
		service.TokenWithTokenRepository(tokenRepo),
		service.TokenWithUserRepository(userRepo),
	)

	authService := service.NewAuthService(
		service.AuthWithUserRepository(userRepo),
		service.AuthWithCredentialRepository(credentialRepo),
		service.AuthWithTokenService(tokenService),
		service.AuthWithPasswordHasher(passwordHasher),
	)

	userService := service.NewUserService(
		service.UserWithUserRepository(userRepo),
	)

	sessionService := service.NewSessionService(
		service.SessionWithSessionRepository(sessionRepo),
		service.SessionWithUserRepository(userRepo),
		service.SessionWithEmailLogRepository(emailLogRepo),
	)

	reflectionService := service.NewReflectionService(
		service.ReflectionWithReflectionRepository(reflectionRepo),
		service.ReflectionWithUserRepository(userRepo),
	)

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	reflectionHandler := handlers.NewReflectionHandler(reflectionService)

	// Setup Gin router
	r := gin.Default()
	r.Use(handlers.CORS())

	// Public endpoints
	r.GET("/", systemHandler.Root)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Test)
	r.POST("/auth/signup", authHandler.Signup)
	r.POST("/auth/login", authHandler.Login)

	// Protected endpoints
	authed := r.Group("/", handlers.RequireAuth(tokenService))
	{
		authed.GET("/me", userHandler.Me)
		authed.GET("/dashboard", userHandler.Dashboard)
		authed.POST("/profile", userHandler.UpdateProfile)

		authed.POST("/sessions", sessionHandler.Create)
		authed.GET("/sessions", sessionHandler.List)

		authed.POST("/reflections", reflectionHandler.Create)
		authed.GET("/reflections", reflectionHandler.List)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
