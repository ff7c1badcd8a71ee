package main

import (
	"context"
	"fmt"
	"log"

	"lifeos-backend/crypto"
	"lifeos-backend/repository"
	"lifeos-backend/service"
	"lifeos-backend/store"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: No .env file found, using environment variables: %v", err)
	}

	ctx := context.Background()
	db, err := store.NewStoreFromEnv(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer db.Close(ctx)

	email := "test@example.com"
	password := "testpassword123"
	name := "Test User"

	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	tokenService := service.NewTokenService(
		service.TokenWithTokenRepository(tokenRepo),
		service.TokenWithUserRepository(userRepo),
	)
	authService := service.NewAuthService(
		service.AuthWithUserRepository(userRepo),
		service.AuthWithCredentialRepository(credentialRepo),
		service.AuthWithTokenService(tokenService),
		service.AuthWithPasswordHasher(crypto.NewPasswordHasherFromEnv()),
	)

	result, err := authService.Signup(ctx, service.SignupRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Purpose:  "Growth",
	})
	if err != nil {
		if err == service.ErrEmailTaken {
			log.Printf("User with email %s already exists", email)
			return
		}
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("✅ Test user created successfully!\n")
	fmt.Printf("   ID: %s\n", result.UserID)
	fmt.Printf("   Email: %s\n", email)
	fmt.Printf("   Password: %s\n", password)
	fmt.Printf("   Token: %s\n", result.Token)
}
