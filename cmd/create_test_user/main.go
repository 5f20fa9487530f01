package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"todo_backend/internal/db"
	"todo_backend/internal/domain"
	"todo_backend/internal/repository"
	"todo_backend/internal/service"
)

// Registers a user through the real repository and hasher, then prints a
// freshly issued token. Expects DATABASE_URL and JWT_SECRET env vars.
func main() {
	username := flag.String("username", "testuser", "username to create")
	password := flag.String("password", "pw123456", "password for the user")
	email := flag.String("email", "test@example.com", "email for the user")
	flag.Parse()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	users := repository.NewUserRepository(pool)
	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(secret, 20*time.Minute)
	auth := service.NewAuthService(users, hasher, tokens)

	ctx := context.Background()

	u, err := auth.Register(ctx, service.RegisterInput{
		Username: *username,
		Email:    *email,
		Password: *password,
		Role:     "tester",
	})
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Printf("user %s already exists\n", *username)
			u, err = users.GetByUsername(ctx, *username)
			if err != nil {
				log.Fatalf("fetch existing user: %v", err)
			}
		} else {
			log.Fatalf("register failed: %v", err)
		}
	} else {
		log.Printf("user created id=%d\n", u.ID)
	}

	token, err := tokens.Issue(u.Username, u.ID)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
