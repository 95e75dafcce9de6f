package main

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/mockmate/mockmate-api/internal/domain/entities"
	"github.com/mockmate/mockmate-api/internal/infrastructure/database"
	"github.com/mockmate/mockmate-api/pkg/config"
	pkgjwt "github.com/mockmate/mockmate-api/pkg/jwt"
)

func main() {
	log.Println("🚀 Starting test users creation...")

	// Load configuration from .env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("✅ Database connected successfully")

	// Initialize JWT manager
	jwtManager := pkgjwt.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Define test users, all share the same password
	testUsers := []struct {
		Email string
		Name  string
	}{
		{Email: "alice@test.local", Name: "Alice"},
		{Email: "bob@test.local", Name: "Bob"},
		{Email: "charlie@test.local", Name: "Charlie"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("test-password"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	for _, tu := range testUsers {
		user := entities.NewUser(tu.Email, tu.Name, string(hash))
		if err := db.Create(user).Error; err != nil {
			log.Printf("⚠️  Skipping %s: %v", tu.Email, err)
			continue
		}

		token, err := jwtManager.GenerateAccessToken(user.ID, user.Email)
		if err != nil {
			log.Fatalf("Failed to generate token for %s: %v", tu.Email, err)
		}

		fmt.Printf("✅ %s (%s)\n   token: %s\n", tu.Name, tu.Email, token)
	}

	log.Println("✅ Test users ready, password is 'test-password'")
}
