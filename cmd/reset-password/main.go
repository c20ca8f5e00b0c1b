package main

import (
	"flag"
	"log"

	"go-pos-backoffice/internal/repository"
	"go-pos-backoffice/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "profile username to reset")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("Usage: reset-password -username <username> -password <new password>")
	}
	if len(*password) < 6 {
		log.Fatal("Password must be at least 6 characters")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()

	// 3. Find profile
	profileRepo := repository.NewProfileRepo(db)
	profile, err := profileRepo.FindByUsername(*username)
	if err != nil {
		log.Fatalf("Profile %s not found in database: %v", *username, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := profileRepo.UpdatePassword(profile.ID, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s has been reset", *username)
}
