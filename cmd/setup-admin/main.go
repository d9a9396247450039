// Command setup-admin provisions the back-office account. It replaces
// the whole admins collection, so rerunning it resets the password.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/imsanjayr/ShopVerse/internal/admin"
	"github.com/imsanjayr/ShopVerse/internal/config"
	"github.com/imsanjayr/ShopVerse/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	st, err := store.NewFileStore(cfg.DataDir)
	if err != nil {
		log.Fatalf("open data dir: %v", err)
	}

	repo := admin.NewStoreRepository(st)
	err = repo.ReplaceAll([]admin.Admin{{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	}})
	if err != nil {
		log.Fatalf("write admins: %v", err)
	}

	fmt.Println("Admin account created successfully!")
	fmt.Printf("Username: %s\n", username)
}
