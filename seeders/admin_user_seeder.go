package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func seedAdminUser(ctx context.Context, db *pgxpool.Pool) error {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	if email == "" {
		email = "admin@materieelbeheer.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is niet gezet; weiger een beheerder zonder wachtwoord aan te maken")
	}

	var existingID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE LOWER(email) = $1", email).Scan(&existingID)
	if err == nil {
		log.Printf("  - beheerder %q bestaat al, overgeslagen", email)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("bestaanscheck voor beheerder mislukt: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("wachtwoord hashen mislukt: %w", err)
	}

	_, err = db.Exec(ctx,
		"INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, 'admin')",
		"Beheerder", email, string(hash))
	if err != nil {
		return fmt.Errorf("beheerder invoegen mislukt: %w", err)
	}

	log.Printf("  - beheerder %q aangemaakt", email)
	return nil
}
