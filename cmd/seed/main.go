// Package main provides a CLI tool for seeding the database with initial data.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/id"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/core/types"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/domain/auth"
	"github.com/SinaGanjii/industrial-company-website-sub000/internal/infrastructure/storage/postgres"
	"github.com/SinaGanjii/industrial-company-website-sub000/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	poolCfg := postgres.DefaultPoolConfig(dbURL)
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := seedAdminUser(ctx, pool, log); err != nil {
		log.Fatalw("failed to seed admin user", "error", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoProducts(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo products", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedAdminUser(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "Admin123!"
	}

	var existingID id.ID
	err := pool.Pool.QueryRow(ctx,
		`SELECT id FROM sys_users WHERE username = $1`,
		adminUsername,
	).Scan(&existingID)
	if err == nil {
		log.Infow("admin user already exists", "username", adminUsername, "user_id", existingID)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("check admin exists: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID := id.New()
	now := time.Now().UTC()

	_, err = pool.Pool.Exec(ctx, `
		INSERT INTO sys_users (
			id, username, password_hash, display_name, role,
			is_active, failed_login_attempts, created_at, updated_at
		)
		VALUES ($1, $2, $3, 'Administrator', $4, true, 0, $5, $5)
	`, userID, adminUsername, string(passwordHash), auth.RoleAdmin, now)
	if err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}

	log.Infow("admin user created", "username", adminUsername, "user_id", userID)
	return nil
}

func seedDemoProducts(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	log.Info("seeding demo products...")

	products := []struct {
		name       string
		dimensions string
		material   string
		unitPrice  types.Money
	}{
		{"بلوک سیمانی ۲۰×۲۰×۴۰", "20x20x40", "concrete", types.NewMoney(85000)},
		{"بلوک سیمانی ۱۵×۲۰×۴۰", "15x20x40", "concrete", types.NewMoney(72000)},
		{"جدول بتنی ۵۰×۳۰", "50x30", "concrete", types.NewMoney(210000)},
		{"کفپوش بتنی ۴۰×۴۰", "40x40", "concrete", types.NewMoney(95000)},
	}

	now := time.Now().UTC()
	for _, p := range products {
		tag, err := pool.Pool.Exec(ctx, `
			INSERT INTO cat_products (id, version, created_at, updated_at, name, dimensions, material, unit_price)
			VALUES ($1, 1, $2, $2, $3, $4, $5, $6)
			ON CONFLICT (name) DO NOTHING
		`, id.New(), now, p.name, p.dimensions, p.material, p.unitPrice)
		if err != nil {
			return fmt.Errorf("insert product %q: %w", p.name, err)
		}
		if tag.RowsAffected() > 0 {
			log.Infow("product seeded", "name", p.name)
		}
	}

	return nil
}
