package tests

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/ekazakov/pr-reviewer-service/internal/repository"
)

// SetupTestDB connects to the test database, runs migrations and truncates
// all tables. The test is skipped when no database is reachable, so the
// integration suite is a no-op on machines without Postgres.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_USER", "postgres"),
		envOr("TEST_DB_PASSWORD", "postgres"),
		envOr("TEST_DB_NAME", "pr_service_test"),
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		t.Skipf("test database not reachable, skipping: %v", err)
	}

	if err := repository.Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	if err := CleanupTestDB(db); err != nil {
		_ = db.Close()
		t.Fatalf("failed to clean up database: %v", err)
	}

	t.Cleanup(func() {
		_ = CleanupTestDB(db)
		_ = db.Close()
	})

	return db
}

// CleanupTestDB truncates all tables in reverse dependency order.
func CleanupTestDB(db *sql.DB) error {
	tables := []string{
		"pr_reviewers",
		"pull_requests",
		"users",
		"teams",
	}

	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
