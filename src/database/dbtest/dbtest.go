// Package dbtest connects integration tests to the TESTING database.
package dbtest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stockholdings/src/config"
	"stockholdings/src/database"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SetupTestDB returns a pool on a freshly truncated stocks table. The test is
// skipped when the database configured in appsettings.TESTING.yaml cannot be
// reached.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	cfg, err := loadTestConfig()
	if err != nil {
		t.Fatalf("Failed to load test configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.SetupDB(ctx, cfg)
	if err != nil {
		t.Skipf("Integration test - requires PostgreSQL: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.CreateSchema(ctx, pool); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	TruncateTables(t, pool)
	return pool
}

// TruncateTables empties every table the service owns.
func TruncateTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), "TRUNCATE TABLE stocks RESTART IDENTITY"); err != nil {
		t.Fatalf("Failed to truncate table stocks: %v", err)
	}
}

func loadTestConfig() (*config.Config, error) {
	serviceRoot, err := getServiceRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to get service root path: %w", err)
	}
	return config.LoadConfig(filepath.Join(serviceRoot, "settings"), "TESTING")
}

// getServiceRoot walks up from the working directory until it finds go.mod.
func getServiceRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return wd, nil
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return "", fmt.Errorf("go.mod not found in any parent directory")
		}
		wd = parent
	}
}
