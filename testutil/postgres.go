// Package testutil spins up throwaway backing services for tests that
// need a real database. Everything here skips the calling test when
// docker is not available, so the pure-logic suites still run anywhere.
package testutil

import (
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/swapnil0000/urbannook-api/models"
)

const (
	dbUser     = "urbannook_user"
	dbPassword = "urbannook_pass"
	dbName     = "urbannook"
)

// StartPostgres launches a temporary Postgres container, migrates the
// schema, and returns a connected handle. The container is stopped
// when the test finishes.
func StartPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not available")
	}

	containerName := "urbannook-test-" + uuid.NewString()
	runArgs := []string{
		"run", "--rm", "-d",
		"-e", "POSTGRES_USER=" + dbUser,
		"-e", "POSTGRES_PASSWORD=" + dbPassword,
		"-e", "POSTGRES_DB=" + dbName,
		"-P",
		"--name", containerName,
		"postgres:16-alpine",
	}
	if err := exec.Command("docker", runArgs...).Run(); err != nil {
		t.Skipf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		_ = exec.Command("docker", "stop", containerName).Run()
	})

	hostPort := waitForPort(t, containerName)
	dsn := fmt.Sprintf("host=localhost port=%s user=%s password=%s dbname=%s sslmode=disable",
		hostPort, dbUser, dbPassword, dbName)

	db := waitForConnection(t, dsn)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Category{},
		&models.Cart{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Coupon{},
		&models.CouponRedemption{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentOrder{},
		&models.PaymentOrderItem{},
		&models.CommunityMember{},
		&models.NFCTag{},
		&models.Banner{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func waitForPort(t *testing.T, containerName string) string {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		out, err := exec.Command("docker", "port", containerName, "5432/tcp").Output()
		if err == nil {
			parts := strings.Split(strings.TrimSpace(string(out)), ":")
			if len(parts) >= 2 {
				return parts[len(parts)-1]
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatal("timeout waiting for postgres port")
	return ""
}

func waitForConnection(t *testing.T, dsn string) *gorm.DB {
	t.Helper()

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err == nil {
			if sqlDB, err := db.DB(); err == nil && sqlDB.Ping() == nil {
				return db
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatal("timeout waiting for postgres connection")
	return nil
}
