package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

var (
	logOnce sync.Once
	logg    *logger.Logger
	logErr  error

	dbSeq atomic.Int64
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB opens a uniquely named in-memory sqlite database for one test and
// migrates the schema. Max open conns is pinned to 1 so the pool never
// hands out a second, empty in-memory database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, dbSeq.Add(1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&domain.Product{}, &domain.ChatMessage{}); err != nil {
		tb.Fatalf("migrate test db: %v", err)
	}
	return db
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, brand, category string, price float64, stock int) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		Name:        name,
		Brand:       brand,
		Category:    category,
		Size:        "42",
		Color:       "Negro",
		Price:       price,
		Stock:       stock,
		Description: name + " de " + brand,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedChatMessage(tb testing.TB, ctx context.Context, tx *gorm.DB, sessionID string, role domain.Role, message string, ts time.Time) *domain.ChatMessage {
	tb.Helper()
	m := &domain.ChatMessage{
		SessionID: sessionID,
		Role:      role,
		Message:   message,
		Timestamp: ts,
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed chat message: %v", err)
	}
	return m
}
