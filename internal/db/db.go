package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/solemate/solemate-backend/internal/domain"
	"github.com/solemate/solemate-backend/internal/pkg/envutil"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

// Service owns the database handle for the whole process. The default
// backend is a single-file sqlite store; setting DATABASE_URL to a
// postgres DSN switches drivers without touching the repositories.
type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewService(log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	dsn := envutil.String("DATABASE_URL", "")

	var (
		db  *gorm.DB
		err error
	)
	cfg := &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	}

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		serviceLog.Info("Connecting to Postgres...")
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	default:
		path := dsn
		if path == "" {
			path = envutil.String("SQLITE_PATH", "data/ecommerce_chat.db")
		}
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return nil, fmt.Errorf("create sqlite directory %q: %w", dir, mkErr)
			}
		}
		serviceLog.Info("Opening sqlite store", "path", path)
		db, err = gorm.Open(sqlite.Open(path), cfg)
	}
	if err != nil {
		serviceLog.Error("Failed to open database", "error", err)
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &Service{db: db, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(
		&domain.Product{},
		&domain.ChatMessage{},
	); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
