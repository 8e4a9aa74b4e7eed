package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/db"
	internalhttp "github.com/solemate/solemate-backend/internal/http"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *internalhttp.Server
	Cfg      Config
	Repos    Repos
	Services Services
}

func New() (*App, error) {
	cfg := LoadConfig()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	dbsvc, err := db.NewService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := dbsvc.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := dbsvc.DB()

	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet)
	if err != nil {
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(serviceset)

	server := internalhttp.NewServer(internalhttp.RouterConfig{
		Log:            log,
		HealthHandler:  handlerset.Health,
		ProductHandler: handlerset.Product,
		ChatHandler:    handlerset.Chat,
	})

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   server,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("starting http server", "port", a.Cfg.Port)
	return a.Server.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
