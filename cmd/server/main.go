package main

import (
	"context"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/cache"
	"ukdtimers/internal/config"
	"ukdtimers/internal/handler"
	"ukdtimers/internal/repository"
	"ukdtimers/internal/router"
	"ukdtimers/internal/service"
	"ukdtimers/internal/sheets"
	"ukdtimers/internal/store"
)

// @title UKD Absence Tracker API
// @version 1.0
// @description Attendance and absence (Н-ки) tracking for UKD: dashboard, user and absence management, sheet import.
// @host localhost:3000
// @BasePath /
// @schemes http
func main() {
	cfg := config.Load()

	docStore, err := store.Open(store.Options{
		Backend:  cfg.StoreBackend,
		FilePath: cfg.DatabaseFile,
		BoltPath: cfg.BoltPath,
		MySQLDSN: cfg.MySQLDSN,
	})
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	defer docStore.Close()
	log.Printf("using %s store", cfg.StoreBackend)

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unavailable, logout revocation disabled: %v", err)
	}

	docRepo := repository.NewDocumentRepository(docStore)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.SessionSecret, cfg.SessionTTL)
	sessions := auth.NewSessionManager(jwtService, auth.NewTokenStore(cacheClient))

	// Initialize services
	userService := service.NewUserService(docRepo)
	absenceService := service.NewAbsenceService(docRepo, cfg.ResolveRequiresStaff)
	dashboardService := service.NewDashboardService(docRepo)
	syncService := service.NewSyncService(docRepo, sheets.NewClient(cfg.SheetExportURL, sheets.DefaultTimeout))
	if !cfg.ResolveRequiresStaff {
		log.Println("absence resolution is open to every caller; set RESOLVE_REQUIRES_STAFF=true to restrict it")
	}

	e := echo.New()
	router.Register(e, cfg, sessions, router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Auth:      handler.NewAuthHandler(userService, sessions),
		User:      handler.NewUserHandler(userService),
		Absence:   handler.NewAbsenceHandler(absenceService),
		Sync:      handler.NewSyncHandler(syncService),
	})

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: http://%s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
