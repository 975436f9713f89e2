package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"

	"mileage-logbook/internal/config"
	authmw "mileage-logbook/internal/middleware"
	"mileage-logbook/internal/models"
	"mileage-logbook/internal/modules/address"
	"mileage-logbook/internal/modules/mileage"
	"mileage-logbook/internal/modules/planner"
	"mileage-logbook/internal/modules/trip"
	"mileage-logbook/internal/modules/user"
	"mileage-logbook/pkg/distance"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	if err := applyMigrations(ctx, pool); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Repositories
	userRepo := user.NewRepository(pool)
	addressRepo := address.NewRepository(pool)
	tripRepo := trip.NewRepository(pool)

	// Services
	userSvc := user.NewService(userRepo, cfg.JWTSecret, cfg.JWTAudience)
	addressSvc := address.NewService(addressRepo)
	tripSvc := trip.NewService(tripRepo)
	mileageSvc := mileage.NewService(distance.NewClient(cfg.MapsAPIKey))
	plannerSvc := planner.NewService(planner.NewStore(), addressSvc, mileageSvc, tripSvc)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())
	e.Use(echomw.RateLimiter(echomw.NewRateLimiterMemoryStore(rate.Limit(20))))
	if cfg.ClientOrigin != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{cfg.ClientOrigin},
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		}))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Public routes: session bootstrap and the mileage oracle.
	api := e.Group("/api")
	api.GET("/config", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.PublicConfig{
			SupabaseURL:     cfg.SupabaseURL,
			SupabaseAnonKey: cfg.SupabaseAnonKey,
		})
	})
	user.NewHandler(userSvc).RegisterRoutes(api)
	mileage.NewHandler(mileageSvc).RegisterRoutes(api)

	// Everything user-scoped sits behind bearer verification.
	protected := e.Group("/api", authmw.JWT(cfg.JWTSecret, cfg.JWTAudience))
	address.NewHandler(addressSvc).RegisterRoutes(protected)
	trip.NewHandler(tripSvc).RegisterRoutes(protected)
	planner.NewHandler(plannerSvc).RegisterRoutes(protected)

	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// applyMigrations runs every migrations/*.sql file in name order. The files
// are written to be re-runnable (CREATE TABLE IF NOT EXISTS and the like).
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return err
		}
		log.Printf("Applied migration %s", file)
	}
	return nil
}
