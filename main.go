package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "modernc.org/sqlite"

	"github.com/bobbygriffin/neuroflow/config"
	"github.com/bobbygriffin/neuroflow/handlers"
	"github.com/bobbygriffin/neuroflow/middleware"
	"github.com/bobbygriffin/neuroflow/repository"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.Load()

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		log.Fatal("Failed to create data directory:", err)
	}

	logger.Info("using database", "path", cfg.DBPath)

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize user repository:", err)
	}

	moodRepo, err := repository.NewMoodRepository(db)
	if err != nil {
		log.Fatal("Failed to initialize mood repository:", err)
	}

	logger.Info("database initialized successfully")

	if err := seedUser(cfg, userRepo, logger); err != nil {
		log.Fatal("Failed to seed user:", err)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userRepo, []byte(cfg.JWTSecret), cfg.TokenTTL, logger)
	moodHandler := handlers.NewMoodHandler(moodRepo, logger)
	legacyHandler := handlers.NewLegacyMoodHandler(moodRepo, logger)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Logger(logger))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/auth", authHandler.Login)

	if cfg.LegacyMode {
		// Legacy single-global-mood mode: no auth, no user scoping
		logger.Warn("legacy mode enabled, /mood is unauthenticated")
		r.Get("/mood", legacyHandler.Get)
		r.Post("/mood", legacyHandler.Post)
	} else {
		// Protected routes
		r.Route("/mood", func(r chi.Router) {
			r.Use(middleware.JWTAuth([]byte(cfg.JWTSecret), logger))

			r.Get("/", moodHandler.ListRecent)
			r.Post("/", moodHandler.Record)
		})
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	logger.Info("server starting", "port", cfg.Port)
	fmt.Printf("Server running at http://localhost:%s\n", cfg.Port)
	fmt.Println("  POST /auth   - exchange credentials for a token")
	fmt.Println("  GET  /mood   - list recent moods (token required)")
	fmt.Println("  POST /mood   - record a mood (token required)")

	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// openDB opens the shared sqlite handle with pool limits. Handlers acquire
// connections from this pool per request instead of dialing the store
// themselves.
func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// seedUser creates the configured user at startup when it does not exist
// yet. Users are otherwise created externally; this is the only write path
// into the users table.
func seedUser(cfg *config.Config, userRepo *repository.UserRepository, logger *slog.Logger) error {
	if cfg.SeedUsername == "" || cfg.SeedPassword == "" {
		return nil
	}

	ctx := context.Background()
	existing, err := userRepo.GetUserByUsername(ctx, cfg.SeedUsername)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	user, err := userRepo.CreateUser(ctx, cfg.SeedUsername, cfg.SeedPassword)
	if err != nil {
		return err
	}

	logger.Info("seeded user", "username", user.Username, "id", user.ID)
	return nil
}
