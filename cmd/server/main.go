package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"                      // Loads .env files into the environment
	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // Built-in echo middleware

	"github.com/iliyamo/movie-catalog/internal/config"     // Internal config loader
	"github.com/iliyamo/movie-catalog/internal/database"   // MySQL pool construction
	"github.com/iliyamo/movie-catalog/internal/handler"    // Resource handlers
	"github.com/iliyamo/movie-catalog/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/movie-catalog/internal/repository" // Data access layer
	"github.com/iliyamo/movie-catalog/internal/router"     // Route registration
)

func main() {
	// A missing .env file is fine; variables may come from the real environment.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis is optional; rate limiting disables itself when the client is nil.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, rate limiting disabled")
	}

	movieHandler := handler.NewMovieHandler(repository.NewMovieRepo(db))
	directorHandler := handler.NewDirectorHandler(repository.NewDirectorRepo(db))
	genreHandler := handler.NewGenreHandler(repository.NewGenreRepo(db))

	e := echo.New()
	e.Use(echomw.Logger())  // request logging
	e.Use(echomw.Recover()) // a panicking request must not kill the process
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e, movieHandler, directorHandler, genreHandler)

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
