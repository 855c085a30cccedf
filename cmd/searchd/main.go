package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/souqlane/search-engine/api"
	"github.com/souqlane/search-engine/config"
	"github.com/souqlane/search-engine/internal/embedding"
	"github.com/souqlane/search-engine/internal/search"
)

func main() {
	var (
		help       = flag.Bool("help", false, "Show help message")
		version    = flag.Bool("version", false, "Show version information")
		port       = flag.String("port", "", "Port to run the server on (overrides config)")
		configPath = flag.String("config", "", "Path to a YAML config file")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Souqlane Search Engine - hybrid text/fuzzy/semantic product search\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                              # Start server on default port 8080\n", os.Args[0])
		fmt.Printf("  %s --port 9000                  # Start server on port 9000\n", os.Args[0])
		fmt.Printf("  %s --config ./search.yaml       # Load weights and tables from a config file\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Souqlane Search Engine v1.0.0\n")
		fmt.Printf("Arabic/English text search with spelling correction, BM25 + fuzzy ranking, and embedding similarity\n")
		return
	}

	settings := &config.Settings{}
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		settings = loaded
	}
	settings.ApplyDefaults()
	if *port != "" {
		settings.Port = *port
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	var embedder search.Embedder
	if settings.Provider.Endpoint != "" {
		embedder = embedding.NewClient(
			settings.Provider.Endpoint,
			settings.APIKey(),
			embedding.WithTimeouts(
				time.Duration(settings.Provider.TextTimeoutSeconds)*time.Second,
				time.Duration(settings.Provider.ImageTimeoutSeconds)*time.Second,
			),
			embedding.WithLogger(logger),
		)
	} else {
		logger.Warn("no embedding provider configured; image, semantic, and hybrid search are unavailable")
	}

	service, err := search.NewService(settings, embedder, search.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to create search service", zap.Error(err))
	}

	router := gin.Default()
	api.SetupRoutes(router, service)

	logger.Info("starting server", zap.String("port", settings.Port))
	if err := router.Run(":" + settings.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
