// The downloader fills the raw image directory from the Pexels search API.
// Images land in a flat directory and are sorted into per-species corpus
// directories by a separate classification step.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/phrogbot/phrogbot/internal/config"
	"github.com/phrogbot/phrogbot/internal/logger"
	"github.com/phrogbot/phrogbot/internal/pexels"
)

func main() {
	var (
		query  = flag.String("query", "frog", "search query")
		count  = flag.Int("count", 200, "how many images to download")
		outDir = flag.String("out", "assets/phrogs", "directory to save images into")
	)
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.PexelsAPIKey == "" {
		log.Fatal("PEXELS_API_KEY is not set")
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		zl.Fatal("failed to create output directory", zap.Error(err))
	}

	client := pexels.NewClient(cfg.PexelsAPIKey)
	zl.Info("downloading images", zap.String("query", *query), zap.Int("count", *count))

	downloaded := 0
	for page := 1; downloaded < *count; page++ {
		photos, err := client.Search(ctx, *query, page, pexels.MaxPerPage)
		if err != nil {
			zl.Fatal("search failed", zap.Int("page", page), zap.Error(err))
		}
		if len(photos) == 0 {
			zl.Info("no more photos available")
			break
		}

		for _, photo := range photos {
			if downloaded >= *count {
				break
			}

			filename := fmt.Sprintf("frog_%d.jpg", photo.ID)
			path := filepath.Join(*outDir, filename)
			if err := client.Download(ctx, photo.Src.Large2x, path); err != nil {
				zl.Warn("failed to download image", zap.String("file", filename), zap.Error(err))
				continue
			}

			downloaded++
			zl.Debug("downloaded", zap.String("file", filename))
		}
	}

	zl.Info("done", zap.Int("downloaded", downloaded))
}
