package main

import (
	"context"

	"github.com/noobdev/site-api/internal/config"
	"github.com/noobdev/site-api/internal/notion"
	"github.com/noobdev/site-api/internal/service"
	"github.com/noobdev/site-api/pkg/logger"
)

// One-shot static export: materializes every published post to a file tree
// so production builds can serve blog content without the live CMS. Any
// failure aborts the run with a nonzero exit.
func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	source := notion.NewSource(&cfg.Notion, log)
	export := service.NewExportService(source, log)

	if err := export.Run(context.Background(), cfg.Export.OutputDir); err != nil {
		log.Fatal().Err(err).Msg("Static export failed")
	}
}
