package main

import (
	"log"
	"net/http"

	"studio/internal/config"
	"studio/internal/content"
	"studio/internal/gql"
	"studio/internal/presentation"
	"studio/internal/web"
)

func main() {
	cfg := config.Load()

	published := gql.NewClient(cfg, gql.PerspectivePublished)
	drafts := gql.NewClient(cfg, gql.PerspectiveDrafts)
	contentService := content.NewService(published, drafts, cfg.PreviewOrigin)

	handler, err := web.NewHandler(web.Options{
		Preview: presentation.Config{
			ProjectID:     cfg.ProjectID,
			Dataset:       cfg.Dataset,
			PreviewOrigin: cfg.PreviewOrigin,
			AllowOrigins:  cfg.AllowOrigins,
			StudioOrigins: cfg.StudioOrigins,
		},
		DraftSecret: cfg.DraftSecret,
		Service:     contentService,
		StaticDir:   cfg.StaticDir,
		Logf:        log.Printf,
	})
	if err != nil {
		log.Fatalf("handler setup failed: %v", err)
	}

	if cfg.DraftSecret == "" {
		log.Printf("studio draft mode disabled: STUDIO_DRAFT_SECRET is not set")
	}
	log.Printf("studio server listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
