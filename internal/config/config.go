package config

import (
	"os"
	"strings"
)

const (
	DefaultProjectID     = "your-projectID"
	DefaultDataset       = "production"
	DefaultAPIVersion    = "v2023-08-01"
	DefaultPreviewOrigin = "http://localhost:3000"
)

// Environment variables read by Load. The CLI binds the same names.
const (
	EnvProjectID     = "SANITY_STUDIO_PROJECT_ID"
	EnvDataset       = "SANITY_STUDIO_DATASET"
	EnvPreviewOrigin = "STUDIO_PREVIEW_ORIGIN"
	EnvAllowOrigins  = "STUDIO_ALLOW_ORIGINS"
	EnvStudioOrigins = "STUDIO_CORS_ORIGINS"
)

type Config struct {
	ListenAddr string
	StaticDir  string

	ProjectID  string
	Dataset    string
	APIVersion string
	ReadToken  string

	GraphQLEndpoint string

	PreviewOrigin string
	AllowOrigins  []string
	StudioOrigins []string
	DraftSecret   string
}

func Load() Config {
	return Config{
		ListenAddr:      getEnv("STUDIO_LISTEN_ADDR", ":8080"),
		StaticDir:       os.Getenv("STUDIO_STATIC_DIR"),
		ProjectID:       getEnv(EnvProjectID, DefaultProjectID),
		Dataset:         getEnv(EnvDataset, DefaultDataset),
		APIVersion:      getEnv("SANITY_API_VERSION", DefaultAPIVersion),
		ReadToken:       strings.TrimSpace(os.Getenv("SANITY_API_READ_TOKEN")),
		GraphQLEndpoint: strings.TrimSpace(os.Getenv("SANITY_GRAPHQL_ENDPOINT")),
		PreviewOrigin:   getEnv(EnvPreviewOrigin, DefaultPreviewOrigin),
		AllowOrigins:    getEnvList(EnvAllowOrigins),
		StudioOrigins:   getEnvList(EnvStudioOrigins),
		DraftSecret:     strings.TrimSpace(os.Getenv("STUDIO_DRAFT_SECRET")),
	}
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	return value
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
