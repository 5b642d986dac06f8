// Package presentation holds what the studio's preview tool needs to know
// about the site: where previews live, which origins may embed them, and how
// URLs and documents map onto each other.
package presentation

import (
	"net/url"
	"strings"
)

const (
	DefaultEnablePath    = "/api/draft-mode/enable"
	DefaultDisablePath   = "/api/draft-mode/disable"
	DefaultPreviewOrigin = "http://localhost:3000"
)

// DefaultAllowOrigins are the preview frontends the studio may load: the local
// frontend and the deployed one.
var DefaultAllowOrigins = []string{
	"http://localhost:3000",
	"https://magical-naiad-9051c3.netlify.app",
}

// DefaultStudioOrigins are where the studio itself runs. A leading "*." in the
// host matches any subdomain.
var DefaultStudioOrigins = []string{
	"http://localhost:3333",
	"https://*.sanity.studio",
}

type Config struct {
	ProjectID     string   `json:"projectId"`
	Dataset       string   `json:"dataset"`
	PreviewOrigin string   `json:"previewOrigin"`
	EnablePath    string   `json:"enablePath"`
	DisablePath   string   `json:"disablePath"`
	AllowOrigins  []string `json:"allowOrigins"`
	StudioOrigins []string `json:"studioOrigins"`
}

// Normalize fills defaults. The preview origin is always among AllowOrigins.
func (c Config) Normalize() Config {
	if strings.TrimSpace(c.PreviewOrigin) == "" {
		c.PreviewOrigin = DefaultPreviewOrigin
	}
	c.PreviewOrigin = normalizeOrigin(c.PreviewOrigin)
	c.EnablePath = normalizePath(c.EnablePath, DefaultEnablePath)
	c.DisablePath = normalizePath(c.DisablePath, DefaultDisablePath)

	allow := c.AllowOrigins
	if len(allow) == 0 {
		allow = DefaultAllowOrigins
	}
	c.AllowOrigins = dedupeOrigins(append(append([]string{}, allow...), c.PreviewOrigin))

	studio := c.StudioOrigins
	if len(studio) == 0 {
		studio = DefaultStudioOrigins
	}
	c.StudioOrigins = dedupeOrigins(studio)
	return c
}

// AllowsOrigin reports whether origin is a preview frontend the studio may
// embed.
func (c Config) AllowsOrigin(origin string) bool {
	return matchesAny(c.AllowOrigins, origin)
}

// AllowsStudioOrigin reports whether origin is a studio allowed to call the
// presentation API.
func (c Config) AllowsStudioOrigin(origin string) bool {
	return matchesAny(c.StudioOrigins, origin)
}

func matchesAny(allowed []string, origin string) bool {
	origin = normalizeOrigin(origin)
	if origin == "" {
		return false
	}
	for _, candidate := range allowed {
		if originMatches(normalizeOrigin(candidate), origin) {
			return true
		}
	}
	return false
}

func originMatches(pattern string, origin string) bool {
	if pattern == origin {
		return true
	}
	if !strings.Contains(pattern, "://*.") {
		return false
	}

	want, err := url.Parse(strings.Replace(pattern, "://*.", "://", 1))
	if err != nil {
		return false
	}
	got, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return got.Scheme == want.Scheme &&
		got.Port() == want.Port() &&
		strings.HasSuffix(got.Hostname(), "."+want.Hostname())
}

func dedupeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	seen := make(map[string]struct{}, len(origins))
	for _, origin := range origins {
		origin = normalizeOrigin(origin)
		if origin == "" {
			continue
		}
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		out = append(out, origin)
	}
	return out
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}

func normalizePath(value string, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	return value
}
