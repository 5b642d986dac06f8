// Package draftmode implements the endpoints the studio calls to switch the
// preview between published and draft content.
package draftmode

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	"studio/framework/httpserver"
	"studio/internal/presentation"
)

const CookieName = "studio_draft_mode"

var (
	ErrSecretNotConfigured = errors.New("draft mode secret is not configured")
	ErrInvalidSecret       = errors.New("invalid draft mode secret")
	ErrInvalidRedirect     = errors.New("redirect must be a site-relative path")
)

var (
	secretParams   = []string{"secret", "sanity-preview-secret"}
	redirectParams = []string{"redirect", "sanity-preview-pathname"}
)

type Handler struct {
	cfg    presentation.Config
	secret string
	logf   func(format string, args ...any)
}

func NewHandler(cfg presentation.Config, secret string) *Handler {
	return &Handler{
		cfg:    cfg.Normalize(),
		secret: strings.TrimSpace(secret),
		logf:   log.Printf,
	}
}

// Mounts returns the enable and disable endpoints for the server.
func (h *Handler) Mounts() []httpserver.Mount {
	return []httpserver.Mount{
		{Pattern: h.cfg.EnablePath, Handler: h.WithCORS(http.HandlerFunc(h.Enable))},
		{Pattern: h.cfg.DisablePath, Handler: h.WithCORS(http.HandlerFunc(h.Disable))},
	}
}

func (h *Handler) Enable(w http.ResponseWriter, r *http.Request) {
	if err := h.checkSecret(firstParam(r, secretParams)); err != nil {
		h.logf("studio draft mode: enable rejected: %v", err)
		http.Error(w, err.Error(), http.StatusUnauthorized)
		return
	}

	target, err := redirectTarget(firstParam(r, redirectParams))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.SetCookie(w, h.cookie(r, "1", 0))
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

func (h *Handler) Disable(w http.ResponseWriter, r *http.Request) {
	target, err := redirectTarget(firstParam(r, redirectParams))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	http.SetCookie(w, h.cookie(r, "", -1))
	w.Header().Set("Cache-Control", "no-store")
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}

// WithCORS guards the draft mode endpoints, which both the preview frontends
// and the studio may call.
func (h *Handler) WithCORS(next http.Handler) http.Handler {
	return cors(func(origin string) bool {
		return h.cfg.AllowsOrigin(origin) || h.cfg.AllowsStudioOrigin(origin)
	}, next)
}

// WithStudioCORS guards endpoints only the studio calls.
func (h *Handler) WithStudioCORS(next http.Handler) http.Handler {
	return cors(h.cfg.AllowsStudioOrigin, next)
}

// cors rejects cross-origin requests from origins outside the allow list and
// answers preflight requests.
func cors(allowed func(origin string) bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			if !allowed(origin) {
				http.Error(w, "origin not allowed", http.StatusForbidden)
				return
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Enabled reports whether the request carries the draft mode cookie.
func Enabled(r *http.Request) bool {
	if r == nil {
		return false
	}
	cookie, err := r.Cookie(CookieName)
	return err == nil && cookie.Value == "1"
}

func (h *Handler) checkSecret(candidate string) error {
	if h.secret == "" {
		return ErrSecretNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(h.secret)) != 1 {
		return ErrInvalidSecret
	}
	return nil
}

// cookie builds the draft cookie. Browsers drop SameSite=None cookies that are
// not Secure, so plain http previews fall back to Lax.
func (h *Handler) cookie(r *http.Request, value string, maxAge int) *http.Cookie {
	secure := r.TLS != nil || strings.HasPrefix(h.cfg.PreviewOrigin, "https://")
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
	}
}

func firstParam(r *http.Request, names []string) string {
	query := r.URL.Query()
	for _, name := range names {
		if value := strings.TrimSpace(query.Get(name)); value != "" {
			return value
		}
	}
	return ""
}

func redirectTarget(raw string) (string, error) {
	if raw == "" {
		return "/", nil
	}
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return "", ErrInvalidRedirect
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.IsAbs() || parsed.Host != "" {
		return "", ErrInvalidRedirect
	}
	return parsed.String(), nil
}
