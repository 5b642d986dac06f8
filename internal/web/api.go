package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"studio/framework/httpserver"
	"studio/internal/content"
	"studio/internal/locations"
	"studio/internal/presentation"
)

const maxLocationsBody = 64 << 10

type errorResponse struct {
	Error string `json:"error"`
}

// API serves the endpoints the studio's presentation tool queries.
type API struct {
	preview  presentation.Config
	resolver *presentation.Resolver
	service  *content.Service
	logf     func(format string, args ...any)
}

func NewAPI(
	preview presentation.Config,
	resolver *presentation.Resolver,
	service *content.Service,
	logf func(format string, args ...any),
) *API {
	return &API{
		preview:  preview.Normalize(),
		resolver: resolver,
		service:  service,
		logf:     logf,
	}
}

func (a *API) Mounts(wrap func(http.Handler) http.Handler) []httpserver.Mount {
	if wrap == nil {
		wrap = func(next http.Handler) http.Handler { return next }
	}

	return []httpserver.Mount{
		{Pattern: "/api/presentation/config", Handler: wrap(http.HandlerFunc(a.handleConfig))},
		{Pattern: "/api/presentation/locations", Handler: wrap(http.HandlerFunc(a.handleLocations))},
		{Pattern: "/api/presentation/main-document", Handler: wrap(http.HandlerFunc(a.handleMainDocument))},
	}
}

func (a *API) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, a.preview)
}

func (a *API) handleLocations(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	var doc presentation.Document
	if r.Method == http.MethodPost {
		decoder := json.NewDecoder(io.LimitReader(r.Body, maxLocationsBody))
		if err := decoder.Decode(&doc); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid document payload"})
			return
		}
	} else {
		loaded, ok := a.loadDocument(w, r)
		if !ok {
			return
		}
		doc = loaded
	}

	result, ok := a.resolver.Locations(doc)
	if !ok {
		result = locations.DocumentLocations{}
	}
	if result.Locations == nil {
		result.Locations = []locations.Location{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (a *API) loadDocument(w http.ResponseWriter, r *http.Request) (presentation.Document, bool) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing id"})
		return presentation.Document{}, false
	}
	if a.service == nil {
		a.serverError(w, errors.New("content service unavailable"))
		return presentation.Document{}, false
	}

	doc, err := a.service.Document(r.Context(), id, true)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "document not found"})
			return presentation.Document{}, false
		}
		a.serverError(w, fmt.Errorf("load document %q: %w", id, err))
		return presentation.Document{}, false
	}

	return presentation.Document{
		ID:    doc.ID,
		Type:  doc.Type,
		Name:  doc.Name,
		Title: doc.Title,
		Slug:  doc.Slug,
	}, true
}

func (a *API) handleMainDocument(w http.ResponseWriter, r *http.Request) {
	if !allowMethods(w, r, http.MethodGet) {
		return
	}

	target := strings.TrimSpace(r.URL.Query().Get("path"))
	if target == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing path"})
		return
	}

	doc, ok := a.resolver.MainDocumentFor(target)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no main document for path"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (a *API) serverError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	if a.logf != nil {
		a.logf("studio api error: %v", err)
	}
}

func allowMethods(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, method := range methods {
		if r.Method == method {
			return true
		}
	}

	w.Header().Set("Allow", strings.Join(methods, ", "))
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	return false
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
