// Package httpserver serves page modules next to plain handler mounts. Draft
// requests never share cached responses with published ones.
package httpserver

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"studio/framework"
)

const (
	defaultHTMLPolicy  = "public, max-age=3600, s-maxage=3600"
	defaultDraftPolicy = "private, no-store"
	defaultErrorPolicy = "no-cache"
	defaultHealthPath  = "/healthz"
	defaultStaticPath  = "/static/"
)

type StaticMount struct {
	URLPrefix string
	Dir       string
}

// Mount routes a mux pattern to a handler ahead of the page modules.
type Mount struct {
	Pattern string
	Handler http.Handler
}

// CachePolicies are Cache-Control values per response kind. Draft applies to
// every response to a draft request, whatever its kind.
type CachePolicies struct {
	HTML   string
	Draft  string
	Static string
	Error  string
}

func DefaultCachePolicies() CachePolicies {
	return CachePolicies{
		HTML:   defaultHTMLPolicy,
		Draft:  defaultDraftPolicy,
		Static: defaultHTMLPolicy,
		Error:  defaultErrorPolicy,
	}
}

func (p CachePolicies) withDefaults() CachePolicies {
	defaults := DefaultCachePolicies()
	for _, field := range []struct {
		value    *string
		fallback string
	}{
		{&p.HTML, defaults.HTML},
		{&p.Draft, defaults.Draft},
		{&p.Static, defaults.Static},
		{&p.Error, defaults.Error},
	} {
		if strings.TrimSpace(*field.value) == "" {
			*field.value = field.fallback
		}
	}
	return p
}

type Config[C interface{}] struct {
	AppContext C
	Handlers   []framework.RouteHandler[C]
	Mounts     []Mount
	Static     StaticMount

	CachePolicies CachePolicies

	IsDraftRequest  func(r *http.Request) bool
	IsNotFoundError func(err error) bool
	NotFoundPage    func(notFoundContext framework.NotFoundContext) templ.Component
	LogServerError  func(err error)

	HealthPath string
}

// Server is the http.Handler for the whole site. It is also the runtime the
// page modules are served against.
type Server[C interface{}] struct {
	appContext   C
	handlers     []framework.RouteHandler[C]
	policies     CachePolicies
	isDraft      func(r *http.Request) bool
	isNotFound   func(err error) bool
	notFoundPage func(notFoundContext framework.NotFoundContext) templ.Component
	logError     func(err error)
	healthPath   string
	mux          *http.ServeMux
}

func New[C interface{}](cfg Config[C]) (*Server[C], error) {
	if len(cfg.Handlers) == 0 {
		return nil, errors.New("at least one route handler is required")
	}

	s := &Server[C]{
		appContext:   cfg.AppContext,
		handlers:     cfg.Handlers,
		policies:     cfg.CachePolicies.withDefaults(),
		isDraft:      cfg.IsDraftRequest,
		isNotFound:   cfg.IsNotFoundError,
		notFoundPage: cfg.NotFoundPage,
		logError:     cfg.LogServerError,
		healthPath:   cleanPrefix(cfg.HealthPath, defaultHealthPath, false),
		mux:          http.NewServeMux(),
	}
	if s.isDraft == nil {
		s.isDraft = func(*http.Request) bool { return false }
	}
	if s.isNotFound == nil {
		s.isNotFound = func(error) bool { return false }
	}
	if s.logError == nil {
		s.logError = func(err error) { log.Printf("studio server error: %v", err) }
	}

	for _, mount := range cfg.Mounts {
		if strings.TrimSpace(mount.Pattern) == "" || mount.Handler == nil {
			return nil, fmt.Errorf("invalid mount %q", mount.Pattern)
		}
		s.mux.Handle(mount.Pattern, mount.Handler)
	}
	if dir := strings.TrimSpace(cfg.Static.Dir); dir != "" {
		prefix := cleanPrefix(cfg.Static.URLPrefix, defaultStaticPath, true)
		files := http.StripPrefix(prefix, http.FileServer(http.Dir(dir)))
		s.mux.Handle(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.setCachePolicy(w, r, s.policies.Static)
			files.ServeHTTP(w, r)
		}))
	}
	s.mux.HandleFunc(s.healthPath, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.HandleFunc("/", s.servePages)

	return s, nil
}

func (s *Server[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server[C]) servePages(w http.ResponseWriter, r *http.Request) {
	for _, handler := range s.handlers {
		if handler.TryServe(s, w, r) {
			return
		}
	}

	s.RespondNotFound(w, r, framework.NotFoundContext{
		RequestPath: r.URL.Path,
		Source:      framework.NotFoundSourceUnmatchedRoute,
	})
}

func (s *Server[C]) AppContext() C {
	return s.appContext
}

func (s *Server[C]) RenderPage(r *http.Request, w http.ResponseWriter, component templ.Component) error {
	return s.render(w, r, http.StatusOK, s.policies.HTML, component)
}

func (s *Server[C]) IsNotFound(err error) bool {
	return s.isNotFound(err)
}

func (s *Server[C]) RespondNotFound(
	w http.ResponseWriter,
	r *http.Request,
	notFoundContext framework.NotFoundContext,
) {
	var page templ.Component
	if s.notFoundPage != nil {
		page = s.notFoundPage(notFoundContext)
	}
	if page == nil {
		s.setCachePolicy(w, r, s.policies.Error)
		http.NotFound(w, r)
		return
	}

	if err := s.render(w, r, http.StatusNotFound, s.policies.Error, page); err != nil {
		s.logError(fmt.Errorf("render not found page for %q: %w", notFoundContext.RequestPath, err))
	}
}

func (s *Server[C]) RespondServerError(w http.ResponseWriter, err error) {
	w.Header().Set("Cache-Control", s.policies.Error)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	s.logError(err)
}

// render buffers the component so a failed render can still answer 500.
func (s *Server[C]) render(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	policy string,
	component templ.Component,
) error {
	body, err := templ.ToGoHTML(r.Context(), component)
	if err != nil {
		return err
	}

	s.setCachePolicy(w, r, policy)
	w.Header().Add("Vary", "Cookie")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return nil
	}
	_, err = w.Write([]byte(body))
	return err
}

func (s *Server[C]) setCachePolicy(w http.ResponseWriter, r *http.Request, policy string) {
	if s.isDraft(r) {
		policy = s.policies.Draft
	}
	w.Header().Set("Cache-Control", policy)
}

func cleanPrefix(value string, fallback string, trailingSlash bool) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if !strings.HasPrefix(value, "/") {
		value = "/" + value
	}
	if trailingSlash && !strings.HasSuffix(value, "/") {
		value += "/"
	}
	return value
}
