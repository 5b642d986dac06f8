package web

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"studio/framework"
	"studio/framework/httpserver"
	"studio/internal/content"
	"studio/internal/draftmode"
	"studio/internal/locations"
	"studio/internal/presentation"
	"studio/internal/web/appcore"
	"studio/internal/web/components"
)

type Options struct {
	Preview     presentation.Config
	DraftSecret string
	Service     *content.Service
	Resolver    *presentation.Resolver
	StaticDir   string
	Logf        func(format string, args ...any)
}

// NewHandler assembles the preview site, the draft mode endpoints and the
// presentation API into one handler.
func NewHandler(opts Options) (http.Handler, error) {
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}

	preview := opts.Preview.Normalize()
	resolver := opts.Resolver
	if resolver == nil {
		defaultResolver, err := presentation.NewResolver(
			presentation.DefaultMainDocuments(),
			locations.Resolver{Warnf: logf},
		)
		if err != nil {
			return nil, fmt.Errorf("create presentation resolver: %w", err)
		}
		resolver = defaultResolver
	}

	draft := draftmode.NewHandler(preview, opts.DraftSecret)
	api := NewAPI(preview, resolver, opts.Service, logf)

	mounts := append(draft.Mounts(), api.Mounts(draft.WithStudioCORS)...)
	appCtx := appcore.NewContext(opts.Service, preview)

	handler, err := httpserver.New(httpserver.Config[*appcore.Context]{
		AppContext:      appCtx,
		Handlers:        routeHandlers(),
		Mounts:          mounts,
		IsDraftRequest:  draftmode.Enabled,
		IsNotFoundError: appcore.IsNotFoundError,
		NotFoundPage: func(notFoundContext framework.NotFoundContext) templ.Component {
			return notFoundPage(appCtx, notFoundContext)
		},
		Static: httpserver.StaticMount{
			URLPrefix: "/static/",
			Dir:       opts.StaticDir,
		},
		LogServerError: func(err error) {
			logf("studio server error: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create http server: %w", err)
	}

	return handler, nil
}

func notFoundPage(appCtx *appcore.Context, notFoundContext framework.NotFoundContext) templ.Component {
	path := strings.TrimSpace(notFoundContext.RequestPath)
	if path == "" {
		path = "/"
	}

	return components.LayoutFor(appcore.NotFoundLayout(appCtx), components.NotFound(path))
}
