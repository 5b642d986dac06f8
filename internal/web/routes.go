package web

import (
	"studio/framework"
	"studio/internal/web/appcore"
	"studio/internal/web/components"
)

// Preview routes mirror the main document table: the home page, top-level
// pages and posts.
func routeHandlers() []framework.RouteHandler[*appcore.Context] {
	return []framework.RouteHandler[*appcore.Context]{
		framework.PageOnlyRouteHandler[*appcore.Context, framework.EmptyParams, appcore.HomePageView]{
			Page: framework.PageModule[*appcore.Context, framework.EmptyParams, appcore.HomePageView]{
				Pattern:     "/",
				ParseParams: framework.ParseEmpty("/"),
				Load:        appcore.LoadHomePage,
				Render:      components.HomePage,
				Layouts: []framework.LayoutRenderer[appcore.HomePageView]{
					components.Layout[appcore.HomePageView],
				},
			},
		},
		framework.PageOnlyRouteHandler[*appcore.Context, framework.SlugParams, appcore.PostPageView]{
			Page: framework.PageModule[*appcore.Context, framework.SlugParams, appcore.PostPageView]{
				Pattern:     "/posts/:slug",
				ParseParams: framework.ParseSlug("/posts/:slug"),
				Load:        appcore.LoadPostPage,
				Render:      components.PostPage,
				Layouts: []framework.LayoutRenderer[appcore.PostPageView]{
					components.Layout[appcore.PostPageView],
				},
			},
		},
		framework.PageOnlyRouteHandler[*appcore.Context, framework.SlugParams, appcore.PageView]{
			Page: framework.PageModule[*appcore.Context, framework.SlugParams, appcore.PageView]{
				Pattern:     "/:slug",
				ParseParams: framework.ParseSlug("/:slug"),
				Load:        appcore.LoadPage,
				Render:      components.Page,
				Layouts: []framework.LayoutRenderer[appcore.PageView]{
					components.Layout[appcore.PageView],
				},
			},
		},
	}
}
