package appcore

import (
	"context"
	"net/http"

	"studio/framework"
	"studio/internal/content"
	"studio/internal/draftmode"
)

const defaultSiteTitle = "Preview"

func LoadHomePage(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	_ framework.EmptyParams,
) (HomePageView, error) {
	service, err := contentService(appCtx)
	if err != nil {
		return HomePageView{}, err
	}

	draft := draftmode.Enabled(r)
	layout, err := loadLayout(ctx, appCtx, service, draft)
	if err != nil {
		return HomePageView{}, err
	}

	posts, err := service.RecentPosts(ctx, draft)
	if err != nil {
		return HomePageView{}, err
	}

	layout.PageTitle = layout.SiteTitle
	return HomePageView{Layout: layout, Posts: posts}, nil
}

func LoadPage(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	params framework.SlugParams,
) (PageView, error) {
	service, err := contentService(appCtx)
	if err != nil {
		return PageView{}, err
	}

	draft := draftmode.Enabled(r)
	page, err := service.PageBySlug(ctx, params.Slug, draft)
	if err != nil {
		return PageView{}, err
	}

	layout, err := loadLayout(ctx, appCtx, service, draft)
	if err != nil {
		return PageView{}, err
	}
	layout.PageTitle = page.Name
	if page.Heading != "" {
		layout.PageTitle = page.Heading
	}

	return PageView{Layout: layout, Page: *page}, nil
}

func LoadPostPage(
	ctx context.Context,
	appCtx *Context,
	r *http.Request,
	params framework.SlugParams,
) (PostPageView, error) {
	service, err := contentService(appCtx)
	if err != nil {
		return PostPageView{}, err
	}

	draft := draftmode.Enabled(r)
	post, err := service.PostBySlug(ctx, params.Slug, draft)
	if err != nil {
		return PostPageView{}, err
	}

	layout, err := loadLayout(ctx, appCtx, service, draft)
	if err != nil {
		return PostPageView{}, err
	}
	layout.PageTitle = post.Title
	layout.Description = post.Excerpt

	return PostPageView{Layout: layout, Post: *post}, nil
}

// loadLayout reads site settings for the page chrome. A site without a
// settings document still renders with a default title.
func loadLayout(
	ctx context.Context,
	appCtx *Context,
	service *content.Service,
	draft bool,
) (LayoutView, error) {
	layout := LayoutView{
		SiteTitle:   defaultSiteTitle,
		Draft:       draft,
		DisablePath: appCtx.preview.DisablePath,
	}

	settings, err := service.Settings(ctx, draft)
	if err != nil {
		if IsNotFoundError(err) {
			return layout, nil
		}
		return LayoutView{}, err
	}

	if settings.Title != "" {
		layout.SiteTitle = settings.Title
	}
	layout.Description = settings.Description
	return layout, nil
}

// NotFoundLayout is the chrome used when no page could be loaded.
func NotFoundLayout(appCtx *Context) LayoutView {
	layout := LayoutView{
		SiteTitle: defaultSiteTitle,
		PageTitle: "404 Not Found",
	}
	if appCtx != nil {
		layout.DisablePath = appCtx.preview.DisablePath
	}
	return layout
}
