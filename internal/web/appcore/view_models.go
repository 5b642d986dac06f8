package appcore

import "studio/internal/content"

// LayoutView is what the shared page chrome needs from every page.
type LayoutView struct {
	SiteTitle   string
	PageTitle   string
	Description string
	Draft       bool
	DisablePath string
}

type HomePageView struct {
	Layout LayoutView
	Posts  []content.PostSummary
}

type PageView struct {
	Layout LayoutView
	Page   content.Page
}

type PostPageView struct {
	Layout LayoutView
	Post   content.Post
}

func (v HomePageView) LayoutData() LayoutView { return v.Layout }
func (v PageView) LayoutData() LayoutView     { return v.Layout }
func (v PostPageView) LayoutData() LayoutView { return v.Layout }
