// Package components renders the preview pages. Markup lives in the .templ
// files; run `templ generate` after editing them.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"studio/internal/content"
	"studio/internal/web/appcore"
)

type layoutProvider interface {
	LayoutData() appcore.LayoutView
}

// Layout wraps a page body in the document chrome.
func Layout[VM layoutProvider](view VM, child templ.Component) templ.Component {
	return LayoutFor(view.LayoutData(), child)
}

func LayoutFor(layout appcore.LayoutView, child templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return shell(layout).Render(templ.WithChildren(ctx, child), w)
	})
}

func documentTitle(layout appcore.LayoutView) string {
	if layout.PageTitle == "" || layout.PageTitle == layout.SiteTitle {
		return layout.SiteTitle
	}
	return layout.PageTitle + " | " + layout.SiteTitle
}

func pageHeading(page content.Page) string {
	if page.Heading != "" {
		return page.Heading
	}
	return page.Name
}
