package components

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studio/internal/content"
	"studio/internal/web/appcore"
)

func TestLayoutWrapsChildAndEscapesTitles(t *testing.T) {
	t.Parallel()

	view := appcore.PostPageView{
		Layout: appcore.LayoutView{
			SiteTitle:   "Field <Notes>",
			PageTitle:   "Hello",
			Description: `Say "hi"`,
			Draft:       true,
			DisablePath: "/api/draft-mode/disable",
		},
		Post: content.Post{
			PostSummary: content.PostSummary{Title: "Hello", Date: "January 2, 2024"},
			Author:      "Nina",
			BodyHTML:    "<p>Body</p>",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Layout(view, PostPage(view)).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Hello | Field &lt;Notes&gt;</title>")
	assert.Contains(t, html, `content="Say &#34;hi&#34;"`)
	assert.Contains(t, html, `<a href="/api/draft-mode/disable">Exit draft mode</a>`)
	assert.Contains(t, html, "<main><article class=\"post\"><h1>Hello</h1>")
	assert.Contains(t, html, `<span class="author">by Nina</span>`)
	assert.Contains(t, html, `<div class="body"><p>Body</p></div>`)
}

func TestLayoutWithoutDraftOrPageTitle(t *testing.T) {
	t.Parallel()

	layout := appcore.LayoutView{SiteTitle: "Field Notes", PageTitle: "Field Notes"}

	var buf bytes.Buffer
	require.NoError(t, LayoutFor(layout, NotFound("/missing")).Render(context.Background(), &buf))
	html := buf.String()

	assert.Contains(t, html, "<title>Field Notes</title>")
	assert.NotContains(t, html, "draft-banner")
	assert.NotContains(t, html, `name="description"`)
	assert.Contains(t, html, "<code>/missing</code>")
}

func TestHomePageListsPosts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := HomePage(appcore.HomePageView{Posts: []content.PostSummary{
		{Title: "Linked", Href: "/posts/linked", Excerpt: "First"},
		{Title: "Unlinked"},
	}}).Render(context.Background(), &buf)
	require.NoError(t, err)
	html := buf.String()

	assert.Contains(t, html, `<a href="/posts/linked">Linked</a>`)
	assert.Contains(t, html, "<h2>Unlinked</h2>")
	assert.Contains(t, html, "<p>First</p>")
	assert.NotContains(t, html, "No posts yet.")

	buf.Reset()
	require.NoError(t, HomePage(appcore.HomePageView{}).Render(context.Background(), &buf))
	assert.Contains(t, buf.String(), "No posts yet.")
}

func TestPageFallsBackToName(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Page(appcore.PageView{Page: content.Page{Name: "About"}}).Render(context.Background(), &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<h1>About</h1>")
	assert.NotContains(t, buf.String(), "subheading")
}
