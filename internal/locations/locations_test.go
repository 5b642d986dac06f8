package locations

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnRecorder struct {
	messages []string
}

func (w *warnRecorder) resolver() Resolver {
	return Resolver{Warnf: func(format string, args ...any) {
		w.messages = append(w.messages, fmt.Sprintf(format, args...))
	}}
}

func TestResolveHref(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		documentType string
		slug         string
		expectedHref string
		expectedOK   bool
	}{
		{name: "post", documentType: "post", slug: "hello", expectedHref: "/posts/hello", expectedOK: true},
		{name: "post nested slug", documentType: "post", slug: "2024/recap", expectedHref: "/posts/2024/recap", expectedOK: true},
		{name: "page", documentType: "page", slug: "about", expectedHref: "/about", expectedOK: true},
		{name: "post without slug", documentType: "post"},
		{name: "page without slug", documentType: "page"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			recorder := &warnRecorder{}
			href, ok := recorder.resolver().ResolveHref(tc.documentType, tc.slug)
			assert.Equal(t, tc.expectedHref, href)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Empty(t, recorder.messages)
		})
	}
}

func TestResolveHrefUnknownTypeWarnsOnce(t *testing.T) {
	t.Parallel()

	for _, documentType := range []string{"", "settings", "author", "Post"} {
		recorder := &warnRecorder{}
		href, ok := recorder.resolver().ResolveHref(documentType, "hello")

		assert.False(t, ok, documentType)
		assert.Empty(t, href, documentType)
		require.Len(t, recorder.messages, 1, documentType)
		assert.Contains(t, recorder.messages[0], "invalid document type")
		assert.Contains(t, recorder.messages[0], fmt.Sprintf("%q", documentType))
	}
}

func TestResolveLocationsForPage(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]Location{{Title: "About", Href: "/about"}},
		ResolveLocationsForPage(PageDocument{Name: "About", Slug: "about"}),
	)
	assert.Equal(t,
		[]Location{{Title: "Untitled", Href: "/about"}},
		ResolveLocationsForPage(PageDocument{Slug: "about"}),
	)
	assert.Equal(t,
		[]Location{{Title: "Draft"}},
		ResolveLocationsForPage(PageDocument{Name: "Draft"}),
	)
}

func TestResolveLocationsForPost(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]Location{
			{Title: "Hello", Href: "/posts/hello"},
			{Title: "Home", Href: "/"},
		},
		ResolveLocationsForPost(PostDocument{Title: "Hello", Slug: "hello"}),
	)
	assert.Equal(t,
		[]Location{{Title: "Home", Href: "/"}},
		ResolveLocationsForPost(PostDocument{Title: "Hello"}),
	)
	assert.Equal(t,
		[]Location{
			{Title: "Untitled", Href: "/posts/hello"},
			{Title: "Home", Href: "/"},
		},
		ResolveLocationsForPost(PostDocument{Slug: "hello"}),
	)
}

func TestResolveLocationsForSettings(t *testing.T) {
	t.Parallel()

	got := ResolveLocationsForSettings()
	assert.Equal(t, []Location{Home()}, got.Locations)
	assert.Equal(t, "This document is used on all pages", got.Message)
	assert.Equal(t, TonePositive, got.Tone)
}
