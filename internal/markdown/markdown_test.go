package markdown

import (
	"strings"
	"testing"
)

func TestToHTML_ResolvesDocumentLinks(t *testing.T) {
	html := string(ToHTML("[post](post://hello) and [page](page://about)", Options{}))

	if !strings.Contains(html, `href="/posts/hello"`) {
		t.Fatalf("expected resolved post href, got %s", html)
	}
	if !strings.Contains(html, `href="/about"`) {
		t.Fatalf("expected resolved page href, got %s", html)
	}
	if strings.Contains(html, `target="_blank"`) {
		t.Fatalf("did not expect internal links to open a new tab, got %s", html)
	}
}

func TestToHTML_UnresolvedDocumentLinkLosesTarget(t *testing.T) {
	calls := 0
	html := string(ToHTML("[missing](post://)", Options{
		ResolveHref: func(documentType string, slug string) (string, bool) {
			calls++
			if documentType != "post" || slug != "" {
				t.Fatalf("unexpected resolve call %q %q", documentType, slug)
			}
			return "", false
		},
	}))

	if calls != 1 {
		t.Fatalf("expected one resolve call, got %d", calls)
	}
	if !strings.Contains(html, `href="#"`) {
		t.Fatalf("expected placeholder href, got %s", html)
	}
	if !strings.Contains(html, "missing") {
		t.Fatalf("expected link text to stay, got %s", html)
	}
}

func TestToHTML_ExternalLinksOpenInNewTab(t *testing.T) {
	html := string(ToHTML("[docs](https://example.com/read)", Options{
		RootURL: "https://preview.example.com",
	}))

	if !strings.Contains(html, `href="https://example.com/read"`) {
		t.Fatalf("expected external href, got %s", html)
	}
	if !strings.Contains(html, `target="_blank"`) {
		t.Fatalf("expected target blank, got %s", html)
	}
	if !strings.Contains(html, `rel="noopener noreferrer"`) {
		t.Fatalf("expected external rel attrs, got %s", html)
	}
}

func TestToHTML_NormalizesSameDomainAbsoluteLinks(t *testing.T) {
	html := string(ToHTML("[same](https://preview.example.com/posts/a?x=1#k)", Options{
		RootURL: "https://preview.example.com/",
	}))

	if !strings.Contains(html, `href="/posts/a?x=1#k"`) {
		t.Fatalf("expected normalized same-domain href, got %s", html)
	}
	if strings.Contains(html, `rel="noopener noreferrer"`) {
		t.Fatalf("did not expect rel attrs for same-domain absolute links, got %s", html)
	}
}

func TestToHTML_HighlightsCodeBlocks(t *testing.T) {
	source := "```go\nfmt.Println(\"hello\")\n```"
	html := string(ToHTML(source, Options{}))

	if !strings.Contains(html, `class="chroma"`) {
		t.Fatalf("expected chroma class for fenced code block, got %s", html)
	}
	if !strings.Contains(html, "Println") {
		t.Fatalf("expected code content in rendered block, got %s", html)
	}
}

func TestToHTML_RendersInlineCodeClass(t *testing.T) {
	html := string(ToHTML("Use `go test ./...` now.", Options{}))

	if !strings.Contains(html, `<code class="inline-code">go test ./...</code>`) {
		t.Fatalf("expected inline code class, got %s", html)
	}
}

func TestExcerpt_RemovesDocumentLinkTargets(t *testing.T) {
	input := "Starting a new series on previews. " +
		"Read the [first part](post://preview-basics) before this one."
	got := Excerpt(input, 300)

	if strings.Contains(got, "post://") {
		t.Fatalf("expected no document link token in excerpt, got %s", got)
	}
	if !strings.Contains(got, "first part") {
		t.Fatalf("expected human-readable link text to stay in excerpt, got %s", got)
	}
}

func TestExcerpt_TruncatesOnWordBoundary(t *testing.T) {
	got := Excerpt("alpha beta gamma delta", 12)
	if got != "alpha beta..." {
		t.Fatalf("expected graceful word truncation, got %q", got)
	}
}

func TestChromaCSS_HasBothSchemes(t *testing.T) {
	css := string(ChromaCSS())

	if !strings.Contains(css, "prefers-color-scheme: light") {
		t.Fatalf("expected light scheme block, got %s", css)
	}
	if !strings.Contains(css, "prefers-color-scheme: dark") {
		t.Fatalf("expected dark scheme block, got %s", css)
	}
	if ChromaCSS() != ChromaCSS() {
		t.Fatal("expected cached stylesheet to be stable")
	}
}
