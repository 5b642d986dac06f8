package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Khan/genqlient/graphql"

	"studio/internal/content"
	"studio/internal/draftmode"
	"studio/internal/locations"
	"studio/internal/presentation"
)

type fakeGraphQLClient struct {
	postTitle string
	// anySlug serves a document for every slug except "missing".
	anySlug bool
}

func (f fakeGraphQLClient) MakeRequest(
	_ context.Context,
	req *graphql.Request,
	resp *graphql.Response,
) error {
	slug := requestVarString(req, "slug")

	switch req.OpName {
	case "SiteSettings":
		return decodeGraphQLData(resp, `{"Settings":{"_id":"siteSettings","title":"Field Notes","description":"Notes from the field"}}`)
	case "RecentPosts":
		return decodeGraphQLData(resp, `{"allPost":[
			{"_id":"post-1","_type":"post","title":"`+f.postTitle+`","excerpt":"First words","date":"2024-01-02","slug":{"current":"hello-world"}}
		]}`)
	case "PostBySlug":
		if f.anySlug && slug != "missing" {
			return decodeGraphQLData(resp, `{"allPost":[{"_id":"post-x","_type":"post","title":"Any","slug":{"current":`+quoteJSON(slug)+`}}]}`)
		}
		if slug != "hello-world" {
			return decodeGraphQLData(resp, `{"allPost":[]}`)
		}
		return decodeGraphQLData(resp, `{"allPost":[{
			"_id":"post-1","_type":"post","title":"`+f.postTitle+`","date":"2024-01-02T00:00:00Z",
			"content":"Read [about us](page://about).\n\n`+"```go\\nfmt.Println(1)\\n```"+`",
			"author":{"name":"Nina"},"slug":{"current":"hello-world"}
		}]}`)
	case "PageBySlug":
		if f.anySlug && slug != "missing" {
			return decodeGraphQLData(resp, `{"allPage":[{"_id":"page-x","_type":"page","name":"Any","slug":{"current":`+quoteJSON(slug)+`}}]}`)
		}
		if slug != "about" {
			return decodeGraphQLData(resp, `{"allPage":[]}`)
		}
		return decodeGraphQLData(resp, `{"allPage":[{
			"_id":"page-1","_type":"page","name":"About","heading":"About us","body":"We write.","slug":{"current":"about"}
		}]}`)
	case "DocumentByID":
		switch requestVarString(req, "id") {
		case "drafts.post-1":
			return decodeGraphQLData(resp, `{"Document":{"__typename":"Post","_id":"drafts.post-1","_type":"post","title":"Hello World","slug":{"current":"hello-world"}}}`)
		case "author-1":
			return decodeGraphQLData(resp, `{"Document":{"__typename":"Author","_id":"author-1","_type":"author","name":"Nina"}}`)
		case "broken":
			return errors.New("upstream unavailable")
		default:
			return decodeGraphQLData(resp, `{"Document":null}`)
		}
	default:
		return errors.New("unexpected operation " + req.OpName)
	}
}

func decodeGraphQLData(resp *graphql.Response, payload string) error {
	return json.Unmarshal([]byte(payload), resp.Data)
}

func quoteJSON(value string) string {
	encoded, _ := json.Marshal(value)
	return string(encoded)
}

func requestVarString(req *graphql.Request, key string) string {
	if req == nil || req.Variables == nil {
		return ""
	}

	raw, err := json.Marshal(req.Variables)
	if err != nil {
		return ""
	}

	values := make(map[string]json.RawMessage)
	if err := json.Unmarshal(raw, &values); err != nil {
		return ""
	}

	entry, ok := values[key]
	if !ok {
		return ""
	}

	var value string
	if err := json.Unmarshal(entry, &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

type testLog struct {
	lines []string
}

func (l *testLog) logf(format string, _ ...any) {
	l.lines = append(l.lines, format)
}

func newTestHandler(t *testing.T, logs *testLog) http.Handler {
	t.Helper()

	return newTestHandlerWithContent(t, logs,
		fakeGraphQLClient{postTitle: "Hello World"},
		fakeGraphQLClient{postTitle: "Hello World (draft)"},
	)
}

func newTestHandlerWithContent(t *testing.T, logs *testLog, published, drafts fakeGraphQLClient) http.Handler {
	t.Helper()

	svc := content.NewService(published, drafts, "")
	handler, err := NewHandler(Options{
		Preview: presentation.Config{
			ProjectID:     "abc123",
			Dataset:       "production",
			PreviewOrigin: "https://preview.example.com",
		},
		DraftSecret: "s3cret",
		Service:     svc,
		Logf:        logs.logf,
	})
	if err != nil {
		t.Fatalf("new handler: %v", err)
	}
	return handler
}

func requireBody(t *testing.T, body io.Reader) string {
	t.Helper()

	content, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(content)
}

func performRequest(handler http.Handler, method string, path string, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandlerPageRoutesRenderHTML(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t, &testLog{})

	cases := []struct {
		path        string
		mustContain []string
	}{
		{
			path:        "/",
			mustContain: []string{"<title>Field Notes</title>", `href="/posts/hello-world"`, "First words"},
		},
		{
			path: "/posts/hello-world",
			mustContain: []string{
				"<title>Hello World | Field Notes</title>",
				`href="/about"`,
				`class="chroma"`,
				"by Nina",
			},
		},
		{
			path:        "/about",
			mustContain: []string{"<title>About us | Field Notes</title>", "We write."},
		},
	}

	for _, tc := range cases {
		rec := performRequest(handler, http.MethodGet, tc.path, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("%s status: expected %d, got %d", tc.path, http.StatusOK, rec.Code)
		}
		if contentType := rec.Header().Get("Content-Type"); !strings.Contains(contentType, "text/html") {
			t.Fatalf("%s content-type: expected html, got %q", tc.path, contentType)
		}

		body := requireBody(t, rec.Body)
		for _, needle := range tc.mustContain {
			if !strings.Contains(body, needle) {
				t.Fatalf("%s body missing %q", tc.path, needle)
			}
		}
		if strings.Contains(body, "draft-banner") {
			t.Fatalf("%s should not render the draft banner", tc.path)
		}
	}
}

func TestHandlerDraftModeRoundTrip(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t, &testLog{})

	enable := performRequest(handler, http.MethodGet, "/api/draft-mode/enable?secret=s3cret&redirect=/posts/hello-world", "")
	if enable.Code != http.StatusTemporaryRedirect {
		t.Fatalf("enable status: expected %d, got %d", http.StatusTemporaryRedirect, enable.Code)
	}

	req := httptest.NewRequest(http.MethodGet, enable.Header().Get("Location"), nil)
	for _, cookie := range enable.Result().Cookies() {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("draft page status: expected %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "private, no-store" {
		t.Fatalf("draft page cache policy: expected no-store, got %q", got)
	}
	body := requireBody(t, rec.Body)
	if !strings.Contains(body, "Hello World (draft)") {
		t.Fatalf("draft page should render draft content")
	}
	if !strings.Contains(body, `href="/api/draft-mode/disable"`) {
		t.Fatalf("draft page should link to the disable endpoint")
	}
	if !draftmode.Enabled(req) {
		t.Fatal("expected draft cookie on follow-up request")
	}
}

func TestHandlerLocationsAPI(t *testing.T) {
	t.Parallel()
	logs := &testLog{}
	handler := newTestHandler(t, logs)

	posted := performRequest(handler, http.MethodPost, "/api/presentation/locations",
		`{"_type":"post","title":"Hello","slug":"hello"}`)
	if posted.Code != http.StatusOK {
		t.Fatalf("post locations status: expected %d, got %d", http.StatusOK, posted.Code)
	}
	if body := strings.TrimSpace(requireBody(t, posted.Body)); body !=
		`{"locations":[{"title":"Hello","href":"/posts/hello"},{"title":"Home","href":"/"}]}` {
		t.Fatalf("post locations body: got %s", body)
	}

	settings := performRequest(handler, http.MethodPost, "/api/presentation/locations", `{"_type":"settings"}`)
	if body := requireBody(t, settings.Body); !strings.Contains(body, `"tone":"positive"`) {
		t.Fatalf("settings locations should carry the positive tone, got %s", body)
	}

	byID := performRequest(handler, http.MethodGet, "/api/presentation/locations?id=drafts.post-1", "")
	if byID.Code != http.StatusOK {
		t.Fatalf("locations by id status: expected %d, got %d", http.StatusOK, byID.Code)
	}
	if body := requireBody(t, byID.Body); !strings.Contains(body, `"href":"/posts/hello-world"`) {
		t.Fatalf("locations by id should resolve the post href, got %s", body)
	}

	if len(logs.lines) != 0 {
		t.Fatalf("expected no diagnostics yet, got %v", logs.lines)
	}
	unknown := performRequest(handler, http.MethodGet, "/api/presentation/locations?id=author-1", "")
	if unknown.Code != http.StatusOK {
		t.Fatalf("unknown type status: expected %d, got %d", http.StatusOK, unknown.Code)
	}
	if body := strings.TrimSpace(requireBody(t, unknown.Body)); body != `{"locations":[]}` {
		t.Fatalf("unknown type should resolve to no locations, got %s", body)
	}
	if len(logs.lines) != 1 {
		t.Fatalf("expected one diagnostic for unknown type, got %d", len(logs.lines))
	}

	cases := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{method: http.MethodGet, path: "/api/presentation/locations", status: http.StatusBadRequest},
		{method: http.MethodGet, path: "/api/presentation/locations?id=missing", status: http.StatusNotFound},
		{method: http.MethodGet, path: "/api/presentation/locations?id=broken", status: http.StatusInternalServerError},
		{method: http.MethodPost, path: "/api/presentation/locations", body: "{", status: http.StatusBadRequest},
		{method: http.MethodDelete, path: "/api/presentation/locations", status: http.StatusMethodNotAllowed},
	}
	for _, tc := range cases {
		rec := performRequest(handler, tc.method, tc.path, tc.body)
		if rec.Code != tc.status {
			t.Fatalf("%s %s status: expected %d, got %d", tc.method, tc.path, tc.status, rec.Code)
		}
		if contentType := rec.Header().Get("Content-Type"); !strings.Contains(contentType, "application/json") {
			t.Fatalf("%s %s content-type: expected json, got %q", tc.method, tc.path, contentType)
		}
	}
}

func TestHandlerMainDocumentAndConfigAPI(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t, &testLog{})

	rec := performRequest(handler, http.MethodGet, "/api/presentation/main-document?path=/posts/hello-world", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("main document status: expected %d, got %d", http.StatusOK, rec.Code)
	}
	var doc presentation.MainDocument
	if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
		t.Fatalf("decode main document: %v", err)
	}
	if doc.Type != "post" || doc.Params["slug"] != "hello-world" {
		t.Fatalf("unexpected main document %+v", doc)
	}

	missing := performRequest(handler, http.MethodGet, "/api/presentation/main-document?path=/a/b/c", "")
	if missing.Code != http.StatusNotFound {
		t.Fatalf("unmatched main document status: expected %d, got %d", http.StatusNotFound, missing.Code)
	}

	cfgRec := performRequest(handler, http.MethodGet, "/api/presentation/config", "")
	var cfg presentation.Config
	if err := json.NewDecoder(cfgRec.Body).Decode(&cfg); err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.ProjectID != "abc123" || cfg.EnablePath != "/api/draft-mode/enable" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if len(cfg.AllowOrigins) != len(presentation.DefaultAllowOrigins)+1 {
		t.Fatalf("expected default and preview origins, got %v", cfg.AllowOrigins)
	}
	if len(cfg.StudioOrigins) == 0 {
		t.Fatal("expected default studio origins")
	}

	origins := []struct {
		origin string
		status int
	}{
		{origin: "http://localhost:3333", status: http.StatusOK},
		{origin: "https://abc123.sanity.studio", status: http.StatusOK},
		{origin: "https://preview.example.com", status: http.StatusForbidden},
		{origin: "https://evil.example.com", status: http.StatusForbidden},
	}
	for _, tc := range origins {
		req := httptest.NewRequest(http.MethodGet, "/api/presentation/config", nil)
		req.Header.Set("Origin", tc.origin)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != tc.status {
			t.Fatalf("origin %s status: expected %d, got %d", tc.origin, tc.status, rec.Code)
		}
	}
}

func TestHandlerServesEveryResolvedHref(t *testing.T) {
	t.Parallel()
	handler := newTestHandlerWithContent(t, &testLog{},
		fakeGraphQLClient{postTitle: "Any", anySlug: true},
		fakeGraphQLClient{postTitle: "Any", anySlug: true},
	)

	slugs := []string{"about", "About", "hello.world", "2024_recap", "launch-notes-v2", "a"}
	for _, documentType := range []string{"page", "post"} {
		for _, slug := range slugs {
			href, ok := locations.ResolveHref(documentType, slug)
			if !ok {
				t.Fatalf("%s %q: expected an href", documentType, slug)
			}

			page := performRequest(handler, http.MethodGet, href, "")
			if page.Code != http.StatusOK {
				t.Fatalf("GET %s: expected %d, got %d", href, http.StatusOK, page.Code)
			}

			rec := performRequest(handler, http.MethodGet,
				"/api/presentation/main-document?path="+url.QueryEscape(href), "")
			if rec.Code != http.StatusOK {
				t.Fatalf("main document for %s: expected %d, got %d", href, http.StatusOK, rec.Code)
			}
			var doc presentation.MainDocument
			if err := json.NewDecoder(rec.Body).Decode(&doc); err != nil {
				t.Fatalf("decode main document for %s: %v", href, err)
			}
			if string(doc.Type) != documentType || doc.Params["slug"] != slug {
				t.Fatalf("main document for %s: got %+v", href, doc)
			}
		}
	}
}

func TestHandlerNotFoundAndHealth(t *testing.T) {
	t.Parallel()
	handler := newTestHandler(t, &testLog{})

	recHealth := performRequest(handler, http.MethodGet, "/healthz", "")
	if recHealth.Code != http.StatusOK {
		t.Fatalf("healthz status: expected %d, got %d", http.StatusOK, recHealth.Code)
	}
	if body := strings.TrimSpace(requireBody(t, recHealth.Body)); body != "ok" {
		t.Fatalf("healthz body: expected %q, got %q", "ok", body)
	}

	for _, path := range []string{"/posts/missing", "/missing", "/posts/a/b"} {
		rec := performRequest(handler, http.MethodGet, path, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s status: expected %d, got %d", path, http.StatusNotFound, rec.Code)
		}
		if body := requireBody(t, rec.Body); !strings.Contains(body, "Not found") {
			t.Fatalf("%s should render the not found page", path)
		}
	}
}
