package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/Khan/genqlient/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGraphQLClient struct {
	label string
	calls []string
}

func (f *fakeGraphQLClient) MakeRequest(_ context.Context, req *graphql.Request, resp *graphql.Response) error {
	f.calls = append(f.calls, req.OpName)
	slug := requestVarString(req, "slug")

	switch req.OpName {
	case "SiteSettings":
		return decodeGraphQLData(resp, `{"Settings":{"_id":"siteSettings","title":" `+f.label+` ","description":"All the news"}}`)
	case "PageBySlug":
		if slug == "missing" {
			return decodeGraphQLData(resp, `{"allPage":[]}`)
		}
		return decodeGraphQLData(resp, `{"allPage":[{
			"_id":"page-1","_type":"page","name":"About","heading":"About us",
			"body":"See [the launch](post://launch).","slug":{"current":"about"}
		}]}`)
	case "PostBySlug":
		if slug == "missing" {
			return decodeGraphQLData(resp, `{"allPost":[]}`)
		}
		return decodeGraphQLData(resp, `{"allPost":[{
			"_id":"post-1","_type":"post","title":"`+f.label+`","date":"2024-01-02T10:00:00Z",
			"content":"# Hello\n\nFirst words.","author":{"name":"Nina"},"slug":{"current":"hello"}
		}]}`)
	case "RecentPosts":
		return decodeGraphQLData(resp, `{"allPost":[
			{"_id":"post-1","_type":"post","title":"Hello","excerpt":"Short","slug":{"current":"hello"}},
			{"_id":"post-2","_type":"post","title":"","content":"Body **text**","slug":null}
		]}`)
	case "DocumentByID":
		switch requestVarString(req, "id") {
		case "page-1":
			return decodeGraphQLData(resp, `{"Document":{"__typename":"Page","_id":"page-1","_type":"page","name":"About","slug":{"current":"about"}}}`)
		case "post-1":
			return decodeGraphQLData(resp, `{"Document":{"__typename":"Post","_id":"post-1","_type":"post","title":"Hello","slug":{"current":"hello"}}}`)
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

	var value string
	if err := json.Unmarshal(values[key], &value); err != nil {
		return ""
	}
	return strings.TrimSpace(value)
}

func TestServiceSelectsClientByPerspective(t *testing.T) {
	t.Parallel()

	published := &fakeGraphQLClient{label: "Published"}
	drafts := &fakeGraphQLClient{label: "Draft"}
	service := NewService(published, drafts, "")

	settings, err := service.Settings(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "Published", settings.Title)

	settings, err = service.Settings(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Draft", settings.Title)

	assert.Equal(t, []string{"SiteSettings"}, published.calls)
	assert.Equal(t, []string{"SiteSettings"}, drafts.calls)
}

func TestServiceWithoutDraftClientUsesPublished(t *testing.T) {
	t.Parallel()

	published := &fakeGraphQLClient{label: "Published"}
	service := NewService(published, nil, "")

	post, err := service.PostBySlug(context.Background(), "hello", true)
	require.NoError(t, err)
	assert.Equal(t, "Published", post.Title)
}

func TestPostBySlug(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeGraphQLClient{label: "Hello"}, nil, "")

	post, err := service.PostBySlug(context.Background(), "hello", false)
	require.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
	assert.Equal(t, "/posts/hello", post.Href)
	assert.Equal(t, "2024-01-02", post.Date)
	assert.Equal(t, "Nina", post.Author)
	assert.Contains(t, string(post.BodyHTML), "<h1")
	assert.Contains(t, post.Excerpt, "First words.")

	_, err = service.PostBySlug(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageBySlugResolvesDocumentLinks(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeGraphQLClient{}, nil, "")

	page, err := service.PageBySlug(context.Background(), "about", false)
	require.NoError(t, err)
	assert.Equal(t, "About", page.Name)
	assert.Equal(t, "About us", page.Heading)
	assert.Equal(t, "/about", page.Href)
	assert.Contains(t, string(page.BodyHTML), `href="/posts/launch"`)

	_, err = service.PageBySlug(context.Background(), "missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecentPosts(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeGraphQLClient{}, nil, "")

	posts, err := service.RecentPosts(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "Short", posts[0].Excerpt)
	assert.Equal(t, "/posts/hello", posts[0].Href)

	assert.Equal(t, "Untitled", posts[1].Title)
	assert.Empty(t, posts[1].Href)
	assert.Equal(t, "Body text", posts[1].Excerpt)
}

func TestDocument(t *testing.T) {
	t.Parallel()

	service := NewService(&fakeGraphQLClient{}, nil, "")

	doc, err := service.Document(context.Background(), "post-1", true)
	require.NoError(t, err)
	assert.Equal(t, Document{ID: "post-1", Type: "post", Title: "Hello", Slug: "hello"}, *doc)

	doc, err = service.Document(context.Background(), "page-1", false)
	require.NoError(t, err)
	assert.Equal(t, Document{ID: "page-1", Type: "page", Name: "About", Slug: "about"}, *doc)

	_, err = service.Document(context.Background(), "nope", true)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.Document(context.Background(), " ", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
