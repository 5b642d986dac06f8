package content

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"time"

	genqlientgraphql "github.com/Khan/genqlient/graphql"

	"studio/internal/gql"
	"studio/internal/locations"
	md "studio/internal/markdown"
)

var ErrNotFound = errors.New("not found")

const defaultRecentLimit = 10

type Service struct {
	published   genqlientgraphql.Client
	drafts      genqlientgraphql.Client
	rootURL     string
	recentLimit int
}

type Settings struct {
	Title       string
	Description string
}

type Page struct {
	ID         string
	Slug       string
	Name       string
	Heading    string
	Subheading string
	BodyHTML   template.HTML
	Href       string
}

type PostSummary struct {
	ID      string
	Slug    string
	Title   string
	Excerpt string
	Date    string
	Href    string
}

type Post struct {
	PostSummary
	Author   string
	BodyHTML template.HTML
}

// Document is the minimal projection needed to place a document on the site.
type Document struct {
	ID    string
	Type  string
	Name  string
	Title string
	Slug  string
}

// NewService reads published content through published and draft content
// through drafts. A nil drafts client falls back to published content.
func NewService(published genqlientgraphql.Client, drafts genqlientgraphql.Client, rootURL string) *Service {
	if drafts == nil {
		drafts = published
	}

	return &Service{
		published:   published,
		drafts:      drafts,
		rootURL:     strings.TrimSpace(rootURL),
		recentLimit: defaultRecentLimit,
	}
}

func (s *Service) client(draft bool) genqlientgraphql.Client {
	if draft {
		return s.drafts
	}
	return s.published
}

func (s *Service) Settings(ctx context.Context, draft bool) (*Settings, error) {
	response, err := gql.SiteSettings(ctx, s.client(draft))
	if err != nil {
		return nil, err
	}
	if response == nil || response.Settings == nil {
		return nil, ErrNotFound
	}

	return &Settings{
		Title:       strOr(response.Settings.Title, ""),
		Description: strOr(response.Settings.Description, ""),
	}, nil
}

func (s *Service) PageBySlug(ctx context.Context, slug string, draft bool) (*Page, error) {
	response, err := gql.PageBySlug(ctx, s.client(draft), slug)
	if err != nil {
		return nil, err
	}
	if response == nil || len(response.AllPage) == 0 {
		return nil, ErrNotFound
	}

	doc := response.AllPage[0]
	pageSlug := slugOr(doc.Slug, slug)
	href, _ := locations.ResolveHref(string(locations.TypePage), pageSlug)
	return &Page{
		ID:         doc.Id,
		Slug:       pageSlug,
		Name:       pickTitle(doc.Name, pageSlug),
		Heading:    strOr(doc.Heading, ""),
		Subheading: strOr(doc.Subheading, ""),
		BodyHTML:   s.render(doc.Body),
		Href:       href,
	}, nil
}

func (s *Service) PostBySlug(ctx context.Context, slug string, draft bool) (*Post, error) {
	response, err := gql.PostBySlug(ctx, s.client(draft), slug)
	if err != nil {
		return nil, err
	}
	if response == nil || len(response.AllPost) == 0 {
		return nil, ErrNotFound
	}

	doc := response.AllPost[0]
	post := &Post{
		PostSummary: summaryFromDoc(doc, slug),
		BodyHTML:    s.render(doc.Content),
	}
	if doc.Author != nil {
		post.Author = strOr(doc.Author.Name, "")
	}
	return post, nil
}

func (s *Service) RecentPosts(ctx context.Context, draft bool) ([]PostSummary, error) {
	response, err := gql.RecentPosts(ctx, s.client(draft), s.recentLimit)
	if err != nil {
		return nil, err
	}
	if response == nil {
		return []PostSummary{}, nil
	}

	out := make([]PostSummary, 0, len(response.AllPost))
	for _, doc := range response.AllPost {
		out = append(out, summaryFromDoc(doc, ""))
	}
	return out, nil
}

func (s *Service) Document(ctx context.Context, id string, draft bool) (*Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	response, err := gql.DocumentByID(ctx, s.client(draft), id)
	if err != nil {
		return nil, err
	}
	if response == nil || response.Document == nil {
		return nil, ErrNotFound
	}

	doc := &Document{
		ID:   response.Document.GetId(),
		Type: response.Document.GetType(),
	}
	switch found := response.Document.(type) {
	case *gql.DocumentByIDDocumentPage:
		doc.Name = strOr(found.Name, "")
		doc.Slug = found.Slug.Value()
	case *gql.DocumentByIDDocumentPost:
		doc.Title = strOr(found.Title, "")
		doc.Slug = found.Slug.Value()
	case *gql.DocumentByIDDocumentAuthor:
		doc.Name = strOr(found.Name, "")
	}
	return doc, nil
}

func (s *Service) render(body *string) template.HTML {
	return md.ToHTML(strOr(body, ""), md.Options{RootURL: s.rootURL})
}

func summaryFromDoc(doc gql.PostDoc, fallbackSlug string) PostSummary {
	slug := slugOr(doc.Slug, fallbackSlug)
	href, _ := locations.ResolveHref(string(locations.TypePost), slug)

	excerpt := strOr(doc.Excerpt, "")
	if excerpt == "" {
		excerpt = md.Excerpt(strOr(doc.Content, ""), 200)
	}

	return PostSummary{
		ID:      doc.Id,
		Slug:    slug,
		Title:   pickTitle(doc.Title, slug),
		Excerpt: excerpt,
		Date:    formatDate(doc.Date),
		Href:    href,
	}
}

func slugOr(slug *gql.Slug, fallback string) string {
	if value := strings.TrimSpace(slug.Value()); value != "" {
		return value
	}
	return fallback
}

func pickTitle(title *string, fallback string) string {
	if v := strOr(title, ""); v != "" {
		return v
	}
	if v := strings.TrimSpace(fallback); v != "" {
		return v
	}
	return "Untitled"
}

func formatDate(raw *string) string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		parsed, err = time.Parse(time.DateOnly, *raw)
		if err != nil {
			return *raw
		}
	}

	return parsed.Format("2006-01-02")
}

func strOr(value *string, fallback string) string {
	if value == nil {
		return fallback
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return fallback
	}

	return trimmed
}
