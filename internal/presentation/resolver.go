package presentation

import (
	"fmt"
	"net/url"

	"studio/framework/router"
	"studio/internal/locations"
)

// MainDocumentRoute ties a site route to the query that selects the document
// rendered on it.
type MainDocumentRoute struct {
	Route  string
	Type   locations.DocumentType
	Filter string
}

type MainDocument struct {
	Route  string                 `json:"route"`
	Type   locations.DocumentType `json:"type"`
	Filter string                 `json:"filter"`
	Params map[string]string      `json:"params,omitempty"`
}

// Document is the projection of an authored document the studio sends when it
// asks where that document is shown.
type Document struct {
	ID    string `json:"_id,omitempty"`
	Type  string `json:"_type"`
	Name  string `json:"name,omitempty"`
	Title string `json:"title,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

func DefaultMainDocuments() []MainDocumentRoute {
	return []MainDocumentRoute{
		{
			Route:  "/",
			Type:   locations.TypeSettings,
			Filter: `_type == "settings" && _id == "siteSettings"`,
		},
		{
			Route:  "/:slug",
			Type:   locations.TypePage,
			Filter: `_type == "page" && slug.current == $slug || _id == $slug`,
		},
		{
			Route:  "/posts/:slug",
			Type:   locations.TypePost,
			Filter: `_type == "post" && slug.current == $slug || _id == $slug`,
		},
	}
}

type Resolver struct {
	table     *router.Table
	routes    map[string]MainDocumentRoute
	locations locations.Resolver
}

func NewResolver(routes []MainDocumentRoute, locationResolver locations.Resolver) (*Resolver, error) {
	patterns := make([]string, 0, len(routes))
	byPattern := make(map[string]MainDocumentRoute, len(routes))
	for _, route := range routes {
		patterns = append(patterns, route.Route)
		byPattern[route.Route] = route
	}

	table, err := router.NewTable(patterns...)
	if err != nil {
		return nil, fmt.Errorf("build main document table: %w", err)
	}

	return &Resolver{
		table:     table,
		routes:    byPattern,
		locations: locationResolver,
	}, nil
}

// MainDocumentFor finds the document rendered at a preview URL. Absolute URLs
// and query strings are accepted; only the path takes part in matching.
func (r *Resolver) MainDocumentFor(rawURL string) (MainDocument, bool) {
	requestPath := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		requestPath = parsed.Path
	}

	match, ok := r.table.Match(requestPath)
	if !ok {
		return MainDocument{}, false
	}

	route, ok := r.routes[match.Pattern]
	if !ok {
		return MainDocument{}, false
	}

	return MainDocument{
		Route:  route.Route,
		Type:   route.Type,
		Filter: route.Filter,
		Params: match.Params,
	}, true
}

// Locations lists where a document appears on the site. Documents of a type
// the site does not render report false.
func (r *Resolver) Locations(doc Document) (locations.DocumentLocations, bool) {
	switch locations.DocumentType(doc.Type) {
	case locations.TypeSettings:
		return r.locations.ResolveLocationsForSettings(), true
	case locations.TypePage:
		return locations.DocumentLocations{
			Locations: r.locations.ResolveLocationsForPage(locations.PageDocument{
				Name: doc.Name,
				Slug: doc.Slug,
			}),
		}, true
	case locations.TypePost:
		return locations.DocumentLocations{
			Locations: r.locations.ResolveLocationsForPost(locations.PostDocument{
				Title: doc.Title,
				Slug:  doc.Slug,
			}),
		}, true
	default:
		_, _ = r.locations.ResolveHref(doc.Type, doc.Slug)
		return locations.DocumentLocations{}, false
	}
}

// Href resolves the preview path of a single document.
func (r *Resolver) Href(documentType string, slug string) (string, bool) {
	return r.locations.ResolveHref(documentType, slug)
}
