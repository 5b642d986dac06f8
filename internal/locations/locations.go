// Package locations maps authored documents to the site paths where they are
// rendered, so the studio's preview pane can offer them as navigation targets.
package locations

import "log"

type DocumentType string

const (
	TypeSettings DocumentType = "settings"
	TypePage     DocumentType = "page"
	TypePost     DocumentType = "post"
)

const (
	untitled     = "Untitled"
	homeTitle    = "Home"
	homeHref     = "/"
	postsPrefix  = "/posts/"
	settingsNote = "This document is used on all pages"
)

// Tone colours the message the studio shows above a document's locations.
type Tone string

const TonePositive Tone = "positive"

// Location is a titled link into the site. An empty Href means no path could
// be produced for the document.
type Location struct {
	Title string `json:"title"`
	Href  string `json:"href,omitempty"`
}

type DocumentLocations struct {
	Locations []Location `json:"locations"`
	Message   string     `json:"message,omitempty"`
	Tone      Tone       `json:"tone,omitempty"`
}

type PageDocument struct {
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

type PostDocument struct {
	Title string `json:"title,omitempty"`
	Slug  string `json:"slug,omitempty"`
}

// Home is the site root every post also links back to.
func Home() Location {
	return Location{Title: homeTitle, Href: homeHref}
}

type Resolver struct {
	Warnf func(format string, args ...any)
}

var defaultResolver = Resolver{}

func (r Resolver) warnf(format string, args ...any) {
	if r.Warnf != nil {
		r.Warnf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// ResolveHref returns the site-relative path for a document of the given type.
// Unknown types produce a single warning and no path.
func (r Resolver) ResolveHref(documentType string, slug string) (string, bool) {
	switch DocumentType(documentType) {
	case TypePost:
		if slug == "" {
			return "", false
		}
		return postsPrefix + slug, true
	case TypePage:
		if slug == "" {
			return "", false
		}
		return "/" + slug, true
	default:
		r.warnf("studio locations: invalid document type: %q", documentType)
		return "", false
	}
}

func (r Resolver) ResolveLocationsForPage(doc PageDocument) []Location {
	href, _ := r.ResolveHref(string(TypePage), doc.Slug)
	return []Location{{Title: titleOr(doc.Name), Href: href}}
}

func (r Resolver) ResolveLocationsForPost(doc PostDocument) []Location {
	href, _ := r.ResolveHref(string(TypePost), doc.Slug)
	candidates := []Location{
		{Title: titleOr(doc.Title), Href: href},
		Home(),
	}

	out := make([]Location, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Href == "" {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func (r Resolver) ResolveLocationsForSettings() DocumentLocations {
	return DocumentLocations{
		Locations: []Location{Home()},
		Message:   settingsNote,
		Tone:      TonePositive,
	}
}

func ResolveHref(documentType string, slug string) (string, bool) {
	return defaultResolver.ResolveHref(documentType, slug)
}

func ResolveLocationsForPage(doc PageDocument) []Location {
	return defaultResolver.ResolveLocationsForPage(doc)
}

func ResolveLocationsForPost(doc PostDocument) []Location {
	return defaultResolver.ResolveLocationsForPost(doc)
}

func ResolveLocationsForSettings() DocumentLocations {
	return defaultResolver.ResolveLocationsForSettings()
}

func titleOr(value string) string {
	if value == "" {
		return untitled
	}
	return value
}
