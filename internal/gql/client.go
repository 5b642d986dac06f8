package gql

//go:generate go run github.com/Khan/genqlient genqlient.yaml

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	genqlientgraphql "github.com/Khan/genqlient/graphql"

	"studio/internal/config"
)

type Perspective string

const (
	PerspectivePublished Perspective = "published"
	PerspectiveDrafts    Perspective = "drafts"
)

// Endpoint builds the default GraphQL endpoint for a project dataset.
func Endpoint(projectID string, dataset string, apiVersion string) string {
	return fmt.Sprintf(
		"https://%s.api.sanity.io/%s/graphql/%s/default",
		strings.TrimSpace(projectID),
		strings.TrimSpace(apiVersion),
		strings.TrimSpace(dataset),
	)
}

func NewClient(cfg config.Config, perspective Perspective) genqlientgraphql.Client {
	return NewClientWithTransport(cfg, perspective, http.DefaultTransport)
}

func NewClientWithTransport(
	cfg config.Config,
	perspective Perspective,
	base http.RoundTripper,
) genqlientgraphql.Client {
	endpoint := strings.TrimSpace(cfg.GraphQLEndpoint)
	if endpoint == "" {
		endpoint = Endpoint(cfg.ProjectID, cfg.Dataset, cfg.APIVersion)
	}

	client := &http.Client{
		Timeout: 15 * time.Second,
		Transport: &authTransport{
			base:        base,
			token:       cfg.ReadToken,
			perspective: perspective,
		},
	}

	return genqlientgraphql.NewClient(endpoint, client)
}

type authTransport struct {
	base        http.RoundTripper
	token       string
	perspective Perspective
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.token == "" && t.perspective == "" {
		return t.base.RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	if t.token != "" {
		clone.Header.Set("Authorization", "Bearer "+t.token)
	}
	if t.perspective != "" {
		query := clone.URL.Query()
		query.Set("perspective", string(t.perspective))
		clone.URL.RawQuery = query.Encode()
	}
	return t.base.RoundTrip(clone)
}
