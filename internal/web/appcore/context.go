package appcore

import (
	"errors"

	"studio/internal/content"
	"studio/internal/presentation"
)

var errContentServiceUnavailable = errors.New("content service unavailable")

type Context struct {
	service *content.Service
	preview presentation.Config
}

func NewContext(service *content.Service, preview presentation.Config) *Context {
	return &Context{service: service, preview: preview.Normalize()}
}

func IsNotFoundError(err error) bool {
	return errors.Is(err, content.ErrNotFound)
}

func contentService(appCtx *Context) (*content.Service, error) {
	if appCtx == nil || appCtx.service == nil {
		return nil, errContentServiceUnavailable
	}
	return appCtx.service, nil
}
