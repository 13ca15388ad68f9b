// Package metadata fetches and applies comic metadata from online
// catalogs.
package metadata

import (
	"context"
	"errors"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
)

var (
	ErrNoResults   = errors.New("no search results")
	ErrNoSelection = errors.New("no result selected")
)

// SearchResult is one candidate series returned by a catalog search.
type SearchResult struct {
	ID          string
	Title       string
	Description string
}

// Source is a metadata catalog that can be searched by series name and
// fetched by series id.
type Source interface {
	Search(ctx context.Context, name string) ([]SearchResult, error)
	Fetch(ctx context.Context, id string) (*comicinfo.Metadata, error)
}
