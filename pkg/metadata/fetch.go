package metadata

import (
	"context"
	"io"

	"github.com/comic-utils/tankobon/pkg/comicinfo"
)

// FetchByName searches src for name, picks one result, and fetches its
// full metadata. Prompting, when needed, happens on in/out.
func FetchByName(ctx context.Context, src Source, name string, useFirst bool, in io.Reader, out io.Writer) (*comicinfo.Metadata, *SearchResult, error) {
	results, err := src.Search(ctx, name)
	if err != nil {
		return nil, nil, err
	}

	picked, err := Pick(name, results, useFirst, in, out)
	if err != nil {
		return nil, nil, err
	}

	md, err := src.Fetch(ctx, picked.ID)
	if err != nil {
		return nil, nil, err
	}

	return md, picked, nil
}
