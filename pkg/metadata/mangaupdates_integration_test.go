package metadata

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comic-utils/tankobon/pkg/tutil"
)

// Hits the live catalog; run with TANKOBON_TEST=integration.
func TestMangaUpdatesLiveSearch(t *testing.T) {
	if !tutil.IsIntegrationTest() {
		t.Skip("integration test")
	}

	src := NewMangaUpdates(nil)

	results, err := src.Search(context.Background(), "Berserk")
	require.NoError(t, err)
	require.NotEmpty(t, results)

	md, err := src.Fetch(context.Background(), results[0].ID)
	require.NoError(t, err)

	title, ok := md.Get("Title")
	assert.True(t, ok)
	assert.NotEqual(t, "", title)
}
