package stor

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemoryPageCacheStor(t *testing.T) {
	var s PageCacheStor = NewInMemoryPageCacheStor()

	_, found, err := s.GetPage("https://example.com/series/1")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.PutPage("https://example.com/series/1", "<html/>"))

	body, found, err := s.GetPage("https://example.com/series/1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "<html/>", body)
}

func TestGormPageCacheStor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "pages.db")
	s := MustConnectToCache(path)

	_, found, err := s.GetPage("https://example.com/series/1")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, s.PutPage("https://example.com/series/1", "first"))
	require.NoError(t, s.PutPage("https://example.com/series/1", "second"))

	body, found, err := s.GetPage("https://example.com/series/1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "second", body)
}
