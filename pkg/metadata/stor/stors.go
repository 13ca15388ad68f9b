// Package stor holds the storage interfaces and implementations backing
// the metadata tools.
package stor

// PageCacheStor caches raw catalog pages keyed by URL, so repeated
// lookups don't hammer the catalog site.
type PageCacheStor interface {
	GetPage(url string) (string, bool, error)
	PutPage(url, body string) error
}
