package cbz

import (
	"os"
	"sort"
	"sync"

	"github.com/saracen/walker"
)

// FindArchives walks root recursively and returns the paths of every cbz
// archive found, sorted for deterministic processing order. The walk runs
// concurrently but callers always see the same snapshot.
func FindArchives(root string) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)

	walkFn := func(path string, fi os.FileInfo) error {
		if fi.IsDir() || !IsArchive(path) {
			return nil
		}

		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	}

	if err := walker.Walk(root, walkFn); err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}
