package stor

import (
	"sync"
)

type InMemoryPageCacheStor struct {
	mu    sync.Mutex
	pages map[string]string
}

func NewInMemoryPageCacheStor() *InMemoryPageCacheStor {
	return &InMemoryPageCacheStor{pages: make(map[string]string)}
}

func (s *InMemoryPageCacheStor) GetPage(url string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	body, ok := s.pages[url]
	return body, ok, nil
}

func (s *InMemoryPageCacheStor) PutPage(url, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pages[url] = body
	return nil
}
