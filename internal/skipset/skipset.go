// Package skipset builds the skip predicate from a prior chunksums file:
// paths already present are skipped on the next run.
package skipset

import (
	"os"
	"sync"

	"github.com/go-chunksum/chunksum/internal/chunksumsfmt"
)

// Set is a concurrency-safe membership set of previously processed paths.
type Set struct {
	mu      sync.RWMutex
	entries map[string]struct{}
}

// Build parses priorFile with chunksumsfmt and returns a Set containing
// every path it names. A missing file is not an error: it yields an empty
// set and nothing is skipped.
func Build(priorFile string) (*Set, error) {
	s := &Set{entries: make(map[string]struct{})}
	if priorFile == "" {
		return s, nil
	}

	f, err := os.Open(priorFile)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	err = chunksumsfmt.ParseStream(f, func(r chunksumsfmt.Result) {
		s.entries[r.Path] = struct{}{}
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Contains reports whether path was present in the prior chunksums file.
func (s *Set) Contains(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[path]
	return ok
}

// Add records path as seen, so a later Contains call on the same Set
// (e.g. within one run, across workers) reflects it too.
func (s *Set) Add(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[path] = struct{}{}
}
