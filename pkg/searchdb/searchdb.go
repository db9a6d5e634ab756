package searchdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve/v2"
)

// Connect opens every registered index, creating any that do not exist yet.
func (s *searchDBImpl) Connect(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return nil
	}

	if err := os.MkdirAll(s.rootPath, 0o700); err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	for _, name := range IndexNames() {
		idx, err := s.openOrCreate(name)
		if err != nil {
			// Close whatever opened so far; a half-connected client is unusable.
			for opened, i := range s.indexes {
				_ = i.Close()
				delete(s.indexes, opened)
			}
			return fmt.Errorf("%w: index %s: %v", ErrConnectFailed, name, err)
		}
		s.indexes[name] = idx
		s.l.Infof(ctx, "searchdb: index %q ready", name)
	}

	s.connected = true
	return nil
}

// Disconnect closes all open indexes.
func (s *searchDBImpl) Disconnect() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for name, idx := range s.indexes {
		if err := idx.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close index %s: %w", name, err)
		}
		delete(s.indexes, name)
	}
	s.connected = false
	return firstErr
}

// IsHealthy reports whether all registered indexes are open and readable.
func (s *searchDBImpl) IsHealthy(_ context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.connected {
		return false
	}
	for _, idx := range s.indexes {
		if _, err := idx.DocCount(); err != nil {
			return false
		}
	}
	return true
}

// CreateIndexIfAbsent opens or creates the named index. Already-open
// indexes are a logged no-op.
func (s *searchDBImpl) CreateIndexIfAbsent(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return ErrNotConnected
	}
	if _, ok := s.indexes[name]; ok {
		s.l.Debugf(context.Background(), "searchdb: index %q already exists", name)
		return nil
	}

	idx, err := s.openOrCreate(name)
	if err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	s.indexes[name] = idx
	return nil
}

// DeleteIndexIfPresent closes and removes the named index. Missing
// indexes are a no-op.
func (s *searchDBImpl) DeleteIndexIfPresent(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.connected {
		return ErrNotConnected
	}

	if idx, ok := s.indexes[name]; ok {
		if err := idx.Close(); err != nil {
			return fmt.Errorf("close index %s: %w", name, err)
		}
		delete(s.indexes, name)
	}

	if err := os.RemoveAll(s.indexPath(name)); err != nil {
		return fmt.Errorf("remove index %s: %w", name, err)
	}
	return nil
}

// Search executes a raw search request against the named index.
func (s *searchDBImpl) Search(ctx context.Context, index string, req *bleve.SearchRequest) (*bleve.SearchResult, error) {
	idx, err := s.index(index)
	if err != nil {
		return nil, err
	}
	return idx.SearchInContext(ctx, req)
}

// IndexDocument writes a document to the named index under the given id.
// Re-indexing an existing id replaces the document.
func (s *searchDBImpl) IndexDocument(_ context.Context, index string, id string, doc map[string]any) error {
	idx, err := s.index(index)
	if err != nil {
		return err
	}
	return idx.Index(id, doc)
}

// DeleteDocument removes a document by id. Deleting a missing id is a no-op.
func (s *searchDBImpl) DeleteDocument(_ context.Context, index string, id string) error {
	idx, err := s.index(index)
	if err != nil {
		return err
	}
	return idx.Delete(id)
}

func (s *searchDBImpl) index(name string) (bleve.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.connected {
		return nil, ErrNotConnected
	}
	idx, ok := s.indexes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, name)
	}
	return idx, nil
}

func (s *searchDBImpl) indexPath(name string) string {
	return filepath.Join(s.rootPath, name)
}

func (s *searchDBImpl) openOrCreate(name string) (bleve.Index, error) {
	path := s.indexPath(name)

	idx, err := bleve.Open(path)
	if err == nil {
		return idx, nil
	}
	if err != bleve.ErrorIndexPathDoesNotExist {
		return nil, fmt.Errorf("open index: %w", err)
	}

	m, err := BuildIndexMapping(name)
	if err != nil {
		return nil, fmt.Errorf("build mapping: %w", err)
	}
	idx, err = bleve.New(path, m)
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}
	return idx, nil
}
