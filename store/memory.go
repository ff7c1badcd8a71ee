package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by tests and local development.
// Documents are held as JSON-shaped maps keyed by collection.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]*memoryDoc
}

type memoryDoc struct {
	id   string
	data map[string]interface{}
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]*memoryDoc),
	}
}

// Insert stores a document and returns a generated identifier
func (s *MemoryStore) Insert(ctx context.Context, collection string, doc interface{}) (string, error) {
	data, err := toMap(doc)
	if err != nil {
		return "", err
	}
	delete(data, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.collections[collection] = append(s.collections[collection], &memoryDoc{id: id, data: data})
	return id, nil
}

// FindOne decodes the first matching document into out
func (s *MemoryStore) FindOne(ctx context.Context, collection string, filter Filter, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			if out == nil {
				return nil
			}
			data := copyMap(d.data)
			data["id"] = d.id
			raw, err := json.Marshal(data)
			if err != nil {
				return err
			}
			return json.Unmarshal(raw, out)
		}
	}
	return ErrNotFound
}

// Find returns up to limit matching documents with identifiers under "_id"
func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]Document, 0)
	for _, d := range s.collections[collection] {
		if !matches(d, filter) {
			continue
		}
		doc := Document(copyMap(d.data))
		doc["_id"] = d.id
		docs = append(docs, doc)
		if limit > 0 && len(docs) >= limit {
			break
		}
	}
	return docs, nil
}

// Update merges set into the first matching document
func (s *MemoryStore) Update(ctx context.Context, collection string, filter Filter, set Filter) (int64, error) {
	patch, err := toMap(map[string]interface{}(set))
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.collections[collection] {
		if matches(d, filter) {
			for k, v := range patch {
				d.data[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

// Collections lists the collection names seen so far
func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	return names, nil
}

// Ping always succeeds
func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

// Close is a no-op
func (s *MemoryStore) Close(ctx context.Context) {}

func matches(d *memoryDoc, filter Filter) bool {
	for k, want := range filter {
		if k == "_id" {
			if d.id != want {
				return false
			}
			continue
		}
		got, ok := d.data[k]
		if !ok || !valueEqual(got, want) {
			return false
		}
	}
	return true
}

// valueEqual compares a stored JSON-shaped value with a filter value.
// Filters in practice carry strings, so a string comparison covers them;
// anything else falls back to a JSON round-trip comparison.
func valueEqual(got, want interface{}) bool {
	if gs, ok := got.(string); ok {
		ws, ok := want.(string)
		return ok && gs == ws
	}
	gr, err1 := json.Marshal(got)
	wr, err2 := json.Marshal(want)
	return err1 == nil && err2 == nil && string(gr) == string(wr)
}

// toMap converts a typed document into its JSON map shape
func toMap(doc interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	data := map[string]interface{}{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}

func copyMap(data map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out
}
