package repository

import (
	"errors"
	"sync"

	"github.com/gogotex/docstore/internal/document"
	"github.com/google/uuid"
)

var (
	ErrNilDocument = errors.New("document is nil")
)

// IDGenerator produces candidate document identifiers.
type IDGenerator func() string

// Option configures a MemoryRepo.
type Option func(*MemoryRepo)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *MemoryRepo) {
		if gen != nil {
			m.newID = gen
		}
	}
}

// MemoryRepo keeps documents in a map keyed by id for the lifetime of the
// value. It is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*document.Document
	newID IDGenerator
}

func NewMemoryRepo(opts ...Option) *MemoryRepo {
	m := &MemoryRepo{
		store: make(map[string]*document.Document),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Save upserts doc and returns it with its final id set. A doc whose id is
// already stored replaces the previous value in full.
func (m *MemoryRepo) Save(doc *document.Document) (*document.Document, error) {
	d, _, err := m.Upsert(doc)
	return d, err
}

// Upsert is Save that also reports whether a new entry was inserted (true)
// or an existing one replaced (false).
func (m *MemoryRepo) Upsert(doc *document.Document) (*document.Document, bool, error) {
	if doc == nil {
		return nil, false, ErrNilDocument
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// A supplied id that is not stored yet is discarded, not honoured: only
	// ids handed out by this repo can be used to update.
	_, exists := m.store[doc.ID]
	if doc.ID == "" || !exists {
		doc.ID = m.uniqueID()
	}
	m.store[doc.ID] = doc
	return doc, !exists, nil
}

// uniqueID must be called with mu held.
func (m *MemoryRepo) uniqueID() string {
	for {
		id := m.newID()
		if _, taken := m.store[id]; id != "" && !taken {
			return id
		}
	}
}

func (m *MemoryRepo) FindByID(id string) (*document.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.store[id]
	return d, ok
}

// Search returns every stored document matching req. Order is unspecified.
func (m *MemoryRepo) Search(req *document.SearchRequest) []*document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		if req.Matches(d) {
			out = append(out, d)
		}
	}
	return out
}

func (m *MemoryRepo) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
