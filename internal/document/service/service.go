package service

import (
	"github.com/gogotex/docstore/internal/document"
	"github.com/gogotex/docstore/internal/document/repository"
	"github.com/gogotex/docstore/pkg/logger"
	"github.com/gogotex/docstore/pkg/metrics"
)

// Service defines the document operations offered to callers.
type Service interface {
	Save(d *document.Document) (*document.Document, error)
	FindByID(id string) (*document.Document, bool)
	Search(req *document.SearchRequest) []*document.Document
	Count() int
}

// Repository is the storage the service delegates to.
type Repository interface {
	Upsert(d *document.Document) (*document.Document, bool, error)
	FindByID(id string) (*document.Document, bool)
	Search(req *document.SearchRequest) []*document.Document
	Count() int
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(opts ...repository.Option) Service {
	return New(repository.NewMemoryRepo(opts...))
}

// New wraps repo with logging and metrics.
func New(repo Repository) Service {
	return &instrumentedService{repo: repo}
}

type instrumentedService struct {
	repo Repository
}

func (s *instrumentedService) Save(d *document.Document) (*document.Document, error) {
	requestedID := ""
	if d != nil {
		requestedID = d.ID
	}
	saved, inserted, err := s.repo.Upsert(d)
	if err != nil {
		logger.Warnf("save document: %v", err)
		return nil, err
	}
	path := "update"
	if inserted {
		path = "insert"
		if requestedID != "" {
			logger.Debugf("save: unknown id %q replaced with %q", requestedID, saved.ID)
		}
	}
	metrics.DocumentsSaved.WithLabelValues(path).Inc()
	logger.Debugf("save: id=%s path=%s", saved.ID, path)
	return saved, nil
}

func (s *instrumentedService) FindByID(id string) (*document.Document, bool) {
	d, ok := s.repo.FindByID(id)
	result := "miss"
	if ok {
		result = "hit"
	}
	metrics.DocumentLookups.WithLabelValues(result).Inc()
	logger.Debugf("find: id=%s result=%s", id, result)
	return d, ok
}

func (s *instrumentedService) Search(req *document.SearchRequest) []*document.Document {
	out := s.repo.Search(req)
	metrics.Searches.Inc()
	metrics.SearchMatches.Observe(float64(len(out)))
	logger.Debugf("search: filtered=%v matched=%d", !req.IsEmpty(), len(out))
	return out
}

func (s *instrumentedService) Count() int {
	return s.repo.Count()
}
