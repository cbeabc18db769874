package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mohitkumar/fotoflow/analytics"
	"github.com/mohitkumar/fotoflow/catalog"
	"github.com/mohitkumar/fotoflow/flow"
	"github.com/mohitkumar/fotoflow/logger"
	"github.com/mohitkumar/fotoflow/model"
	"github.com/mohitkumar/fotoflow/pricing"
	c "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Session pairs one controller with its own selection. Quotes are memoized by
// selection version; a stale memo is never returned.
type Session struct {
	Id         string
	Catalog    string
	Controller *flow.FlowController
	collector  analytics.SelectionDataCollector

	mu           sync.Mutex
	quote        *model.Quote
	quoteVersion uint64
}

func (s *Session) Quote() (*model.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.Controller.Selection()
	if s.quote != nil && s.quoteVersion == sel.Version() {
		return s.quote, nil
	}
	q, err := pricing.Price(sel, s.Controller.Catalog())
	if err != nil {
		return nil, err
	}
	s.quote, s.quoteVersion = q, sel.Version()
	s.collector.RecordQuote(s.Catalog, s.Id, q)
	return q, nil
}

func (s *Session) Summary() []string {
	return pricing.Summarize(s.Controller.Selection(), s.Controller.Catalog())
}

type SessionService interface {
	Create(catalogName string) (*Session, error)
	Get(id string) (*Session, error)
	Delete(id string)
}

type SessionServiceImpl struct {
	catalogs  catalog.CatalogService
	collector analytics.SelectionDataCollector
	cache     *c.Cache
}

// NewSessionService keeps sessions in memory; a session untouched for ttl is
// dropped.
func NewSessionService(catalogs catalog.CatalogService, collector analytics.SelectionDataCollector, ttl time.Duration) *SessionServiceImpl {
	if collector == nil {
		collector = analytics.Noop
	}
	return &SessionServiceImpl{
		catalogs:  catalogs,
		collector: collector,
		cache:     c.New(ttl, 10*time.Minute),
	}
}

func (ss *SessionServiceImpl) Create(catalogName string) (*Session, error) {
	cat, err := ss.catalogs.GetCatalog(catalogName)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	s := &Session{
		Id:         id,
		Catalog:    cat.Name,
		Controller: flow.NewFlowController(cat, model.NewSelection(), flow.WithSessionId(id), flow.WithCollector(ss.collector)),
		collector:  ss.collector,
	}
	ss.cache.SetDefault(id, s)
	logger.Info("session created", zap.String("session", id), zap.String("catalog", cat.Name))
	return s, nil
}

// Get returns the session and extends its lifetime.
func (ss *SessionServiceImpl) Get(id string) (*Session, error) {
	v, found := ss.cache.Get(id)
	if !found {
		return nil, fmt.Errorf("session %s not found", id)
	}
	s := v.(*Session)
	ss.cache.SetDefault(id, s)
	return s, nil
}

func (ss *SessionServiceImpl) Delete(id string) {
	ss.cache.Delete(id)
	logger.Info("session deleted", zap.String("session", id))
}
