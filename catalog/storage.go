package catalog

import (
	"fmt"
	"time"

	"github.com/mohitkumar/fotoflow/model"
	c "github.com/patrickmn/go-cache"
)

type CatalogStorage interface {
	SaveCatalogDefinition(def model.Catalog) error
	DeleteCatalogDefinition(name string) error
	GetCatalogDefinition(name string) (*model.Catalog, error)
}

// InMemoryStorage keeps catalog definitions in process memory. Definitions
// never expire.
type InMemoryStorage struct {
	cache *c.Cache
}

var _ CatalogStorage = new(InMemoryStorage)

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		cache: c.New(c.NoExpiration, 10*time.Minute),
	}
}

func (s *InMemoryStorage) SaveCatalogDefinition(def model.Catalog) error {
	s.cache.Set(def.Name, def, c.NoExpiration)
	return nil
}

func (s *InMemoryStorage) DeleteCatalogDefinition(name string) error {
	s.cache.Delete(name)
	return nil
}

func (s *InMemoryStorage) GetCatalogDefinition(name string) (*model.Catalog, error) {
	v, found := s.cache.Get(name)
	if !found {
		return nil, fmt.Errorf("catalog %s not found", name)
	}
	def := v.(model.Catalog)
	return &def, nil
}
