package catalog

import (
	"sync"

	"github.com/mohitkumar/fotoflow/logger"
	"github.com/mohitkumar/fotoflow/model"
	"go.uber.org/zap"
)

type CatalogService interface {
	GetCatalog(name string) (*Catalog, error)
	RegisterCatalog(def model.Catalog) error
	ValidateCatalog(def model.Catalog) error
	GetCatalogStorage() CatalogStorage
}

// CatalogServiceImpl converts stored definitions on first use and keeps the
// runtime catalog until the definition is registered again.
type CatalogServiceImpl struct {
	storage   CatalogStorage
	dir       string
	mu        sync.Mutex
	converted map[string]*Catalog
}

// NewCatalogService returns a service backed by storage. Names missing from
// storage are loaded from dir or the builtin catalogs.
func NewCatalogService(storage CatalogStorage, dir string) CatalogService {
	return &CatalogServiceImpl{
		storage:   storage,
		dir:       dir,
		converted: make(map[string]*Catalog),
	}
}

func (s *CatalogServiceImpl) GetCatalog(name string) (*Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cat, ok := s.converted[name]; ok {
		return cat, nil
	}
	def, err := s.storage.GetCatalogDefinition(name)
	if err != nil {
		def, err = Load(name, s.dir)
		if err != nil {
			return nil, err
		}
		if err := Validate(*def); err != nil {
			return nil, err
		}
		if err := s.storage.SaveCatalogDefinition(*def); err != nil {
			return nil, err
		}
		logger.Info("catalog loaded", zap.String("catalog", name), zap.Int("steps", len(def.Steps)))
	}
	cat, err := Convert(*def)
	if err != nil {
		return nil, err
	}
	s.converted[name] = cat
	return cat, nil
}

func (s *CatalogServiceImpl) RegisterCatalog(def model.Catalog) error {
	if err := s.ValidateCatalog(def); err != nil {
		return err
	}
	if err := s.storage.SaveCatalogDefinition(def); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.converted, def.Name)
	s.mu.Unlock()
	logger.Info("catalog registered", zap.String("catalog", def.Name))
	return nil
}

func (s *CatalogServiceImpl) ValidateCatalog(def model.Catalog) error {
	return Validate(def)
}

func (s *CatalogServiceImpl) GetCatalogStorage() CatalogStorage {
	return s.storage
}
