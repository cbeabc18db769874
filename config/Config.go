package config

import (
	"fmt"
	"time"

	"github.com/mohitkumar/fotoflow/analytics"
)

const DEFAULT_CATALOG = "fobi"

type Config struct {
	// CatalogName selects the catalog a session runs against.
	CatalogName string
	// CatalogDir holds user catalogs named <name>.json; they win over builtin ones.
	CatalogDir string
	// CatalogFile, when set, is registered before CatalogName is looked up.
	CatalogFile     string
	LogLevel        string
	SessionTTL      time.Duration
	AnalyticsConfig analytics.DataCollectorConfig
}

func (c Config) Validate() error {
	if len(c.CatalogName) == 0 && len(c.CatalogFile) == 0 {
		return fmt.Errorf("either catalog name or catalog file is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("session ttl should be positive, got %s", c.SessionTTL)
	}
	if c.AnalyticsConfig.CollectorType == analytics.LOG_FILE_DATA_COLLECTOR && len(c.AnalyticsConfig.FileName) == 0 {
		return fmt.Errorf("analytics file name is required for %s", c.AnalyticsConfig.CollectorType)
	}
	return nil
}
