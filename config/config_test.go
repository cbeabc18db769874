package config

import (
	"testing"
	"time"

	"github.com/mohitkumar/fotoflow/analytics"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{CatalogName: DEFAULT_CATALOG, SessionTTL: time.Hour}
	require.NoError(t, valid.Validate())

	for scenario, mutate := range map[string]func(c *Config){
		"no catalog":  func(c *Config) { c.CatalogName = "" },
		"ttl not set": func(c *Config) { c.SessionTTL = 0 },
		"no log file": func(c *Config) { c.AnalyticsConfig.CollectorType = analytics.LOG_FILE_DATA_COLLECTOR },
	} {
		t.Run(scenario, func(t *testing.T) {
			c := valid
			mutate(&c)
			require.Error(t, c.Validate())
		})
	}
}
