package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mohitkumar/fotoflow/model"
)

//go:embed builtin/*.json
var builtinCatalogs embed.FS

// Load looks for name.json in dir first and falls back to the builtin catalogs.
func Load(name string, dir string) (*model.Catalog, error) {
	if len(dir) > 0 {
		userPath := filepath.Join(dir, name+".json")
		if _, err := os.Stat(userPath); err == nil {
			return LoadFile(userPath)
		}
	}
	return LoadBuiltin(name)
}

func LoadFile(path string) (*model.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	var def model.Catalog
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return &def, nil
}

func LoadBuiltin(name string) (*model.Catalog, error) {
	data, err := builtinCatalogs.ReadFile("builtin/" + name + ".json")
	if err != nil {
		return nil, fmt.Errorf("catalog not found: %s", name)
	}
	var def model.Catalog
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("invalid builtin catalog %s: %w", name, err)
	}
	return &def, nil
}

// List returns the builtin catalog names followed by the ones found in dir.
func List(dir string) []string {
	var names []string
	entries, _ := builtinCatalogs.ReadDir("builtin")
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".json" {
			names = append(names, e.Name()[:len(e.Name())-5])
		}
	}
	if len(dir) > 0 {
		if entries, err := os.ReadDir(dir); err == nil {
			var user []string
			for _, e := range entries {
				if filepath.Ext(e.Name()) == ".json" {
					user = append(user, e.Name()[:len(e.Name())-5])
				}
			}
			sort.Strings(user)
			names = append(names, user...)
		}
	}
	return names
}
