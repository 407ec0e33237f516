// Package iocatalog reads catalogs of storage objects from text files
// and SQLite databases, and generates random test catalogs.
package iocatalog

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/config"
	"github.com/gnames/gndefrag/pkg/lifecycle"
)

type loader struct {
	cfg  *config.Config
	path string
}

// New creates a Loader for the catalog at path. Files with .db, .sqlite
// or .sqlite3 extension are read as SQLite databases, all other files as
// text catalogs.
func New(cfg *config.Config, path string) lifecycle.Loader {
	return &loader{cfg: cfg, path: path}
}

// IsSQLite reports if the path is treated as a SQLite database.
func IsSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Load reads the catalog. When no valid objects are found and
// synthetic fallback is enabled, a random catalog is returned instead.
func (l *loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	opt := l.cfg.Optimize

	var res *catalog.Catalog
	var err error
	if IsSQLite(l.path) {
		res, err = LoadSQLite(ctx, l.path, opt.SystemID,
			opt.DiskSpace, opt.TokenCount)
	} else {
		res, err = l.loadText()
	}
	if err != nil {
		return nil, err
	}

	if res.Len() == 0 && opt.SyntheticFallback {
		slog.Warn("Catalog has no valid objects, using synthetic data",
			"path", l.path, "objects", SyntheticNum)
		res = Synthetic(NewRand(opt.Seed), SyntheticNum,
			res.DiskSpace(), res.TokenCount())
	}

	slog.Info("Catalog loaded",
		"path", l.path,
		"objects", res.Len(),
		"disk_space", res.DiskSpace(),
		"token_count", res.TokenCount(),
	)
	return res, nil
}

func (l *loader) loadText() (*catalog.Catalog, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, ReadCatalogError(l.path, err)
	}
	defer f.Close()

	res, err := ParseText(f, l.cfg.Optimize.DiskSpace, l.cfg.Optimize.TokenCount)
	if err != nil {
		return nil, ReadCatalogError(l.path, err)
	}
	return res, nil
}
