package iocatalog_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gndefrag/internal/iocatalog"
	"github.com/gnames/gndefrag/internal/iotesting"
	"github.com/gnames/gndefrag/pkg/catalog"
	"github.com/gnames/gndefrag/pkg/config"
	"github.com/gnames/gndefrag/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSQLite(t *testing.T) {
	assert.True(t, iocatalog.IsSQLite("/tmp/storage.db"))
	assert.True(t, iocatalog.IsSQLite("storage.SQLITE"))
	assert.True(t, iocatalog.IsSQLite("storage.sqlite3"))
	assert.False(t, iocatalog.IsSQLite("storage.in"))
	assert.False(t, iocatalog.IsSQLite("storage"))
}

func TestLoadText(t *testing.T) {
	path := iotesting.WriteFile(t, "data.in", iotesting.ScenarioText)

	l := iocatalog.New(config.New(), path)
	c, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, iotesting.ScenarioCatalog().Objects(), c.Objects())
	assert.Equal(t, 20.0, c.DiskSpace())
	assert.Equal(t, 100, c.TokenCount())
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.in")
	_, err := iocatalog.New(config.New(), path).Load(context.Background())
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.ReadCatalogError, gnErr.Code)
}

func TestLoadEmpty(t *testing.T) {
	path := iotesting.WriteFile(t, "empty.in", "1000 100\n")

	t.Run("empty catalog by default", func(t *testing.T) {
		c, err := iocatalog.New(config.New(), path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("synthetic fallback", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptOptimizeSyntheticFallback(true),
			config.OptOptimizeSeed(7),
		})
		c, err := iocatalog.New(cfg, path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, iocatalog.SyntheticNum, c.Len())
		assert.Equal(t, 1000.0, c.DiskSpace())

		c2, err := iocatalog.New(cfg, path).Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, c.Objects(), c2.Objects(), "same seed, same data")
	})
}

func TestSynthetic(t *testing.T) {
	c := iocatalog.Synthetic(iocatalog.NewRand(1), 500, 1000, 100)
	require.Equal(t, 500, c.Len())
	for i, v := range c.Objects() {
		assert.Equal(t, i+1, v.ID)
		assert.Equal(t, i+1, v.OriginalPosition)
		assert.GreaterOrEqual(t, v.Size, 0.1)
		assert.Less(t, v.Size, 10.0)
		assert.GreaterOrEqual(t, v.AccessFrequency, 0.1)
		assert.Less(t, v.AccessFrequency, 1.0)
	}
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample_test.in")
	err := iocatalog.Generate(path, 150, 1000, 100, iocatalog.NewRand(3))
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	c, err := iocatalog.ParseText(f, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 150, c.Len())
	assert.Equal(t, 1000.0, c.DiskSpace())
	assert.Equal(t, 100, c.TokenCount())
	assert.Equal(t, 150, c.Object(149).ID)
}

func TestGenerateError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sample.in")
	err := iocatalog.Generate(path, 10, 1000, 100, iocatalog.NewRand(3))
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.GenerateCatalogError, gnErr.Code)
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.db")
	createStorageDB(t, path)
	ctx := context.Background()

	t.Run("all systems", func(t *testing.T) {
		c, err := iocatalog.LoadSQLite(ctx, path, "", 1000, 100)
		require.NoError(t, err)
		require.Equal(t, 4, c.Len())

		ids := make([]int, c.Len())
		for i, v := range c.Objects() {
			ids[i] = v.ID
		}
		// ordered by original_position, "obj-x" replaced by row number
		assert.Equal(t, []int{11, 2, 13, 14}, ids)
		assert.Equal(t, catalog.Object{
			ID: 11, Size: 2.5, AccessFrequency: 0.9, OriginalPosition: 1,
		}, c.Object(0))
	})

	t.Run("one system", func(t *testing.T) {
		c, err := iocatalog.LoadSQLite(ctx, path, "sys-b", 1000, 100)
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		assert.Equal(t, 14, c.Object(0).ID)
	})

	t.Run("through loader", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptOptimizeDiskSpace(50)})
		c, err := iocatalog.New(cfg, path).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, c.Len())
		assert.Equal(t, 50.0, c.DiskSpace())
	})

	t.Run("invalid values", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.db")
		createStorageDB(t, bad)
		db, err := sql.Open("sqlite", bad)
		require.NoError(t, err)
		_, err = db.Exec(`
INSERT INTO storage_objects
  (object_id, system_id, name, size, access_frequency,
   original_position, current_position)
VALUES ('21', 'sys-c', 'negative', -3.0, 0.5, 5, 5),
       ('22', 'sys-c', 'infinite', 1e999, 0.5, 6, 6),
       ('23', 'sys-c', 'busy', 2.0, -1e999, 7, 7),
       ('24', 'sys-c', 'valid', 2.0, 0.5, 8, 8)`)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		c, err := iocatalog.LoadSQLite(ctx, bad, "sys-c", 1000, 100)
		require.NoError(t, err)
		require.Equal(t, 1, c.Len())
		assert.Equal(t, 24, c.Object(0).ID)
	})

	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.db")
		_, err := iocatalog.LoadSQLite(ctx, missing, "", 1000, 100)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.SQLiteCatalogError, gnErr.Code)
		_, err = os.Stat(missing)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("no table", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.db")
		db, err := sql.Open("sqlite", empty)
		require.NoError(t, err)
		_, err = db.Exec("CREATE TABLE other (id INTEGER)")
		require.NoError(t, err)
		require.NoError(t, db.Close())

		_, err = iocatalog.LoadSQLite(ctx, empty, "", 1000, 100)
		require.Error(t, err)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.Equal(t, errcode.SQLiteCatalogError, gnErr.Code)
	})
}

func createStorageDB(t *testing.T, path string) {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
CREATE TABLE storage_objects (
  object_id TEXT PRIMARY KEY,
  system_id TEXT NOT NULL,
  name TEXT NOT NULL,
  size REAL NOT NULL,
  access_frequency REAL NOT NULL,
  original_position INTEGER NOT NULL,
  current_position INTEGER NOT NULL
)`)
	require.NoError(t, err)

	rows := []struct {
		id, system string
		size, freq float64
		pos        int
	}{
		{"13", "sys-a", 1.0, 0.2, 3},
		{"11", "sys-a", 2.5, 0.9, 1},
		{"obj-x", "sys-a", 4.0, 0.4, 2},
		{"14", "sys-b", 9.0, 0.1, 4},
	}
	for _, v := range rows {
		_, err = db.Exec(`
INSERT INTO storage_objects
  (object_id, system_id, name, size, access_frequency,
   original_position, current_position)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
			v.id, v.system, "object "+v.id, v.size, v.freq, v.pos, v.pos)
		require.NoError(t, err)
	}
}
