package iocatalog

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gnames/gndefrag/pkg/catalog"
	_ "modernc.org/sqlite"
)

const objectsQuery = `
SELECT object_id, size, access_frequency
  FROM storage_objects`

// LoadSQLite reads objects from the storage_objects table of a SQLite
// database in the order of their original_position. If systemID is not
// empty, only objects of that storage system are read. Non-numeric
// object ids are replaced by the 1-based row number. Rows with negative
// or non-finite size or frequency are skipped.
func LoadSQLite(
	ctx context.Context,
	path, systemID string,
	diskSpace float64,
	tokenCount int,
) (*catalog.Catalog, error) {
	// sql.Open would silently create a new database
	if _, err := os.Stat(path); err != nil {
		return nil, SQLiteCatalogError(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, SQLiteCatalogError(path, err)
	}
	defer db.Close()

	q := objectsQuery
	var args []any
	if systemID != "" {
		q += "\n WHERE system_id = ?"
		args = append(args, systemID)
	}
	q += "\n ORDER BY original_position, rowid"

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, SQLiteCatalogError(path, err)
	}
	defer rows.Close()

	var objs []catalog.Object
	var rowNum int
	for rows.Next() {
		rowNum++
		var id string
		var obj catalog.Object
		if err = rows.Scan(&id, &obj.Size, &obj.AccessFrequency); err != nil {
			return nil, SQLiteCatalogError(path, err)
		}
		if !validValues(obj.Size, obj.AccessFrequency) {
			slog.Debug("Skipping storage object with invalid values",
				"row", rowNum, "object_id", id,
				"size", obj.Size, "access_frequency", obj.AccessFrequency)
			continue
		}
		obj.ID = parseID(id, rowNum)
		objs = append(objs, obj)
	}
	if err = rows.Err(); err != nil {
		return nil, SQLiteCatalogError(path, err)
	}

	return catalog.New(objs, diskSpace, tokenCount), nil
}
