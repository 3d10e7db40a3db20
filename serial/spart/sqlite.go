package spart

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// LoadSQLiteCatalog reads a part catalog from a SQLite database into
// memory. Expected tables:
//
//   parts(category_id INTEGER, scope TEXT, idx INTEGER, name TEXT)
//   weapon_categories(wire_id INTEGER, category_id INTEGER)
//
// The scope column holds "root" or "sub". The returned catalog is a
// plain value and safe to share between goroutines.
func LoadSQLiteCatalog(path string) (MapCatalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: open database")
	}
	defer db.Close()

	catalog := MapCatalog{
		Parts:      map[PartKey]PartIdentity{},
		Categories: map[uint32]uint32{},
	}

	rows, err := db.Query(`SELECT category_id, scope, idx, name FROM parts`)
	if err != nil {
		return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: query parts")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			category uint32
			scope    string
			index    uint32
			name     string
		)
		if err := rows.Scan(&category, &scope, &index, &name); err != nil {
			return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: scan part row")
		}
		key := PartKey{Category: category, Scope: Scope(scope), Index: index}
		catalog.Parts[key] = PartIdentity{Name: name}
	}
	if err := rows.Err(); err != nil {
		return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: iterate parts")
	}

	overrides, err := db.Query(`SELECT wire_id, category_id FROM weapon_categories`)
	if err != nil {
		return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: query weapon categories")
	}
	defer overrides.Close()
	for overrides.Next() {
		var wireID, category uint32
		if err := overrides.Scan(&wireID, &category); err != nil {
			return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: scan weapon category row")
		}
		catalog.Categories[wireID] = category
	}
	if err := overrides.Err(); err != nil {
		return MapCatalog{}, errors.Wrap(err, "LoadSQLiteCatalog error: iterate weapon categories")
	}

	return catalog, nil
}
