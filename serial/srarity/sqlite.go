package srarity

import (
	"database/sql"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// LoadSQLitePools reads drop pool rows from a SQLite database into
// memory. Expected table:
//
//   pools(category_id INTEGER, world_pool_size INTEGER, dedicated_sources INTEGER)
//
// The returned table is a plain value and safe to share between
// goroutines.
func LoadSQLitePools(path string) (MapPoolTable, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return MapPoolTable{}, errors.Wrap(err, "LoadSQLitePools error: open database")
	}
	defer db.Close()

	pools := MapPoolTable{}
	rows, err := db.Query(`SELECT category_id, world_pool_size, dedicated_sources FROM pools`)
	if err != nil {
		return MapPoolTable{}, errors.Wrap(err, "LoadSQLitePools error: query pools")
	}
	defer rows.Close()
	for rows.Next() {
		var (
			category uint32
			entry    PoolEntry
		)
		if err := rows.Scan(&category, &entry.WorldPoolSize, &entry.DedicatedSources); err != nil {
			return MapPoolTable{}, errors.Wrap(err, "LoadSQLitePools error: scan pool row")
		}
		pools[category] = entry
	}
	if err := rows.Err(); err != nil {
		return MapPoolTable{}, errors.Wrap(err, "LoadSQLitePools error: iterate pools")
	}
	return pools, nil
}
