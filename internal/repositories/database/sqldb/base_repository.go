package sqldb

import "github.com/jmoiron/sqlx"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sqlx.DB
}

// query rebinds a '?'-placeholder statement for the handle's driver, so the same
// SQL serves both SQLite and PostgreSQL.
func (r *BaseRepository) query(q string) string {
	return r.DB.Rebind(q)
}
