// Package port defines the narrow capability interfaces the layout use cases
// depend on. Infrastructure adapters implement them.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider provides access to the layout storage database.
type DatabaseProvider interface {
	// DB returns the database connection, opening it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was opened.
	Close() error
}
