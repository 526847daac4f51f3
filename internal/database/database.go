// Package database provides the document store abstraction for Hangar.
//
// It defines the Database interface that wraps SurrealDB operations so the
// repository layer stays independent of the driver:
//   - Query: returns multiple results (SELECT returning lists)
//   - QueryOne: returns a single result (SELECT by record id)
//   - Execute: no return value (CREATE/UPDATE/DELETE mutations)
//
// Multi-record mutations that must not desynchronize (cargo assignment,
// detachment, cascading airplane deletes) go through AtomicBatch in
// transaction.go, which wraps the statements in a single
// BEGIN TRANSACTION / COMMIT TRANSACTION block.
//
// Standard errors are defined for common failure cases and checked with
// errors.Is:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // record does not exist
//	}
package database

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")
)

// Database defines the interface for document store operations.
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database connection configuration.
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}
