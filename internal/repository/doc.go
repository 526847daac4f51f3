// Package repository implements data access against SurrealDB.
//
// Each repository wraps a database.Database handle and translates between
// SurrealQL results and the model types. Reads return (nil, nil) when the
// record does not exist; callers decide whether that is an error.
//
// Writes that touch two records at once (attaching cargo to an airplane,
// detaching it, or deleting either side of an existing link) go through
// database.AtomicBatch so both sides of the link change together or not
// at all.
package repository
