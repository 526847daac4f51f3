// Package model defines domain entities and data structures for the Hangar API.
//
// The model package contains all struct definitions for domain objects,
// request field sets, and the wire error type. Models are used across all
// layers of the application.
//
// # Domain Entities
//
//   - Airplane: aircraft owned by a pilot, carrying an embedded list of
//     assigned cargo references used for capacity accounting
//   - Cargo: a load that is either unassigned or carried by exactly one
//     airplane via its carrier reference
//   - User: application user keyed by the identity provider subject claim
//
// # Bidirectional Link
//
// Airplane.Cargo and Cargo.Carrier are two views of the same relationship:
// a cargo's carrier is non-nil exactly when its id appears in that
// airplane's embedded cargo list. The repository layer persists both sides
// in one transaction so they cannot desynchronize.
//
// # JSON Serialization
//
// All models use json struct tags for API serialization. Record responses
// carry store-assigned numeric ids plus absolute self links filled in by
// the handler layer.
package model
