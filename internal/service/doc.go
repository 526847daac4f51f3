// Package service implements business logic on top of the repositories.
//
// Services depend on small repository interfaces declared in this package,
// so tests can substitute in-memory fakes. Every business-rule failure is
// one of the sentinel errors in errors.go; handlers map each sentinel to an
// HTTP status and message. A service method therefore returns either a
// domain value, a sentinel, or a wrapped infrastructure error.
package service
