package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Airplane Errors =====
var (
	ErrAirplaneNotFound = errors.New("airplane not found")
	ErrNotPilot         = errors.New("requester is not the airplane's pilot")
)

// ===== Cargo Errors =====
var (
	ErrCargoNotFound = errors.New("cargo not found")
)

// ===== Assignment Errors =====
var (
	ErrAssignmentPairNotFound = errors.New("airplane and/or cargo not found")
	ErrCargoAlreadyAssigned   = errors.New("cargo is already on an airplane")
	ErrInsufficientCapacity   = errors.New("airplane does not have enough capacity left")
	ErrCargoNotOnAirplane     = errors.New("cargo is not assigned to that airplane")
)

// ===== Auth Errors =====
var (
	ErrProviderError  = errors.New("identity provider error")
	ErrInvalidIDToken = errors.New("invalid ID token")
)
