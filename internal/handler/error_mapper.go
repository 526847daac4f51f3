package handler

import (
	"errors"

	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/internal/service"
)

// MapServiceError converts a service error to an API error response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
//
// The message strings and status pairings are part of the public API
// surface and must not drift.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrAirplaneNotFound):
		return model.NewNotFoundError("Airplane with airplane_id not found.")
	case errors.Is(err, service.ErrCargoNotFound):
		return model.NewNotFoundError("No cargo with this cargo_id exists")
	case errors.Is(err, service.ErrAssignmentPairNotFound):
		return model.NewNotFoundError("The specified airplane and/or cargo does not exist")

	// ===== Access Errors → 401 =====
	// An airplane owned by someone else reads as lacking access, not as
	// missing. Probing IDs therefore reveals which ones exist; that
	// disclosure is accepted in exchange for the more accurate status.
	case errors.Is(err, service.ErrNotPilot):
		return model.NewUnauthorizedError("User does not have access to the airplane.")

	// ===== Assignment Conflicts → 403 =====
	case errors.Is(err, service.ErrCargoAlreadyAssigned):
		return model.NewConflictError("The cargo is already on an airplane")
	case errors.Is(err, service.ErrInsufficientCapacity):
		return model.NewConflictError("The airplane does not have enough capacity left")
	case errors.Is(err, service.ErrCargoNotOnAirplane):
		return model.NewConflictError("The cargo is not assigned to that airplane")

	// ===== Everything else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
