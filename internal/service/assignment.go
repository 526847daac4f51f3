package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgo/hangar/internal/model"
	"github.com/forgo/hangar/internal/repository"
)

// AssignmentRepository defines the interface for the airplane/cargo link
type AssignmentRepository interface {
	Attach(ctx context.Context, airplane *model.Airplane, cargo *model.Cargo) error
	Detach(ctx context.Context, airplaneID, cargoID int64) error
}

// AssignmentService handles placing cargo on airplanes and taking it off.
//
// The outcome of an assignment attempt is exactly one of: success,
// ErrAssignmentPairNotFound, ErrCargoAlreadyAssigned, or
// ErrInsufficientCapacity. Detachment yields success,
// ErrAssignmentPairNotFound, or ErrCargoNotOnAirplane. Nothing is
// mutated on any failure.
type AssignmentService struct {
	airplaneRepo   AirplaneRepository
	cargoRepo      CargoRepository
	assignmentRepo AssignmentRepository
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(airplaneRepo AirplaneRepository, cargoRepo CargoRepository, assignmentRepo AssignmentRepository) *AssignmentService {
	return &AssignmentService{
		airplaneRepo:   airplaneRepo,
		cargoRepo:      cargoRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Assign places a cargo on an airplane. The cargo must be unassigned and
// the airplane must have enough capacity left for its weight.
func (s *AssignmentService) Assign(ctx context.Context, airplaneID, cargoID int64) error {
	airplane, cargo, err := s.loadPair(ctx, airplaneID, cargoID)
	if err != nil {
		return err
	}

	if cargo.Carrier != nil {
		return ErrCargoAlreadyAssigned
	}
	if !airplane.HasCapacityFor(cargo.Weight) {
		return ErrInsufficientCapacity
	}

	// The repository re-checks both conditions inside the transaction, so
	// a writer that won the race surfaces here instead of desyncing the link
	if err := s.assignmentRepo.Attach(ctx, airplane, cargo); err != nil {
		switch {
		case errors.Is(err, repository.ErrCargoTaken):
			return ErrCargoAlreadyAssigned
		case errors.Is(err, repository.ErrCapacityExceeded):
			return ErrInsufficientCapacity
		}
		return fmt.Errorf("failed to attach cargo: %w", err)
	}

	return nil
}

// Detach takes a cargo off an airplane. The cargo must currently be
// assigned to that exact airplane.
func (s *AssignmentService) Detach(ctx context.Context, airplaneID, cargoID int64) error {
	_, cargo, err := s.loadPair(ctx, airplaneID, cargoID)
	if err != nil {
		return err
	}

	if cargo.Carrier == nil || cargo.Carrier.ID != airplaneID {
		return ErrCargoNotOnAirplane
	}

	if err := s.assignmentRepo.Detach(ctx, airplaneID, cargoID); err != nil {
		if errors.Is(err, repository.ErrCargoElsewhere) {
			return ErrCargoNotOnAirplane
		}
		return fmt.Errorf("failed to detach cargo: %w", err)
	}

	return nil
}

// loadPair fetches both records, collapsing either absence into
// ErrAssignmentPairNotFound.
func (s *AssignmentService) loadPair(ctx context.Context, airplaneID, cargoID int64) (*model.Airplane, *model.Cargo, error) {
	airplane, err := s.airplaneRepo.GetByID(ctx, airplaneID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get airplane: %w", err)
	}

	cargo, err := s.cargoRepo.GetByID(ctx, cargoID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get cargo: %w", err)
	}

	if airplane == nil || cargo == nil {
		return nil, nil, ErrAssignmentPairNotFound
	}

	return airplane, cargo, nil
}
