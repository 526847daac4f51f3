package service

import (
	"context"
	"fmt"

	"github.com/forgo/hangar/internal/model"
)

// CargoRepository defines the interface for cargo storage
type CargoRepository interface {
	Create(ctx context.Context, cargo *model.Cargo) error
	GetByID(ctx context.Context, id int64) (*model.Cargo, error)
	List(ctx context.Context, limit, offset int) ([]*model.Cargo, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, id int64, fields model.CargoFields) (*model.Cargo, error)
	Delete(ctx context.Context, cargo *model.Cargo) error
}

// CargoService handles cargo business logic. Cargo has no owner; any caller
// may read or modify it.
type CargoService struct {
	cargoRepo CargoRepository
}

// NewCargoService creates a new cargo service
func NewCargoService(cargoRepo CargoRepository) *CargoService {
	return &CargoService{cargoRepo: cargoRepo}
}

// Create creates a new unassigned cargo
func (s *CargoService) Create(ctx context.Context, weight int, item string) (*model.Cargo, error) {
	cargo := &model.Cargo{
		Weight: weight,
		Item:   item,
	}

	if err := s.cargoRepo.Create(ctx, cargo); err != nil {
		return nil, fmt.Errorf("failed to create cargo: %w", err)
	}

	return cargo, nil
}

// Get retrieves a cargo by ID
func (s *CargoService) Get(ctx context.Context, id int64) (*model.Cargo, error) {
	cargo, err := s.cargoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cargo: %w", err)
	}
	if cargo == nil {
		return nil, ErrCargoNotFound
	}

	return cargo, nil
}

// List retrieves a page of all cargo along with the total count
func (s *CargoService) List(ctx context.Context, limit, offset int) ([]*model.Cargo, int, error) {
	cargos, err := s.cargoRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list cargo: %w", err)
	}

	total, err := s.cargoRepo.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count cargo: %w", err)
	}

	return cargos, total, nil
}

// Update applies the non-nil fields to a cargo and returns the updated
// record. The carrier link is managed by AssignmentService, never here.
func (s *CargoService) Update(ctx context.Context, id int64, fields model.CargoFields) (*model.Cargo, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	cargo, err := s.cargoRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update cargo: %w", err)
	}
	if cargo == nil {
		return nil, ErrCargoNotFound
	}

	return cargo, nil
}

// Delete removes a cargo. If it is on an airplane, the airplane's cargo
// list is pruned in the same transaction.
func (s *CargoService) Delete(ctx context.Context, id int64) error {
	cargo, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.cargoRepo.Delete(ctx, cargo); err != nil {
		return fmt.Errorf("failed to delete cargo: %w", err)
	}

	return nil
}
