package service

import (
	"context"
	"fmt"

	"github.com/forgo/hangar/internal/model"
)

// AirplaneRepository defines the interface for airplane storage
type AirplaneRepository interface {
	Create(ctx context.Context, airplane *model.Airplane) error
	GetByID(ctx context.Context, id int64) (*model.Airplane, error)
	ListByPilot(ctx context.Context, pilot string, limit, offset int) ([]*model.Airplane, error)
	CountByPilot(ctx context.Context, pilot string) (int, error)
	Update(ctx context.Context, id int64, fields model.AirplaneFields) (*model.Airplane, error)
	Delete(ctx context.Context, airplane *model.Airplane) error
}

// AirplaneService handles airplane business logic. Every operation is scoped
// to the requesting pilot: an airplane owned by someone else behaves as if
// the requester lacked access, not as if it did not exist.
type AirplaneService struct {
	airplaneRepo AirplaneRepository
}

// NewAirplaneService creates a new airplane service
func NewAirplaneService(airplaneRepo AirplaneRepository) *AirplaneService {
	return &AirplaneService{airplaneRepo: airplaneRepo}
}

// Create creates a new airplane owned by the given pilot
func (s *AirplaneService) Create(ctx context.Context, pilot, tailNumber, airplaneType string, capacity int) (*model.Airplane, error) {
	airplane := &model.Airplane{
		TailNumber: tailNumber,
		Type:       airplaneType,
		Capacity:   capacity,
		Pilot:      pilot,
	}

	if err := s.airplaneRepo.Create(ctx, airplane); err != nil {
		return nil, fmt.Errorf("failed to create airplane: %w", err)
	}

	return airplane, nil
}

// Get retrieves an airplane, checking that the requester is its pilot
func (s *AirplaneService) Get(ctx context.Context, id int64, pilot string) (*model.Airplane, error) {
	airplane, err := s.airplaneRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get airplane: %w", err)
	}
	if airplane == nil {
		return nil, ErrAirplaneNotFound
	}
	if airplane.Pilot != pilot {
		return nil, ErrNotPilot
	}

	return airplane, nil
}

// List retrieves a page of the pilot's airplanes along with the total count
func (s *AirplaneService) List(ctx context.Context, pilot string, limit, offset int) ([]*model.Airplane, int, error) {
	airplanes, err := s.airplaneRepo.ListByPilot(ctx, pilot, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list airplanes: %w", err)
	}

	total, err := s.airplaneRepo.CountByPilot(ctx, pilot)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count airplanes: %w", err)
	}

	return airplanes, total, nil
}

// Update applies the non-nil fields to the pilot's airplane and returns the
// updated record. The cargo list and owner are not editable.
func (s *AirplaneService) Update(ctx context.Context, id int64, pilot string, fields model.AirplaneFields) (*model.Airplane, error) {
	if _, err := s.Get(ctx, id, pilot); err != nil {
		return nil, err
	}

	airplane, err := s.airplaneRepo.Update(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update airplane: %w", err)
	}
	if airplane == nil {
		return nil, ErrAirplaneNotFound
	}

	return airplane, nil
}

// Delete removes the pilot's airplane. Any cargo it carries becomes
// unassigned.
func (s *AirplaneService) Delete(ctx context.Context, id int64, pilot string) error {
	airplane, err := s.Get(ctx, id, pilot)
	if err != nil {
		return err
	}

	if err := s.airplaneRepo.Delete(ctx, airplane); err != nil {
		return fmt.Errorf("failed to delete airplane: %w", err)
	}

	return nil
}
