package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/forgo/hangar/internal/database"
	"github.com/forgo/hangar/internal/model"
)

var (
	// ErrCargoTaken is returned when the attach guard finds the cargo
	// already carried by an airplane.
	ErrCargoTaken = errors.New("cargo already carried")

	// ErrCapacityExceeded is returned when the attach guard finds the
	// airplane without enough capacity left for the cargo.
	ErrCapacityExceeded = errors.New("airplane capacity exceeded")

	// ErrCargoElsewhere is returned when the detach guard finds the cargo
	// not carried by the given airplane.
	ErrCargoElsewhere = errors.New("cargo not carried by that airplane")
)

// AssignmentRepository maintains the bidirectional link between airplanes
// and the cargo they carry. Both sides of the link are written in a single
// transaction, and the link preconditions are re-checked inside that
// transaction: a concurrent writer that claims the cargo or fills the
// airplane between the caller's read and the commit makes the guard THROW,
// rolling the whole batch back.
type AssignmentRepository struct {
	db database.Database
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db database.Database) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Attach places a cargo on an airplane: the cargo's carrier is set and a
// {id, weight} entry is appended to the airplane's cargo list atomically.
// Returns ErrCargoTaken or ErrCapacityExceeded when the in-transaction
// guard rejects the link.
func (r *AssignmentRepository) Attach(ctx context.Context, airplane *model.Airplane, cargo *model.Cargo) error {
	now := time.Now().UTC().Format(time.RFC3339)

	batch := database.NewAtomicBatch()
	batch.Add(
		`LET $c = (SELECT * FROM ONLY type::thing('cargo', $cargo_id));
		IF $c.carrier != NONE { THROW "cargo_taken" };
		LET $a = (SELECT * FROM ONLY type::thing('airplane', $airplane_id));
		IF math::sum($a.cargo.weight) + $weight > $a.capacity { THROW "capacity_exceeded" };`,
		map[string]interface{}{
			"cargo_id":    cargo.ID,
			"airplane_id": airplane.ID,
			"weight":      cargo.Weight,
		},
	)
	batch.Add(
		`UPDATE type::thing('cargo', $cargo_id) MERGE {
			carrier: { id: $airplane_ref, tail_number: $tail_number },
			last_update: <datetime>$now
		}`,
		map[string]interface{}{
			"cargo_id":     cargo.ID,
			"airplane_ref": airplane.ID,
			"tail_number":  airplane.TailNumber,
			"now":          now,
		},
	)
	batch.Add(
		`UPDATE type::thing('airplane', $airplane_id) SET cargo += { id: $cargo_ref, weight: $weight }`,
		map[string]interface{}{
			"airplane_id": airplane.ID,
			"cargo_ref":   cargo.ID,
			"weight":      cargo.Weight,
		},
	)

	if err := batch.Execute(ctx, r.db); err != nil {
		return guardError(err)
	}
	return nil
}

// Detach takes a cargo off an airplane: the cargo's carrier is cleared and
// its entry is pruned from the airplane's cargo list atomically. Returns
// ErrCargoElsewhere when the in-transaction guard finds the cargo carried
// by a different airplane (or none).
func (r *AssignmentRepository) Detach(ctx context.Context, airplaneID, cargoID int64) error {
	now := time.Now().UTC().Format(time.RFC3339)

	batch := database.NewAtomicBatch()
	batch.Add(
		`LET $c = (SELECT * FROM ONLY type::thing('cargo', $cargo_id));
		IF $c.carrier = NONE OR $c.carrier.id != $airplane_id { THROW "cargo_elsewhere" };`,
		map[string]interface{}{
			"cargo_id":    cargoID,
			"airplane_id": airplaneID,
		},
	)
	batch.Add(
		`UPDATE type::thing('cargo', $cargo_id) MERGE { carrier: NONE, last_update: <datetime>$now }`,
		map[string]interface{}{
			"cargo_id": cargoID,
			"now":      now,
		},
	)
	batch.Add(
		`UPDATE type::thing('airplane', $airplane_id) SET cargo = cargo[WHERE id != $cargo_ref]`,
		map[string]interface{}{
			"airplane_id": airplaneID,
			"cargo_ref":   cargoID,
		},
	)

	if err := batch.Execute(ctx, r.db); err != nil {
		return guardError(err)
	}
	return nil
}

// guardError maps a thrown guard message, surfaced in the driver's error
// text, to its sentinel. Anything else passes through untouched.
func guardError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "cargo_taken"):
		return ErrCargoTaken
	case strings.Contains(msg, "capacity_exceeded"):
		return ErrCapacityExceeded
	case strings.Contains(msg, "cargo_elsewhere"):
		return ErrCargoElsewhere
	}
	return err
}
