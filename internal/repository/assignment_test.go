package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/forgo/hangar/internal/model"
)

// ============================================================================
// Mock Database
// ============================================================================

type mockDB struct {
	executeErr error
	queries    []string
}

func (m *mockDB) Connect(ctx context.Context) error { return nil }
func (m *mockDB) Close() error                      { return nil }
func (m *mockDB) Ping(ctx context.Context) error    { return nil }

func (m *mockDB) Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error) {
	return nil, nil
}

func (m *mockDB) QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func (m *mockDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	m.queries = append(m.queries, query)
	return m.executeErr
}

// ============================================================================
// Attach Tests
// ============================================================================

func TestAttach_GuardsInsideTransaction(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	repo := NewAssignmentRepository(db)

	airplane := &model.Airplane{ID: 1, TailNumber: "N-1", Capacity: 100}
	cargo := &model.Cargo{ID: 2, Weight: 40}

	if err := repo.Attach(context.Background(), airplane, cargo); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected one transaction execution, got %d", len(db.queries))
	}

	query := db.queries[0]
	txStart := strings.Index(query, "BEGIN TRANSACTION")
	txEnd := strings.Index(query, "COMMIT TRANSACTION")
	if txStart < 0 || txEnd < 0 {
		t.Fatalf("expected a transaction block, got %q", query)
	}

	// The precondition guards must sit between BEGIN and COMMIT so a lost
	// race rolls the writes back instead of committing a half-link
	for _, guard := range []string{
		`THROW "cargo_taken"`,
		`THROW "capacity_exceeded"`,
		"carrier != NONE",
		"math::sum(",
	} {
		pos := strings.Index(query, guard)
		if pos < txStart || pos > txEnd {
			t.Errorf("guard %q not inside the transaction: %q", guard, query)
		}
	}
	for _, write := range []string{"MERGE", "cargo +="} {
		pos := strings.Index(query, write)
		if pos < txStart || pos > txEnd {
			t.Errorf("write %q not inside the transaction: %q", write, query)
		}
	}
}

func TestAttach_GuardThrowMapsToSentinel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		thrown string
		want   error
	}{
		{"cargo_taken", ErrCargoTaken},
		{"capacity_exceeded", ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.thrown, func(t *testing.T) {
			t.Parallel()

			db := &mockDB{executeErr: fmt.Errorf("An error occurred: %s", tt.thrown)}
			repo := NewAssignmentRepository(db)

			err := repo.Attach(context.Background(), &model.Airplane{ID: 1}, &model.Cargo{ID: 2})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestAttach_OtherErrorsPassThrough(t *testing.T) {
	t.Parallel()

	dbErr := errors.New("connection reset")
	db := &mockDB{executeErr: dbErr}
	repo := NewAssignmentRepository(db)

	err := repo.Attach(context.Background(), &model.Airplane{ID: 1}, &model.Cargo{ID: 2})
	if !errors.Is(err, dbErr) {
		t.Errorf("expected the driver error untouched, got %v", err)
	}
}

// ============================================================================
// Detach Tests
// ============================================================================

func TestDetach_GuardInsideTransaction(t *testing.T) {
	t.Parallel()

	db := &mockDB{}
	repo := NewAssignmentRepository(db)

	if err := repo.Detach(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(db.queries) != 1 {
		t.Fatalf("expected one transaction execution, got %d", len(db.queries))
	}

	query := db.queries[0]
	txStart := strings.Index(query, "BEGIN TRANSACTION")
	txEnd := strings.Index(query, "COMMIT TRANSACTION")
	if txStart < 0 || txEnd < 0 {
		t.Fatalf("expected a transaction block, got %q", query)
	}

	pos := strings.Index(query, `THROW "cargo_elsewhere"`)
	if pos < txStart || pos > txEnd {
		t.Errorf("detach guard not inside the transaction: %q", query)
	}
}

func TestDetach_GuardThrowMapsToSentinel(t *testing.T) {
	t.Parallel()

	db := &mockDB{executeErr: fmt.Errorf("An error occurred: %s", "cargo_elsewhere")}
	repo := NewAssignmentRepository(db)

	err := repo.Detach(context.Background(), 1, 2)
	if !errors.Is(err, ErrCargoElsewhere) {
		t.Errorf("expected ErrCargoElsewhere, got %v", err)
	}
}
