package service

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/hangar/internal/model"
)

// ============================================================================
// Create Tests
// ============================================================================

func TestCargoCreate_StartsUnassigned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &mockCargoRepo{
		createFunc: func(ctx context.Context, cargo *model.Cargo) error {
			cargo.ID = 77
			return nil
		},
	}
	svc := NewCargoService(repo)

	cargo, err := svc.Create(ctx, 40, "engine parts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cargo.ID != 77 {
		t.Errorf("expected ID 77, got %d", cargo.ID)
	}
	if cargo.Carrier != nil {
		t.Error("new cargo must start without a carrier")
	}
}

// ============================================================================
// Get Tests
// ============================================================================

func TestCargoGet_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCargoService(&mockCargoRepo{})

	if _, err := svc.Get(ctx, 1); !errors.Is(err, ErrCargoNotFound) {
		t.Fatalf("expected ErrCargoNotFound, got %v", err)
	}
}

// ============================================================================
// List Tests
// ============================================================================

func TestCargoList_ReturnsTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &mockCargoRepo{
		listFunc: func(ctx context.Context, limit, offset int) ([]*model.Cargo, error) {
			return []*model.Cargo{{ID: 1}, {ID: 2}}, nil
		},
		countFunc: func(ctx context.Context) (int, error) {
			return 9, nil
		},
	}
	svc := NewCargoService(repo)

	cargos, total, err := svc.List(ctx, 5, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cargos) != 2 || total != 9 {
		t.Errorf("expected 2 cargos and total 9, got %d and %d", len(cargos), total)
	}
}

// ============================================================================
// Update Tests
// ============================================================================

func TestCargoUpdate_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	updated := false
	repo := &mockCargoRepo{
		updateFunc: func(ctx context.Context, id int64, fields model.CargoFields) (*model.Cargo, error) {
			updated = true
			return nil, nil
		},
	}
	svc := NewCargoService(repo)

	weight := 50
	if _, err := svc.Update(ctx, 1, model.CargoFields{Weight: &weight}); !errors.Is(err, ErrCargoNotFound) {
		t.Fatalf("expected ErrCargoNotFound, got %v", err)
	}
	if updated {
		t.Error("update must not run for missing cargo")
	}
}

func TestCargoUpdate_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := &mockCargoRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Cargo, error) {
			return &model.Cargo{ID: id, Weight: 40, Item: "engine parts"}, nil
		},
		updateFunc: func(ctx context.Context, id int64, fields model.CargoFields) (*model.Cargo, error) {
			return &model.Cargo{ID: id, Weight: *fields.Weight, Item: "engine parts"}, nil
		},
	}
	svc := NewCargoService(repo)

	weight := 50
	cargo, err := svc.Update(ctx, 1, model.CargoFields{Weight: &weight})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cargo.Weight != 50 {
		t.Errorf("expected weight 50, got %d", cargo.Weight)
	}
}

// ============================================================================
// Delete Tests
// ============================================================================

func TestCargoDelete_PassesLoadedCargo(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var deleted *model.Cargo
	repo := &mockCargoRepo{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Cargo, error) {
			return &model.Cargo{ID: id, Carrier: &model.CarrierRef{ID: 3}}, nil
		},
		deleteFunc: func(ctx context.Context, cargo *model.Cargo) error {
			deleted = cargo
			return nil
		},
	}
	svc := NewCargoService(repo)

	if err := svc.Delete(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted == nil || deleted.Carrier == nil {
		t.Error("delete must receive the loaded cargo with its carrier")
	}
}

func TestCargoDelete_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewCargoService(&mockCargoRepo{})

	if err := svc.Delete(ctx, 1); !errors.Is(err, ErrCargoNotFound) {
		t.Fatalf("expected ErrCargoNotFound, got %v", err)
	}
}
