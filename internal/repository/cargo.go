package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/hangar/internal/database"
	"github.com/forgo/hangar/internal/model"
)

// CargoRepository handles cargo data access
type CargoRepository struct {
	db database.Database
}

// NewCargoRepository creates a new cargo repository
func NewCargoRepository(db database.Database) *CargoRepository {
	return &CargoRepository{db: db}
}

// Create creates a new unassigned cargo
func (r *CargoRepository) Create(ctx context.Context, cargo *model.Cargo) error {
	cargo.ID = newRecordID()
	cargo.LastUpdate = time.Now().UTC()

	query := `
		CREATE type::thing('cargo', $id) CONTENT {
			weight: $weight,
			item: $item,
			carrier: NONE,
			last_update: <datetime>$now
		}
	`
	vars := map[string]interface{}{
		"id":     cargo.ID,
		"weight": cargo.Weight,
		"item":   cargo.Item,
		"now":    cargo.LastUpdate.Format(time.RFC3339),
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return err
	}

	cargo.Carrier = nil
	return nil
}

// GetByID retrieves a cargo by ID. Returns (nil, nil) when no cargo with
// that ID exists.
func (r *CargoRepository) GetByID(ctx context.Context, id int64) (*model.Cargo, error) {
	query := `SELECT * FROM type::thing('cargo', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCargoResult(result)
}

// List retrieves a page of cargo, regardless of carrier or owner
func (r *CargoRepository) List(ctx context.Context, limit, offset int) ([]*model.Cargo, error) {
	query := `SELECT * FROM cargo LIMIT $limit START $offset`
	vars := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseCargosResult(results)
}

// Count counts all cargo records
func (r *CargoRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM cargo GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Update merges the given fields into a cargo record and refreshes
// last_update. The carrier is never touched here; changing the weight of a
// carried cargo does not rewrite the airplane's embedded copy.
func (r *CargoRepository) Update(ctx context.Context, id int64, fields model.CargoFields) (*model.Cargo, error) {
	data := map[string]interface{}{
		"last_update": time.Now().UTC().Format(time.RFC3339),
	}
	if fields.Weight != nil {
		data["weight"] = *fields.Weight
	}
	if fields.Item != nil {
		data["item"] = *fields.Item
	}

	query := `UPDATE type::thing('cargo', $id) MERGE $data RETURN AFTER`
	vars := map[string]interface{}{
		"id":   id,
		"data": data,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseCargoResult(result)
}

// Delete removes a cargo. When the cargo is on an airplane, the airplane's
// embedded cargo list is pruned in the same transaction.
func (r *CargoRepository) Delete(ctx context.Context, cargo *model.Cargo) error {
	batch := database.NewAtomicBatch()
	if cargo.Carrier != nil {
		batch.Add(
			`UPDATE type::thing('airplane', $airplane_id) SET cargo = cargo[WHERE id != $cargo_ref]`,
			map[string]interface{}{
				"airplane_id": cargo.Carrier.ID,
				"cargo_ref":   cargo.ID,
			},
		)
	}
	batch.Add(
		`DELETE type::thing('cargo', $cargo_id)`,
		map[string]interface{}{"cargo_id": cargo.ID},
	)

	return batch.Execute(ctx, r.db)
}

// Helper functions

func parseCargoResult(result interface{}) (*model.Cargo, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	// Navigate through SurrealDB response structure
	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.Cargo{
		ID:         numericRecordID(data["id"]),
		Weight:     getInt(data, "weight"),
		Item:       getString(data, "item"),
		Carrier:    parseCarrierRef(data["carrier"]),
		LastUpdate: getTime(data, "last_update"),
	}, nil
}

func parseCargosResult(results []interface{}) ([]*model.Cargo, error) {
	cargos := make([]*model.Cargo, 0)

	for _, result := range results {
		if resp, ok := result.(map[string]interface{}); ok {
			if status, ok := resp["status"].(string); ok && status == "OK" {
				if resultData, ok := resp["result"].([]interface{}); ok {
					for _, item := range resultData {
						cargo, err := parseCargoResult(item)
						if err == nil && cargo != nil {
							cargos = append(cargos, cargo)
						}
					}
				}
			}
		}
	}

	return cargos, nil
}

func parseCarrierRef(v interface{}) *model.CarrierRef {
	entry, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return &model.CarrierRef{
		ID:         numericRecordID(entry["id"]),
		TailNumber: getString(entry, "tail_number"),
	}
}
