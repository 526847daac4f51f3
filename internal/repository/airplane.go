package repository

import (
	"context"
	"errors"
	"time"

	"github.com/forgo/hangar/internal/database"
	"github.com/forgo/hangar/internal/model"
)

// AirplaneRepository handles airplane data access
type AirplaneRepository struct {
	db database.Database
}

// NewAirplaneRepository creates a new airplane repository
func NewAirplaneRepository(db database.Database) *AirplaneRepository {
	return &AirplaneRepository{db: db}
}

// Create creates a new airplane with an empty cargo list
func (r *AirplaneRepository) Create(ctx context.Context, airplane *model.Airplane) error {
	airplane.ID = newRecordID()

	query := `
		CREATE type::thing('airplane', $id) CONTENT {
			tail_number: $tail_number,
			type: $type,
			capacity: $capacity,
			pilot: $pilot,
			cargo: []
		}
	`
	vars := map[string]interface{}{
		"id":          airplane.ID,
		"tail_number": airplane.TailNumber,
		"type":        airplane.Type,
		"capacity":    airplane.Capacity,
		"pilot":       airplane.Pilot,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		return err
	}

	airplane.Cargo = []model.CargoRef{}
	return nil
}

// GetByID retrieves an airplane by ID. Returns (nil, nil) when no airplane
// with that ID exists.
func (r *AirplaneRepository) GetByID(ctx context.Context, id int64) (*model.Airplane, error) {
	query := `SELECT * FROM type::thing('airplane', $id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseAirplaneResult(result)
}

// ListByPilot retrieves a page of airplanes owned by the given pilot
func (r *AirplaneRepository) ListByPilot(ctx context.Context, pilot string, limit, offset int) ([]*model.Airplane, error) {
	query := `SELECT * FROM airplane WHERE pilot = $pilot LIMIT $limit START $offset`
	vars := map[string]interface{}{
		"pilot":  pilot,
		"limit":  limit,
		"offset": offset,
	}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseAirplanesResult(results)
}

// CountByPilot counts airplanes owned by the given pilot
func (r *AirplaneRepository) CountByPilot(ctx context.Context, pilot string) (int, error) {
	query := `SELECT count() AS count FROM airplane WHERE pilot = $pilot GROUP ALL`
	vars := map[string]interface{}{"pilot": pilot}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Update merges the given fields into an airplane record. The cargo list and
// pilot are never touched here.
func (r *AirplaneRepository) Update(ctx context.Context, id int64, fields model.AirplaneFields) (*model.Airplane, error) {
	data := map[string]interface{}{}
	if fields.TailNumber != nil {
		data["tail_number"] = *fields.TailNumber
	}
	if fields.Type != nil {
		data["type"] = *fields.Type
	}
	if fields.Capacity != nil {
		data["capacity"] = *fields.Capacity
	}

	query := `UPDATE type::thing('airplane', $id) MERGE $data RETURN AFTER`
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

	return parseAirplaneResult(result)
}

// Delete removes an airplane and clears the carrier of every cargo it holds,
// all in one transaction.
func (r *AirplaneRepository) Delete(ctx context.Context, airplane *model.Airplane) error {
	now := time.Now().UTC().Format(time.RFC3339)

	batch := database.NewAtomicBatch()
	for _, ref := range airplane.Cargo {
		batch.Add(
			`UPDATE type::thing('cargo', $cargo_id) MERGE { carrier: NONE, last_update: <datetime>$now }`,
			map[string]interface{}{
				"cargo_id": ref.ID,
				"now":      now,
			},
		)
	}
	batch.Add(
		`DELETE type::thing('airplane', $airplane_id)`,
		map[string]interface{}{"airplane_id": airplane.ID},
	)

	return batch.Execute(ctx, r.db)
}

// Helper functions

func parseAirplaneResult(result interface{}) (*model.Airplane, error) {
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

	return &model.Airplane{
		ID:         numericRecordID(data["id"]),
		TailNumber: getString(data, "tail_number"),
		Type:       getString(data, "type"),
		Capacity:   getInt(data, "capacity"),
		Pilot:      getString(data, "pilot"),
		Cargo:      parseCargoRefs(data["cargo"]),
	}, nil
}

func parseAirplanesResult(results []interface{}) ([]*model.Airplane, error) {
	airplanes := make([]*model.Airplane, 0)

	for _, result := range results {
		if resp, ok := result.(map[string]interface{}); ok {
			if status, ok := resp["status"].(string); ok && status == "OK" {
				if resultData, ok := resp["result"].([]interface{}); ok {
					for _, item := range resultData {
						airplane, err := parseAirplaneResult(item)
						if err == nil && airplane != nil {
							airplanes = append(airplanes, airplane)
						}
					}
				}
			}
		}
	}

	return airplanes, nil
}

func parseCargoRefs(v interface{}) []model.CargoRef {
	refs := make([]model.CargoRef, 0)

	items, ok := v.([]interface{})
	if !ok {
		return refs
	}
	for _, item := range items {
		if entry, ok := item.(map[string]interface{}); ok {
			refs = append(refs, model.CargoRef{
				ID:     numericRecordID(entry["id"]),
				Weight: getInt(entry, "weight"),
			})
		}
	}
	return refs
}
