package repository

import (
	"context"
	"errors"

	"github.com/forgo/hangar/internal/database"
	"github.com/forgo/hangar/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user record for the given subject
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	user.ID = newRecordID()

	query := `CREATE type::thing('user', $id) CONTENT { sub: $sub }`
	vars := map[string]interface{}{
		"id":  user.ID,
		"sub": user.Sub,
	}

	return r.db.Execute(ctx, query, vars)
}

// GetBySub retrieves a user by subject. Returns (nil, nil) when no user
// with that subject exists.
func (r *UserRepository) GetBySub(ctx context.Context, sub string) (*model.User, error) {
	query := `SELECT * FROM user WHERE sub = $sub LIMIT 1`
	vars := map[string]interface{}{"sub": sub}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseUserResult(result)
}

// List retrieves all users
func (r *UserRepository) List(ctx context.Context) ([]*model.User, error) {
	query := `SELECT * FROM user`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parseUsersResult(results)
}

// Helper functions

func parseUserResult(result interface{}) (*model.User, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

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

	return &model.User{
		ID:  numericRecordID(data["id"]),
		Sub: getString(data, "sub"),
	}, nil
}

func parseUsersResult(results []interface{}) ([]*model.User, error) {
	users := make([]*model.User, 0)

	for _, result := range results {
		if resp, ok := result.(map[string]interface{}); ok {
			if status, ok := resp["status"].(string); ok && status == "OK" {
				if resultData, ok := resp["result"].([]interface{}); ok {
					for _, item := range resultData {
						user, err := parseUserResult(item)
						if err == nil && user != nil {
							users = append(users, user)
						}
					}
				}
			}
		}
	}

	return users, nil
}
