// Package storage defines the persistence contract the service needs and
// provides a MongoDB-backed implementation plus an in-memory one. The stores
// are the only point of concurrency control; handlers hold no mutable state.
package storage

import (
	"context"
	"errors"

	"github.com/hudsonrene96-debug/todo-list-backend/entities"
)

var (
	// ErrDuplicateUsername is returned by UserRepository.Insert when the
	// username is already registered. The insert must not mutate state.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrNotFound covers both "record absent" and "record owned by another
	// user"; the two must stay indistinguishable.
	ErrNotFound = errors.New("record not found")
)

// UserRepository persists username to password-digest mappings. Uniqueness is
// enforced atomically at insert, not by a prior lookup.
type UserRepository interface {
	Insert(ctx context.Context, user *entities.User) error
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}

// TaskRepository persists tasks. Every read and mutation is scoped to the
// owning user; a task ID alone never authorizes access.
type TaskRepository interface {
	Insert(ctx context.Context, task *entities.Task) error

	// FindByOwner returns the user's tasks, optionally restricted to one
	// category (empty or entities.AllCategories means no restriction).
	// Order: pending before completed, then ascending due date with
	// undated tasks after dated ones.
	FindByOwner(ctx context.Context, userID, category string) ([]entities.Task, error)

	// UpdateOwned resolves (taskID, userID) jointly, applies the patch and
	// returns the updated record, or ErrNotFound when no record matches both.
	UpdateOwned(ctx context.Context, userID, taskID string, patch entities.TaskUpdate) (*entities.Task, error)

	// DeleteOwned removes the task under the same joint resolution rule.
	DeleteOwned(ctx context.Context, userID, taskID string) error
}
