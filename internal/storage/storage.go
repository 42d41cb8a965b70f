// Package storage defines the store capability set the services depend on.
// Two implementations exist: a gorm-backed one in internal/repositories for
// production and an in-memory one in internal/storage/memory for tests and
// local development. Reward computation and the completion guard live above
// this boundary and never depend on which implementation is active.
package storage

import (
	"context"
	"errors"

	model "batcave.app/batcave/internal/models"
)

// ErrNotFound covers both an absent row and a row owned by another user; the
// two cases are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("record not found")

// ErrCompletionConflict is returned by TaskStore.Complete when the conditional
// write matched no pending row, meaning the task was completed by a concurrent
// request (or no longer exists).
var ErrCompletionConflict = errors.New("task is no longer pending")

type TaskStore interface {
	Create(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, userID, id string) (*model.Task, error)
	List(ctx context.Context, userID string) ([]model.Task, error)

	// Update writes the task's mutable fields (title, description, domain,
	// priority, hours, due date) scoped by owner. It never touches the
	// completion flag or the reward columns; those change only through
	// Complete, which keeps completion monotonic at the storage level.
	Update(ctx context.Context, task *model.Task) error

	// Complete writes the task's fields including the completion flag,
	// completion timestamp, actual hours and rewards, in a single
	// conditional update that only matches a still-pending row.
	Complete(ctx context.Context, task *model.Task) error

	// Delete reports whether a row was actually removed. Deleting an absent
	// id is not an error.
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type GoalStore interface {
	Create(ctx context.Context, goal *model.Goal) error
	FindByID(ctx context.Context, userID, id string) (*model.Goal, error)
	List(ctx context.Context, userID string) ([]model.Goal, error)
	ListByMonth(ctx context.Context, userID string, month, year int) ([]model.Goal, error)
	Update(ctx context.Context, goal *model.Goal) error
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type ObjectiveStore interface {
	Create(ctx context.Context, objective *model.Objective) error
	FindByID(ctx context.Context, userID, id string) (*model.Objective, error)
	List(ctx context.Context, userID string) ([]model.Objective, error)
	ListByQuarter(ctx context.Context, userID string, quarter, year int) ([]model.Objective, error)
	Update(ctx context.Context, objective *model.Objective) error
	Delete(ctx context.Context, userID, id string) (bool, error)
}

type VisionStore interface {
	Create(ctx context.Context, vision *model.Vision) error
	FindByID(ctx context.Context, userID, id string) (*model.Vision, error)
	List(ctx context.Context, userID string) ([]model.Vision, error)
	ListByYear(ctx context.Context, userID string, year int) ([]model.Vision, error)
	Update(ctx context.Context, vision *model.Vision) error
	Delete(ctx context.Context, userID, id string) (bool, error)
}
