package i

import (
	"context"

	dmn "github.com/beka-birhanu/loopgrid/domain"
	"github.com/google/uuid"
)

// UserRepo defines the interface for user persistence operations.
type UserRepo interface {
	// Save inserts or updates a user in the repository.
	// If the user already exists, it updates the record. Otherwise, it creates a new one.
	Save(ctx context.Context, user *dmn.User) error

	// ByID retrieves a user by their unique ID.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.User, error)

	// ByUsername retrieves a user by their username.
	// Returns dmn.ErrUserNotFound if there is no such user.
	ByUsername(ctx context.Context, username string) (*dmn.User, error)
}

// SolveRepo stores verified solves.
type SolveRepo interface {
	// Save inserts a solve record.
	Save(ctx context.Context, solve *dmn.Solve) error

	// ByPlayer returns up to limit solves of a player, most recent first.
	ByPlayer(ctx context.Context, playerID uuid.UUID, limit int64) ([]*dmn.Solve, error)
}
