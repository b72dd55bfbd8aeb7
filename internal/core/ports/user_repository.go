// Package ports defines repository interfaces for the users and orders domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for users.
type UserRepository interface {
	// Add persists a new user.
	// A second user with the same email is rejected with errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by exact email match.
	// Returns (nil, nil) when no user has that email.
	//
	// Example:
	//   existing, err := repo.GetByEmail(ctx, "johndoe@gmail.com")
	//   if err != nil {
	//       return err
	//   }
	//   if existing != nil {
	//       return errs.NewObjectAlreadyExistsError("email", existing.Email())
	//   }
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetAll retrieves every user. Order is unspecified.
	GetAll(ctx context.Context) ([]*user.User, error)
}
