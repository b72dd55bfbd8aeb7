// Package queries contains read-only operations of the CQRS architecture.
// Each query is a constructor-guarded value object paired with a handler
// that reads through the repository ports.
package queries

import (
	"errors"

	"orders/internal/pkg/guard"
)

var (
	ErrGetAllUsersQueryIsNotConstructed = errors.New(
		"GetAllUsersQuery must be created via NewGetAllUsersQuery constructor",
	)
)

// GetAllUsersQuery retrieves every registered user.
type GetAllUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllUsersQuery creates a parameterless query for all users.
func NewGetAllUsersQuery() GetAllUsersQuery {
	return GetAllUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllUsersQueryIsNotConstructed)
}
