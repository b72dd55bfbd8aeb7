// Package guard holds small helpers that protect value objects, commands and
// queries from being used as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. Embed it as a
// field, set it with NewConstructorGuard inside the constructor and check it
// in the type's Validate method; a zero value struct fails the check.
//
// Example:
//
//	var ErrCreateUserCommandIsNotConstructed = errors.New("CreateUserCommand must be created via NewCreateUserCommand")
//
//	type CreateUserCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c CreateUserCommand) Validate() error {
//	    return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
