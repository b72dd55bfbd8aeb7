// Package user provides the User entity referenced by orders.
//
// Key business rules:
//   - A user has a valid identifier, a non-empty first name, last name and email
//   - CreatedAt is fixed when the user is created and never changes
//   - Users are never updated or deleted
//
// Email uniqueness spans the whole users table and is enforced by the
// create-user use case together with a unique index, not by this package.
package user
