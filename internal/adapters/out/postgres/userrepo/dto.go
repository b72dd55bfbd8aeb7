// Package userrepo provides data transfer objects, mapping functions and the
// GORM repository for user persistence.
package userrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting users.
// Email carries a unique index: a second insert with the same email fails
// even when two requests pass the application-level check concurrently.
type UserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"type:text;not null"`
	LastName  string    `gorm:"type:text;not null"`
	Email     string    `gorm:"type:text;not null;uniqueIndex:idx_users_email"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;autoCreateTime:false"`
}

// TableName overrides GORM's default naming convention to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// FromDomain converts a user to its database representation.
// Exported for repositories that persist a relation to users.
func FromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID().Bytes(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}

// ToDomain reconstructs a user from its row using RestoreUser.
func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(id, dto.FirstName, dto.LastName, dto.Email, dto.CreatedAt.UTC())
}
