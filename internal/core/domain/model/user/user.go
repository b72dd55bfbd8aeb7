package user

import (
	"errors"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created through
	// NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User is a customer who can place orders.
//
// Example:
//
//	u, err := user.NewUser(kernel.NewUUID(), "John", "Doe", "johndoe@gmail.com")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(u.Email(), u.CreatedAt())
type User struct {
	id        kernel.UUID
	firstName string
	lastName  string
	email     string
	createdAt time.Time

	isConstructed bool
}

// NewUser creates a user stamped with the current UTC time.
// All validation failures are returned together.
func NewUser(id kernel.UUID, firstName, lastName, email string) (*User, error) {
	return RestoreUser(id, firstName, lastName, email, kernel.Now())
}

// RestoreUser rebuilds a user from persisted state, applying the same
// validation as NewUser.
func RestoreUser(id kernel.UUID, firstName, lastName, email string, createdAt time.Time) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setFirstName(firstName),
		u.setLastName(lastName),
		u.setEmail(email),
		u.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate reports whether the user was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// IsEqual compares users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// Email returns the user's email address as provided at creation.
func (u *User) Email() string {
	return u.email
}

// CreatedAt returns the creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	u.lastName = lastName
	return nil
}

func (u *User) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt
	return nil
}
