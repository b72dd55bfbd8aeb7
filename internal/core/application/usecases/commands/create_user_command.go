package commands

import (
	"errors"
	"strings"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateUserCommandIsNotConstructed = errors.New(
		"CreateUserCommand must be created via NewCreateUserCommand constructor",
	)
)

// CreateUserCommand represents a request to register a new user.
//
// Example:
//
//	cmd, err := NewCreateUserCommand("John", "Doe", "johndoe@gmail.com")
//	if err != nil {
//	    return fmt.Errorf("invalid user data: %w", err)
//	}
//
//	handler := NewCreateUserCommandHandler(uowFactory)
//	u, err := handler.Handle(ctx, cmd)
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	firstName string
	lastName  string
	email     string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a user.
// All three fields must be non-blank.
func NewCreateUserCommand(firstName, lastName, email string) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setFirstName(firstName),
		cmd.setLastName(lastName),
		cmd.setEmail(email),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) FirstName() string {
	return c.firstName
}

func (c CreateUserCommand) LastName() string {
	return c.lastName
}

func (c CreateUserCommand) Email() string {
	return c.email
}

func (c *CreateUserCommand) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *CreateUserCommand) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
