package commands

import (
	"context"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"
)

// CreateUserCommandHandler registers users with a unique email.
//
// The email check and the insert share one transaction. A concurrent insert
// that slips past the check is still rejected by the unique index and
// surfaces from the repository as errs.ObjectAlreadyExistsError.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for user registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the user and returns it with its generated id and createdAt.
// Returns errs.ObjectAlreadyExistsError when the email is taken.
func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}

	u, err := user.NewUser(kernel.NewUUID(), cmd.FirstName(), cmd.LastName(), cmd.Email())
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, u); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return u, nil
}
