package queries

import (
	"context"

	"orders/internal/core/domain/model/user"
	"orders/internal/core/ports"
)

// GetAllUsersQueryHandler lists users. An empty store yields an empty slice.
type GetAllUsersQueryHandler struct {
	repo ports.UserRepository
}

func NewGetAllUsersQueryHandler(repo ports.UserRepository) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{repo: repo}
}

func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]*user.User, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	users, err := h.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = make([]*user.User, 0)
	}
	return users, nil
}
