package queries_test

import (
	"errors"
	"testing"

	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllUsersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()

	t.Run("returns every user", func(t *testing.T) {
		users := []*user.User{newUser("a@example.com"), newUser("b@example.com")}
		repo := new(MockUserRepository)
		repo.On("GetAll", ctx).Return(users, nil).Once()

		got, err := queries.NewGetAllUsersQueryHandler(repo).Handle(ctx, queries.NewGetAllUsersQuery())

		require.NoError(t, err)
		assert.Equal(t, users, got)
		repo.AssertExpectations(t)
	})

	t.Run("empty store yields empty slice", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetAll", ctx).Return(nil, nil).Once()

		got, err := queries.NewGetAllUsersQueryHandler(repo).Handle(ctx, queries.NewGetAllUsersQuery())

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("propagates repository error", func(t *testing.T) {
		repoErr := errors.New("db down")
		repo := new(MockUserRepository)
		repo.On("GetAll", ctx).Return(nil, repoErr).Once()

		_, err := queries.NewGetAllUsersQueryHandler(repo).Handle(ctx, queries.NewGetAllUsersQuery())

		require.ErrorIs(t, err, repoErr)
	})

	t.Run("rejects zero-value query", func(t *testing.T) {
		repo := new(MockUserRepository)

		_, err := queries.NewGetAllUsersQueryHandler(repo).Handle(ctx, queries.GetAllUsersQuery{})

		require.ErrorIs(t, err, queries.ErrGetAllUsersQueryIsNotConstructed)
		repo.AssertNotCalled(t, "GetAll")
	})
}
