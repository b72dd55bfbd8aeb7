package userrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UserRepositoryIntegrationTestSuite verifies user persistence against a real PostgreSQL.
type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}))
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE users").Error)
	suite.repository = userrepo.NewGormUserRepository(suite.db)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) newUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "John", "Doe", email)
	suite.Require().NoError(err)
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	u := suite.newUser("johndoe@gmail.com")

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.True(got.IsEqual(u))
	suite.Equal(u.FirstName(), got.FirstName())
	suite.Equal(u.LastName(), got.LastName())
	suite.Equal(u.Email(), got.Email())
	suite.True(u.CreatedAt().Equal(got.CreatedAt()))
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_Conflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("johndoe@gmail.com")))

	err := suite.repository.Add(ctx, suite.newUser("johndoe@gmail.com"))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Contains(err.Error(), "johndoe@gmail.com")
	suite.NotContains(err.Error(), "idx_users_email")
	suite.NotContains(err.Error(), "SQLSTATE")
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_LongNames_RoundTrip() {
	ctx := context.Background()
	firstName := strings.Repeat("J", 300)
	lastName := strings.Repeat("D", 256)
	u, err := user.NewUser(kernel.NewUUID(), firstName, lastName, "johndoe@gmail.com")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(firstName, got.FirstName())
	suite.Equal(lastName, got.LastName())
}

func (suite *UserRepositoryIntegrationTestSuite) TestAdd_NotConstructed() {
	err := suite.repository.Add(context.Background(), &user.User{})
	suite.Require().ErrorIs(err, user.ErrUserIsNotConstructed)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	id := kernel.NewUUID()

	got, err := suite.repository.Get(context.Background(), id)

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), id.String())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetByEmail() {
	ctx := context.Background()
	u := suite.newUser("janedoe@gmail.com")
	suite.Require().NoError(suite.repository.Add(ctx, u))

	found, err := suite.repository.GetByEmail(ctx, "janedoe@gmail.com")
	suite.Require().NoError(err)
	suite.Require().NotNil(found)
	suite.True(found.IsEqual(u))

	missing, err := suite.repository.GetByEmail(ctx, "nobody@gmail.com")
	suite.Require().NoError(err)
	suite.Nil(missing)
}

func (suite *UserRepositoryIntegrationTestSuite) TestGetAll() {
	ctx := context.Background()

	empty, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.NotNil(empty)
	suite.Empty(empty)

	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("a@example.com")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newUser("b@example.com")))

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(all, 2)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
