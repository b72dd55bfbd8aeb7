package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify persistence, ordering and soft delete.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	users      *userrepo.GormUserRepository
	owner      *user.User
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&userrepo.UserDTO{}, &orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, users").Error)

	suite.repository = orderrepo.NewGormOrderRepository(suite.db)
	suite.users = userrepo.NewGormUserRepository(suite.db)
	suite.owner = suite.addUser("johndoe@gmail.com")
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ThenGet_PopulatesUser() {
	ctx := context.Background()
	o := suite.addOrder(suite.owner, "iPhone", time.Now().UTC())

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(got.IsEqual(o))
	suite.Equal("iPhone", got.ProductName())
	suite.Equal(o.Quantity(), got.Quantity())
	suite.Equal(order.Pending, got.Status())
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))
	suite.Require().NotNil(got.User())
	suite.True(got.User().IsEqual(suite.owner))
	suite.Equal("johndoe@gmail.com", got.User().Email())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownUser_NotFound() {
	ghost, err := user.NewUser(kernel.NewUUID(), "Ghost", "User", "ghost@example.com")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), ghost, "iPhone", 1)
	suite.Require().NoError(err)

	err = suite.repository.Add(context.Background(), o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Contains(err.Error(), ghost.ID().String())
	suite.NotContains(err.Error(), "constraint")
	suite.NotContains(err.Error(), "SQLSTATE")
	suite.assertOrderCount(0)
	suite.assertUserCount(1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_LongProductName_RoundTrips() {
	ctx := context.Background()
	productName := strings.Repeat("k", 256)
	o := suite.addOrder(suite.owner, productName, time.Now().UTC())

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.Equal(productName, got.ProductName())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DoesNotWriteUser() {
	ctx := context.Background()
	stale, err := user.RestoreUser(suite.owner.ID(), "Changed", "Name", "changed@example.com", suite.owner.CreatedAt())
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), stale, "iPhone", 1)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	stored, err := suite.users.Get(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.Equal("johndoe@gmail.com", stored.Email())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	id := kernel.NewUUID()

	got, err := suite.repository.Get(context.Background(), id)

	suite.Nil(got)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndUpdatedAt() {
	ctx := context.Background()
	o := suite.addOrder(suite.owner, "iPhone", time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(o.ChangeStatus(order.Shipped))

	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Shipped, got.Status())
	suite.True(o.UpdatedAt().Equal(got.UpdatedAt()))
	suite.True(o.CreatedAt().Equal(got.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeletedOrder_NotFound() {
	ctx := context.Background()
	o := suite.addOrder(suite.owner, "iPhone", time.Now().UTC())
	suite.Require().NoError(suite.repository.SoftDelete(ctx, o.ID(), time.Now().UTC()))
	suite.Require().NoError(o.ChangeStatus(order.Confirmed))

	err := suite.repository.Update(ctx, o)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_NewestFirst_ExcludesDeleted() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	other := suite.addUser("janedoe@gmail.com")
	oldest := suite.addOrder(suite.owner, "Keyboard", base)
	middle := suite.addOrder(other, "Mouse", base.Add(time.Minute))
	newest := suite.addOrder(suite.owner, "Monitor", base.Add(2*time.Minute))
	deleted := suite.addOrder(suite.owner, "Cable", base.Add(3*time.Minute))
	suite.Require().NoError(suite.repository.SoftDelete(ctx, deleted.ID(), time.Now().UTC()))

	all, err := suite.repository.GetAll(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	suite.True(all[0].IsEqual(newest))
	suite.True(all[1].IsEqual(middle))
	suite.True(all[2].IsEqual(oldest))
	suite.True(all[1].User().IsEqual(other))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_Empty() {
	all, err := suite.repository.GetAll(context.Background())

	suite.Require().NoError(err)
	suite.NotNil(all)
	suite.Empty(all)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByUser() {
	ctx := context.Background()
	base := time.Now().UTC().Add(-time.Hour)
	other := suite.addUser("janedoe@gmail.com")
	first := suite.addOrder(suite.owner, "Keyboard", base)
	second := suite.addOrder(suite.owner, "Mouse", base.Add(time.Minute))
	suite.addOrder(other, "Monitor", base.Add(2*time.Minute))

	mine, err := suite.repository.GetAllByUser(ctx, suite.owner.ID())
	suite.Require().NoError(err)
	suite.Require().Len(mine, 2)
	suite.True(mine[0].IsEqual(second))
	suite.True(mine[1].IsEqual(first))
	for _, o := range mine {
		suite.True(o.User().IsEqual(suite.owner))
	}

	none, err := suite.repository.GetAllByUser(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_KeepsRow() {
	ctx := context.Background()
	o := suite.addOrder(suite.owner, "iPhone", time.Now().UTC())
	deletedAt := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.repository.SoftDelete(ctx, o.ID(), deletedAt))

	_, err := suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.assertOrderCount(1)

	var dto orderrepo.OrderDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", o.ID().Bytes()).Error)
	suite.Require().NotNil(dto.DeletedAt)
	suite.True(deletedAt.Equal(*dto.DeletedAt))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_Twice_NotFound() {
	ctx := context.Background()
	o := suite.addOrder(suite.owner, "iPhone", time.Now().UTC())
	suite.Require().NoError(suite.repository.SoftDelete(ctx, o.ID(), time.Now().UTC()))

	err := suite.repository.SoftDelete(ctx, o.ID(), time.Now().UTC())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestSoftDelete_Unknown_NotFound() {
	err := suite.repository.SoftDelete(context.Background(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestCountByStatus() {
	ctx := context.Background()
	now := time.Now().UTC()
	suite.addOrder(suite.owner, "a", now)
	suite.addOrder(suite.owner, "b", now)
	shipped := suite.addOrder(suite.owner, "c", now)
	suite.Require().NoError(shipped.ChangeStatus(order.Shipped))
	suite.Require().NoError(suite.repository.Update(ctx, shipped))
	deleted := suite.addOrder(suite.owner, "d", now)
	suite.Require().NoError(suite.repository.SoftDelete(ctx, deleted.ID(), now))

	counts, err := suite.repository.CountByStatus(ctx)

	suite.Require().NoError(err)
	suite.Equal(map[order.Status]int64{order.Pending: 2, order.Shipped: 1}, counts)
}

func (suite *OrderRepositoryIntegrationTestSuite) addUser(email string) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), "John", "Doe", email)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.users.Add(context.Background(), u))
	return u
}

// addOrder stores a Pending order created at createdAt.
func (suite *OrderRepositoryIntegrationTestSuite) addOrder(
	owner *user.User, productName string, createdAt time.Time,
) *order.Order {
	createdAt = createdAt.Truncate(time.Microsecond)
	o, err := order.RestoreOrder(kernel.NewUUID(), owner, productName, 1, order.Pending, createdAt, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), o))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertUserCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&userrepo.UserDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
