package http

import (
	"context"
	"net/http"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/user"
	"orders/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateUserHandler interface {
		Handle(ctx context.Context, cmd commands.CreateUserCommand) (*user.User, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}
	DeleteOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
	}
	GetAllUsersHandler interface {
		Handle(ctx context.Context, query queries.GetAllUsersQuery) ([]*user.User, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	GetOrdersByUserHandler interface {
		Handle(ctx context.Context, query queries.GetOrdersByUserQuery) ([]*order.Order, error)
	}
	GetAllOrdersHandler interface {
		Handle(ctx context.Context, query queries.GetAllOrdersQuery) ([]*order.Order, error)
	}
)

// Handlers groups the use cases the HTTP server dispatches to.
type Handlers struct {
	CreateUser        CreateUserHandler
	CreateOrder       CreateOrderHandler
	UpdateOrderStatus UpdateOrderStatusHandler
	DeleteOrder       DeleteOrderHandler

	GetAllUsers     GetAllUsersHandler
	GetOrder        GetOrderHandler
	GetOrdersByUser GetOrdersByUserHandler
	GetAllOrders    GetAllOrdersHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface.
//
// Every method follows the same steps: bind and validate the body, build the
// command or query, run the use case, map the domain result to the API
// model. Errors are returned unchanged and rendered by NewErrorHandler.
type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(ctx echo.Context) error {
	var body servers.CreateUserJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(body.FirstName, body.LastName, string(body.Email))
	if err != nil {
		return err
	}

	u, err := s.h.CreateUser.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toUserResponse(u))
}

// GetUsers handles GET /users.
func (s *Server) GetUsers(ctx echo.Context) error {
	users, err := s.h.GetAllUsers.Handle(ctx.Request().Context(), queries.NewGetAllUsersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toUserListResponse(users))
}

// CreateOrder handles POST /orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	userID, err := kernel.UUIDFromGoogle(body.UserId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateOrderCommand(userID, body.ProductName, body.Quantity)
	if err != nil {
		return err
	}

	o, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(o))
}

// GetOrders handles GET /orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	orders, err := s.h.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(orders))
}

// GetOrdersByUser handles GET /orders/user/{userId}.
// An unknown user yields an empty list, not 404.
func (s *Server) GetOrdersByUser(ctx echo.Context, userId openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(userId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrdersByUserQuery(id)
	if err != nil {
		return err
	}

	orders, err := s.h.GetOrdersByUser.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderListResponse(orders))
}

// GetOrder handles GET /orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// UpdateOrderStatus handles PATCH /orders/{id}.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return err
	}

	o, err := s.h.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(o))
}

// DeleteOrder handles DELETE /orders/{id}.
func (s *Server) DeleteOrder(ctx echo.Context, id servers.OrderId) error {
	orderID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return err
	}

	if err = s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func bindAndValidate(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return err
	}
	return ctx.Validate(body)
}
