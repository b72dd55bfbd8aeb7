package http

import (
	"orders/internal/core/domain/model/order"
	"orders/internal/core/domain/model/user"
	"orders/internal/generated/servers"
)

func toUserResponse(u *user.User) servers.User {
	return servers.User{
		Id:        u.ID().Bytes(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}

func toUserListResponse(users []*user.User) []servers.User {
	response := make([]servers.User, len(users))
	for i, u := range users {
		response[i] = toUserResponse(u)
	}
	return response
}

func toOrderResponse(o *order.Order) servers.Order {
	return servers.Order{
		Id:          o.ID().Bytes(),
		User:        toUserResponse(o.User()),
		ProductName: o.ProductName(),
		Quantity:    o.Quantity(),
		Status:      servers.OrderStatus(o.Status().String()),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

func toOrderListResponse(orders []*order.Order) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	return response
}
