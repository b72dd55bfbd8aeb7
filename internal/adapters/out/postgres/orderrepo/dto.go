// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for orders, handling the
// conversion between domain entities and database representations.
package orderrepo

import (
	"errors"
	"time"

	"orders/internal/adapters/out/postgres/userrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

var errUserNotLoaded = errors.New("order row loaded without its user")

// OrderDTO represents the database structure for persisting orders.
//
// Status is stored as its wire string (PENDING, ...). DeletedAt is a plain
// nullable column rather than gorm.DeletedAt: every read in this package adds
// the deleted_at predicate itself.
type OrderDTO struct {
	ID          uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	User        userrepo.UserDTO `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	ProductName string           `gorm:"type:text;not null"`
	Quantity    int              `gorm:"type:integer;not null"`
	Status      string           `gorm:"type:varchar(16);not null;index"`
	CreatedAt   time.Time        `gorm:"type:timestamptz;not null;autoCreateTime:false"`
	UpdatedAt   time.Time        `gorm:"type:timestamptz;not null;autoUpdateTime:false"`
	DeletedAt   *time.Time       `gorm:"type:timestamptz;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order to its database representation, relation included.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().Bytes(),
		UserID:      o.User().ID().Bytes(),
		User:        userrepo.FromDomain(o.User()),
		ProductName: o.ProductName(),
		Quantity:    o.Quantity(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// toDomain reconstructs an order from a row with its User preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	if dto.User.ID == uuid.Nil {
		return nil, errUserNotLoaded
	}
	u, err := userrepo.ToDomain(dto.User)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		u,
		dto.ProductName,
		dto.Quantity,
		status,
		dto.CreatedAt.UTC(),
		dto.UpdatedAt.UTC(),
	)
}

func toDomainList(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
