package order

import (
	"errors"
	"math"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/user"
	"orders/internal/pkg/errs"
)

// MaxQuantity is the largest quantity the orders.quantity integer column holds.
const MaxQuantity = math.MaxInt32

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a purchase of a quantity of one product by one user.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Always references a constructed User (the relation is populated)
//   - Product name is non-empty and quantity is within 1..MaxQuantity
//   - Status starts as Pending and cannot change once Completed
//   - UpdatedAt is never before CreatedAt
type Order struct {
	id          kernel.UUID
	user        *user.User
	productName string
	quantity    int
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a Pending order for an existing user.
//
// Example:
//
//	u, err := userRepo.Get(ctx, cmd.UserID())
//	if err != nil {
//	    return nil, err // NotFound when the user does not exist
//	}
//	o, err := order.NewOrder(kernel.NewUUID(), u, "iPhone", 1)
func NewOrder(id kernel.UUID, u *user.User, productName string, quantity int) (*Order, error) {
	now := kernel.Now()
	return RestoreOrder(id, u, productName, quantity, Pending, now, now)
}

// RestoreOrder rebuilds an order from persisted state. It applies the same
// checks as NewOrder and additionally validates status and timestamps.
func RestoreOrder(
	id kernel.UUID,
	u *user.User,
	productName string,
	quantity int,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUser(u),
		o.setProductName(productName),
		o.setQuantity(quantity),
		o.setStatus(status),
		o.setTimestamps(createdAt, updatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// User returns the user who placed the order.
func (o *Order) User() *user.User {
	return o.user
}

// ProductName returns the ordered product.
func (o *Order) ProductName() string {
	return o.productName
}

// Quantity returns the number of ordered items.
func (o *Order) Quantity() int {
	return o.quantity
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last modification.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus moves the order to next and bumps UpdatedAt.
//
// Any status may follow any non-completed status. A Completed order returns
// an errs.InvalidStateError and is left untouched.
//
// Example:
//
//	if err := o.ChangeStatus(order.Confirmed); err != nil {
//	    return nil, err
//	}
//	return o, repo.Update(ctx, o)
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.ChangeTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch(kernel.Now())
	return nil
}

func (o *Order) touch(now time.Time) {
	if now.Before(o.createdAt) {
		now = o.createdAt
	}
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUser(u *user.User) error {
	if u == nil {
		return errs.NewValueIsRequiredError("user")
	}
	if err := u.Validate(); err != nil {
		return err
	}
	o.user = u
	return nil
}

func (o *Order) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	o.productName = productName
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTimestamps(createdAt, updatedAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	if updatedAt.IsZero() {
		return errs.NewValueIsRequiredError("updatedAt")
	}
	if updatedAt.Before(createdAt) {
		return errs.NewValueIsInvalidError("updatedAt is before createdAt")
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	return nil
}
