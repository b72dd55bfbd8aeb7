package order

import (
	"errors"
	"fmt"
	"strings"

	"orders/internal/pkg/errs"
)

// ErrOrderIsCompleted is the cause attached to the InvalidState error returned
// when a completed order is asked to change status.
var ErrOrderIsCompleted = errors.New("order already completed")

// Status is the lifecycle stage of an order.
//
// The set is closed: Pending, Confirmed, Shipped, Completed and Cancelled.
// There is no ordering between them; any non-completed order may move to any
// status, including backwards. Completed is terminal:
//
//	Pending ─┐
//	Confirmed├──> any status ──> ... ──> Completed (no further changes)
//	Shipped  │
//	Cancelled┘
//
// The zero value is Unknown, which never validates. String returns the
// upper-case wire form used by the API and stored in the database.
type Status int

const (
	// Unknown is the invalid zero value.
	Unknown Status = iota

	// Pending is assigned to every new order.
	Pending

	// Confirmed marks an order accepted for fulfilment.
	Confirmed

	// Shipped marks an order handed to delivery.
	Shipped

	// Completed is terminal: the status can no longer change.
	Completed

	// Cancelled marks an order that will not be fulfilled. It is not terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Completed: "COMPLETED",
		Cancelled: "CANCELLED",
	}
}

// AllStatuses returns every valid status in declaration order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Completed, Cancelled}
}

// ParseStatus converts the wire form ("PENDING", ...) to a Status.
// Matching is exact; "pending" and "UNKNOWN" are rejected.
//
// Example:
//
//	status, err := order.ParseStatus(string(body.Status))
//	if err != nil {
//	    return err
//	}
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not one of %s", s, strings.Join(validStatusNames(), ", ")),
	)
}

func validStatusNames() []string {
	names := make([]string, 0, len(AllStatuses()))
	for _, s := range AllStatuses() {
		names = append(names, s.String())
	}
	return names
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire form of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// ChangeTo returns next if the transition from s is allowed.
//
// Allowed: from any valid non-terminal status to any valid status.
// Rejected: an invalid next status (ValueIsInvalidError) and any change away
// from Completed (InvalidStateError wrapping ErrOrderIsCompleted).
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, errs.NewInvalidStateErrorWithCause("order", s.String(), ErrOrderIsCompleted)
	}

	if err := s.Validate(); err != nil {
		return Unknown, err
	}

	return next, nil
}
