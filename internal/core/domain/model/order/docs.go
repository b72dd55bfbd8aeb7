// Package order provides the Order entity and its Status enumeration.
//
// The package includes:
//   - Order: a purchase by one user, with product, quantity, status and timestamps
//   - Status: the closed set PENDING, CONFIRMED, SHIPPED, COMPLETED, CANCELLED
//
// Key business rules:
//   - Orders always reference an existing, populated User
//   - Quantity is a positive integer that fits the database integer column
//   - New orders start as Pending
//   - A Completed order can no longer change status; every other status may
//     move to any status, backwards and sideways included
//
// Soft deletion is a persistence concern: deleted orders are filtered out by
// every repository read and never reach this package.
package order
