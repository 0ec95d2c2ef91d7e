// Package order contains the order aggregate and its lifecycle rules.
//
// An Order is created in Pending status together with its lines in one
// transaction, snapshotting each product's price at creation time. After
// that the only mutable part of an order is its status: Pending may move
// to Paid or Cancelled, both of which are terminal. Every persisted status
// change bumps the order's version, which acts as an optimistic
// concurrency token for callers.
package order
