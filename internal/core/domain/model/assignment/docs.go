// Package assignment contains the OrderCourier aggregate: one record per
// assignment attempt between an order and a courier, kept as an
// append-only audit trail with at most one active record per order.
package assignment
