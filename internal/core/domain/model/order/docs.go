// Package order contains the Order aggregate: priced item lines, the
// applied discount and delivery fee, and the lifecycle state machine
// from Pending through Delivered or Cancelled.
package order
