// Package campaign holds the campaign and coupon rule snapshots and the
// validation context rule evaluation runs against. Unlike the
// aggregates, these are plain data carriers: the rule engine in the
// services package owns all behavior.
package campaign
