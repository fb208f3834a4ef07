// Package courier contains the Courier aggregate: availability state,
// vehicle, working hours, last known location, and the active-order
// count dispatch decisions run against.
package courier
