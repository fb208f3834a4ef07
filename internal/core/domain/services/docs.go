// Package services provides the pure domain services of the dispatch and
// pricing core: rule validation for campaigns and coupons, discount
// calculation, order pricing, delivery-fee calculation, and courier
// selection. None of them touch a store or a clock; time and committed
// counts are passed in by the application layer.
package services
