package kernel

import "math"

// RoundMoney rounds a monetary amount to two decimal places.
// All externally visible prices, fees, and discounts go through this
// helper so intermediate float arithmetic never leaks sub-cent noise.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}
