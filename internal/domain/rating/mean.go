package rating

// Average is the arithmetic mean of the rating values rounded half-up at
// the tenths digit, or 0 for an empty set.
//
// The rounding runs on integers. Rounding mean*10 in float64 misses the
// half-up contract for values like 4.05, whose nearest double is just below
// the true value.
func Average(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := 0
	for _, v := range values {
		sum += v
	}

	n := len(values)

	// round-half-up of (sum/n)*10, in tenths
	tenths := (sum*20 + n) / (2 * n)

	return float64(tenths) / 10
}
