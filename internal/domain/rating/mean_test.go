package rating

import "testing"

func TestAverage(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		want   float64
	}{
		{"empty set", nil, 0},
		{"single value", []int{4}, 4.0},
		{"whole mean", []int{3, 4, 5}, 4.0},
		{"half mean", []int{3, 4}, 3.5},
		{"after removing the five", []int{3, 4}, 3.5},
		{"all ones", []int{1, 1, 1}, 1.0},
		{"all fives", []int{5, 5, 5, 5}, 5.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Average(tc.values); got != tc.want {
				t.Errorf("Average(%v) = %v, want %v", tc.values, got, tc.want)
			}
		})
	}
}

func TestAverage_RoundsHalfUpAtTenths(t *testing.T) {
	// mean 4.05 (81/20) rounds up to 4.1; float64 4.05*10 sits just below
	// 40.5, which is exactly the drift the integer rounding avoids
	values := make([]int, 0, 20)
	for i := 0; i < 19; i++ {
		values = append(values, 4)
	}
	values = append(values, 5) // sum 81, n 20

	if got := Average(values); got != 4.1 {
		t.Errorf("mean 4.05: got %v, want 4.1", got)
	}
}

func TestAverage_RoundsDownBelowHalf(t *testing.T) {
	// mean 3.04 (76/25) rounds down to 3.0
	values := make([]int, 0, 25)
	for i := 0; i < 24; i++ {
		values = append(values, 3)
	}
	values = append(values, 4) // sum 76, n 25

	if got := Average(values); got != 3.0 {
		t.Errorf("mean 3.04: got %v, want 3.0", got)
	}
}
