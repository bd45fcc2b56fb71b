// Package indicator provides technical indicator calculations over daily
// price series.
//
// All functions are pure: given the same ascending series they return the
// same output, with no hidden state. Entries that cannot be computed from
// the available history are math.NaN(), never an error. Short input is
// insufficiency, not failure.
package indicator

import "math"

// Defined reports whether an indicator value was computable.
func Defined(v float64) bool { return !math.IsNaN(v) }

// undefinedSeries returns a slice of n NaN entries.
func undefinedSeries(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
