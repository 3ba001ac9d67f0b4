package analysis

import (
	"strconv"
	"strings"
)

// lamportsPerSOL is the number of indivisible units in one whole SOL.
const lamportsPerSOL = 1e9

// LamportsToSOL converts a decimal-digit lamport string to whole SOL.
// ok is false for empty or malformed input, in which case the value is zero;
// callers that tolerate bad records sum the zero, callers that require the
// field reject upstream of the engine.
func LamportsToSOL(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return float64(v) / lamportsPerSOL, true
}
