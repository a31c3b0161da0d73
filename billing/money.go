package billing

import (
	"strconv"
	"strings"
)

const rupeeSign = "₹"

// FormatINR renders a raw amount for display: rupee sign plus exactly two
// decimals. Formatting is presentation-only; totals are always computed on
// the raw numbers and formatted at the last step.
func FormatINR(v float64) string {
	return rupeeSign + strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatSignedINR keeps the sign visible, used for the round-off line which
// may legitimately be negative.
func FormatSignedINR(v float64) string {
	if v >= 0 {
		return rupeeSign + "+" + strconv.FormatFloat(v, 'f', 2, 64)
	}
	return rupeeSign + strconv.FormatFloat(v, 'f', 2, 64)
}

// ParseINR is the inverse of FormatINR. Malformed input degrades to 0, same
// as every other numeric read in this package.
func ParseINR(s string) float64 {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), rupeeSign))
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
