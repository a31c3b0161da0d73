package billing

import (
	"math"
	"testing"
)

func TestFormatINR(t *testing.T) {
	cases := map[float64]string{
		0:       "₹0.00",
		320:     "₹320.00",
		90.5:    "₹90.50",
		1234.56: "₹1234.56",
		-0.35:   "₹-0.35",
	}
	for in, want := range cases {
		if got := FormatINR(in); got != want {
			t.Errorf("FormatINR(%v): expected %s, got %s", in, want, got)
		}
	}
}

func TestFormatSignedINR(t *testing.T) {
	if got := FormatSignedINR(0.4); got != "₹+0.40" {
		t.Errorf("expected ₹+0.40, got %s", got)
	}
	if got := FormatSignedINR(-0.4); got != "₹-0.40" {
		t.Errorf("expected ₹-0.40, got %s", got)
	}
	if got := FormatSignedINR(0); got != "₹+0.00" {
		t.Errorf("expected ₹+0.00, got %s", got)
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	values := []float64{0, 320, 99.99, 100.40, 12345.67, -0.35}
	for _, v := range values {
		got := ParseINR(FormatINR(v))
		if math.Abs(got-v) > 0.005 {
			t.Errorf("round trip of %v came back as %v", v, got)
		}
		// Formatting what came back must be byte-identical: formatting is
		// idempotent at 2 decimals.
		if FormatINR(got) != FormatINR(v) {
			t.Errorf("formatting not idempotent for %v", v)
		}
	}
}

func TestParseINR_Malformed(t *testing.T) {
	for _, s := range []string{"", "₹", "abc", "₹abc"} {
		if got := ParseINR(s); got != 0 {
			t.Errorf("ParseINR(%q): expected 0, got %v", s, got)
		}
	}
}
