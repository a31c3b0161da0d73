package utils

import "testing"

func TestNumberToWords(t *testing.T) {
	cases := map[int]string{
		0:        "",
		7:        "Seven",
		19:       "Nineteen",
		42:       "Forty Two",
		100:      "One Hundred",
		320:      "Three Hundred Twenty",
		1500:     "One Thousand Five Hundred",
		100000:   "One Lakh",
		2550000:  "Twenty Five Lakh Fifty Thousand",
		10000000: "One Crore",
	}
	for in, want := range cases {
		if got := NumberToWords(in); got != want {
			t.Errorf("NumberToWords(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestNumberToCurrencyWords(t *testing.T) {
	cases := map[float64]string{
		0:      "Zero Rupees Only",
		320:    "Three Hundred Twenty Rupees Only",
		320.50: "Three Hundred Twenty Rupees and Fifty Paise Only",
		0.25:   "Twenty Five Paise Only",
	}
	for in, want := range cases {
		if got := NumberToCurrencyWords(in); got != want {
			t.Errorf("NumberToCurrencyWords(%v): expected %q, got %q", in, want, got)
		}
	}
}
