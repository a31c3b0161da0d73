package models

import (
	"encoding/json"
	"testing"
)

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		name      string
		in        string
		wantValue float64
		wantValid bool
	}{
		{"plain number", `12.5`, 12.5, true},
		{"integer", `7`, 7, true},
		{"zero", `0`, 0, true},
		{"numeric string", `"99.95"`, 99.95, true},
		{"padded string", `" 42 "`, 42, true},
		{"null", `null`, 0, false},
		{"empty string", `""`, 0, false},
		{"garbage string", `"12abc"`, 0, false},
		{"boolean", `true`, 0, false},
		{"object", `{"v":1}`, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n FlexNumber
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unmarshal must never fail, got %v", err)
			}
			if n.Float != tc.wantValue || n.Valid != tc.wantValid {
				t.Errorf("got {%v %v}, expected {%v %v}", n.Float, n.Valid, tc.wantValue, tc.wantValid)
			}
		})
	}
}

func TestFlexNumber_MissingFieldStaysInvalid(t *testing.T) {
	var item LineItem
	if err := json.Unmarshal([]byte(`{"name":"box"}`), &item); err != nil {
		t.Fatal(err)
	}
	if item.Quantity.Valid {
		t.Error("missing quantity must stay invalid so it can default to 1")
	}
	if got := item.Quantity.Or(1); got != 1 {
		t.Errorf("missing quantity should default to 1, got %v", got)
	}

	if err := json.Unmarshal([]byte(`{"name":"box","quantity":0}`), &item); err != nil {
		t.Fatal(err)
	}
	if got := item.Quantity.Or(1); got != 0 {
		t.Errorf("explicit zero quantity must stay 0, got %v", got)
	}
}

func TestFlexNumber_Scan(t *testing.T) {
	var n FlexNumber
	_ = n.Scan(nil)
	if n.Valid {
		t.Error("NULL should scan to an absent value")
	}
	_ = n.Scan(float64(3.25))
	if !n.Valid || n.Float != 3.25 {
		t.Errorf("float64 scan: got {%v %v}", n.Float, n.Valid)
	}
	_ = n.Scan([]byte("120.50"))
	if !n.Valid || n.Float != 120.5 {
		t.Errorf("numeric bytes scan: got {%v %v}", n.Float, n.Valid)
	}
}

func TestFlexNumber_Ptr(t *testing.T) {
	if (FlexNumber{}).Ptr() != nil {
		t.Error("absent value must map to a NULL column")
	}
	p := Num(5).Ptr()
	if p == nil || *p != 5 {
		t.Error("valid value must round-trip through Ptr")
	}
}
