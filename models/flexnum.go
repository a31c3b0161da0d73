package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// FlexNumber is a numeric field that survives whatever the client sends:
// numbers, numeric strings, null, or garbage. Anything that does not parse as
// a finite number becomes 0 with Valid=false. Decoding never returns an error;
// a slip must always render rather than fail on a malformed amount.
type FlexNumber struct {
	Float float64
	Valid bool
}

func Num(v float64) FlexNumber {
	return FlexNumber{Float: v, Valid: true}
}

// Or returns the parsed value, or def when the field was missing or malformed.
// An explicit 0 is a valid value and is returned as 0.
func (n FlexNumber) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Float
}

func (n *FlexNumber) set(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	n.Float = v
	n.Valid = true
}

func (n *FlexNumber) UnmarshalJSON(b []byte) error {
	n.Float, n.Valid = 0, false

	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		b = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return nil
	}
	n.set(v)
	return nil
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float)
}

// Scan implements sql.Scanner so nullable numeric columns round-trip:
// NULL comes back as an absent FlexNumber, not as a 0.
func (n *FlexNumber) Scan(src interface{}) error {
	n.Float, n.Valid = 0, false
	switch v := src.(type) {
	case nil:
	case float64:
		n.set(v)
	case int64:
		n.set(float64(v))
	case []byte:
		if f, err := strconv.ParseFloat(string(v), 64); err == nil {
			n.set(f)
		}
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			n.set(f)
		}
	}
	return nil
}

// Ptr is the insert-side counterpart of Scan: nil for absent values so the
// column stays NULL.
func (n FlexNumber) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float
	return &v
}

func (n FlexNumber) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !n.Valid {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(n.Float)
}

func (n *FlexNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	n.Float, n.Valid = 0, false
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeDouble:
		n.set(rv.Double())
	case bson.TypeInt32:
		n.set(float64(rv.Int32()))
	case bson.TypeInt64:
		n.set(float64(rv.Int64()))
	case bson.TypeString:
		if f, err := strconv.ParseFloat(strings.TrimSpace(rv.StringValue()), 64); err == nil {
			n.set(f)
		}
	}
	return nil
}
