package billing

import (
	"math"

	"shivamroadways/models"
)

// Params selects the billing rules for one document.
type Params struct {
	Kind models.DocumentKind

	// BiltyFee overrides the booking's own freight when non-zero. The
	// configured default (₹20) comes in from config; the calculator itself
	// carries no hard-coded fee.
	BiltyFee float64

	// UseServerTotal trusts a backend-supplied grand total as authoritative
	// and derives the round-off from it. When false (or the booking carries
	// no grand total) the grand total is recomputed and rounded to the
	// nearest rupee.
	UseServerTotal bool
}

// Compute derives all slip totals from a booking. It is pure and total: no
// side effects, no errors, and malformed numeric input degrades to 0 rather
// than propagating. A nil booking yields zero totals.
func Compute(b *models.Booking, p Params) models.Totals {
	var t models.Totals
	if b == nil {
		return t
	}

	for _, it := range b.Items {
		// Absent quantity means 1; an explicit 0 stays 0.
		t.TotalQuantity += it.Quantity.Or(1)
		t.TotalWeight += it.Weight.Or(0)
		t.ItemsTotal += it.Price.Or(0)
		t.TotalInsurance += it.Insurance.Or(0)
		t.TotalVpp += it.VppAmount.Or(0)
	}

	// Aggregate insurance+VPP override wins over per-item sums when present.
	t.InsVpp = t.TotalInsurance + t.TotalVpp
	if b.InsVppAmount.Or(0) > 0 {
		t.InsVpp = b.InsVppAmount.Float
	}

	t.BiltyFee = p.BiltyFee
	if t.BiltyFee == 0 {
		t.BiltyFee = b.Freight.Or(0)
	}

	t.BillTotal = t.ItemsTotal + t.InsVpp + t.BiltyFee

	// The taxable base differs by document kind and the two are kept
	// deliberately distinct: quotations tax the item prices, bookings tax
	// the freight and insurance/VPP charges.
	switch p.Kind {
	case models.KindQuotation:
		t.TaxableBase = t.ItemsTotal
	default:
		t.TaxableBase = t.BiltyFee + t.InsVpp
	}

	taxRates := []struct {
		name string
		rate float64
	}{
		{"Service Tax", b.STax.Or(0)},
		{"SGST", b.Sgst.Or(0)},
		{"CGST", b.Cgst.Or(0)},
		{"IGST", b.Igst.Or(0)},
	}
	for _, tr := range taxRates {
		if tr.rate <= 0 {
			continue
		}
		amount := t.TaxableBase * tr.rate / 100
		t.TaxLines = append(t.TaxLines, models.TaxLine{Name: tr.name, Rate: tr.rate, Amount: amount})
		t.TaxTotal += amount
	}

	t.PreRound = t.BillTotal + t.TaxTotal

	if p.UseServerTotal && b.GrandTotal.Or(0) > 0 {
		t.GrandTotal = b.GrandTotal.Float
	} else {
		t.GrandTotal = math.Round(t.PreRound)
	}
	t.RoundOff = t.GrandTotal - t.PreRound

	return t
}
