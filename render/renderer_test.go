package render

import (
	"strings"
	"testing"

	"shivamroadways/billing"
	"shivamroadways/models"
)

func testSlipData(b *models.Booking) *models.SlipData {
	totals := billing.Compute(b, billing.Params{Kind: models.KindBooking, BiltyFee: 20})
	return &models.SlipData{
		Company: &models.CompanyProfile{
			CompanyName:  "Shivam Roadways",
			SignatureURL: "https://example.com/sign.png",
			Mobile:       []models.MobileEntry{{Number: "9825012345", Label: "Office"}},
		},
		Booking:         b,
		Totals:          totals,
		Branches:        models.Branches,
		Contacts:        "9825012345(Office)",
		Date:            "01-Sep-2026",
		GrandTotalWords: "Three Hundred Twenty Rupees Only",
	}
}

func testBooking() *models.Booking {
	return &models.Booking{
		BookingNo:    "BK-1042",
		Kind:         models.KindBooking,
		StartStation: "Ahmedabad",
		EndStation:   "Mumbai",
		Sender:       models.Party{Name: "Ramesh Traders", Contact: "9898011223", City: "Ahmedabad", GSTIN: "24AAACR1234F1Z5"},
		Receiver:     models.Party{Name: "Mehta & Sons", Contact: "9820455667", City: "Mumbai"},
		Items: []models.LineItem{
			{Name: "Machine parts", Quantity: models.Num(1), Price: models.Num(300), PaymentStatus: models.PaymentToPay},
		},
	}
}

func TestScreen_NilBookingRendersNothing(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Screen(nil)
	if err != nil || out != "" {
		t.Errorf("nil data: expected empty output and nil error, got %q, %v", out, err)
	}

	out, err = r.Screen(&models.SlipData{})
	if err != nil || out != "" {
		t.Errorf("nil booking: expected empty output and nil error, got %q, %v", out, err)
	}

	pdf, err := r.PDF(nil, &models.SlipData{})
	if err != nil || pdf != nil {
		t.Errorf("nil booking PDF: expected nil bytes and nil error, got %d bytes, %v", len(pdf), err)
	}
}

func TestScreen_TwoCopiesWithSeparator(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.Screen(testSlipData(testBooking()))
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(out, "Original") != 1 || strings.Count(out, "Duplicate") != 1 {
		t.Error("expected exactly one Original and one Duplicate copy label")
	}
	if !strings.Contains(out, `class="copy-separator"`) {
		t.Error("expected a visible separator between copies")
	}
	if strings.Count(out, "BK-1042") != 2 {
		t.Error("booking number should appear in both copies")
	}
	if !strings.Contains(out, "₹320.00") {
		t.Error("grand total ₹320.00 missing from output")
	}
	if !strings.Contains(out, "badge-toPay") {
		t.Error("payment status badge missing")
	}
	if !strings.Contains(out, "24AAACR1234F1Z5") {
		t.Error("sender GSTIN missing")
	}
	if !strings.Contains(out, "Subject to Ahmedabad Jurisdiction") {
		t.Error("jurisdiction note should reference the origin station")
	}
	for _, br := range models.Branches {
		if !strings.Contains(out, br.Name) {
			t.Errorf("branch block %q missing", br.Name)
		}
	}
}

func TestScreen_TaxLineOmission(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	b := testBooking()
	b.Sgst = models.Num(9)
	b.Cgst = models.Num(9)
	data := testSlipData(b)
	data.Totals = billing.Compute(b, billing.Params{Kind: models.KindBooking, BiltyFee: 20})

	out, err := r.Screen(data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "SGST (9%)") || !strings.Contains(out, "CGST (9%)") {
		t.Error("non-zero SGST/CGST lines must be rendered")
	}
	if strings.Contains(out, "IGST") || strings.Contains(out, "Service Tax") {
		t.Error("zero/absent tax lines must be omitted entirely")
	}
	if strings.Contains(out, "(0%)") {
		t.Error("no tax line may render a 0% rate")
	}
}

func TestScreen_MissingWeightRendersZeroKg(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	b := testBooking()
	b.Items = []models.LineItem{{Name: "No weight", Price: models.Num(10)}}
	data := testSlipData(b)

	out, err := r.Screen(data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "0 kg") {
		t.Error("missing weight should render as 0 kg")
	}
}

func TestScreen_CommentsOnlyWhenPresent(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	b := testBooking()
	out, _ := r.Screen(testSlipData(b))
	if strings.Contains(out, `class="comments"`) {
		t.Error("comments block should be hidden when empty")
	}

	b.AdditionalCmt = "Handle with care"
	out, _ = r.Screen(testSlipData(b))
	if !strings.Contains(out, "Handle with care") {
		t.Error("comments block missing")
	}
}

func TestPrintDocument_SelfContained(t *testing.T) {
	r, err := New()
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.PrintDocument(testSlipData(testBooking()))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("print document must be standalone HTML")
	}
	if !strings.Contains(out, "page-break-after") {
		t.Error("each copy must be forced onto its own printed page")
	}
	if !strings.Contains(out, "window.print()") || !strings.Contains(out, "window.close()") {
		t.Error("print document must auto-invoke the print dialog and close itself")
	}

	// Empty input degrades to an empty document, not a bare wrapper.
	out, err = r.PrintDocument(&models.SlipData{})
	if err != nil || out != "" {
		t.Errorf("nil booking: expected empty print document, got %q", out)
	}
}
