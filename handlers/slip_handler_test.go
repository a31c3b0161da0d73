package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shivamroadways/models"
	"shivamroadways/render"
	"shivamroadways/repository"
)

type stubBookingRepo struct {
	booking *models.Booking
}

func (s *stubBookingRepo) SaveBooking(b *models.Booking) error { return nil }
func (s *stubBookingRepo) GetBookings(filters map[string]interface{}, single bool) ([]*models.Booking, error) {
	if s.booking == nil {
		return nil, nil
	}
	return []*models.Booking{s.booking}, nil
}
func (s *stubBookingRepo) UpdateSlipCreated(bookingID int64, slipPath string, t time.Time) error {
	return nil
}
func (s *stubBookingRepo) DeleteBooking(bookingID int64) error { return nil }

type stubCompanyRepo struct {
	profile *models.CompanyProfile
}

func (s *stubCompanyRepo) SaveProfile(p *models.CompanyProfile) error { return nil }
func (s *stubCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	return s.profile, nil
}

func newTestSlipHandler(t *testing.T, booking *models.Booking) *SlipHandler {
	t.Helper()
	renderer, err := render.New()
	if err != nil {
		t.Fatal(err)
	}
	return &SlipHandler{
		Repo: repository.NewSlipRepository(
			&stubBookingRepo{booking: booking},
			&stubCompanyRepo{profile: &models.CompanyProfile{CompanyName: "Shivam Roadways"}},
		),
		Renderer: renderer,
		BiltyFee: 20,
	}
}

func TestSlipHandler_InFlightGuard(t *testing.T) {
	h := newTestSlipHandler(t, nil)

	if !h.tryAcquire(7) {
		t.Fatal("first acquire should succeed")
	}
	if h.tryAcquire(7) {
		t.Error("second acquire for the same booking must fail while in flight")
	}
	if !h.tryAcquire(8) {
		t.Error("a different booking must not be blocked")
	}
	h.release(7)
	if !h.tryAcquire(7) {
		t.Error("acquire should succeed again after release")
	}
}

func TestSlipHandler_PreviewRendersBooking(t *testing.T) {
	booking := &models.Booking{
		ID:           3,
		BookingNo:    "BK-3",
		Kind:         models.KindBooking,
		StartStation: "Surat",
		EndStation:   "Indore",
		BookingDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.LineItem{
			{Name: "Textile bales", Price: models.Num(300)},
		},
	}
	h := newTestSlipHandler(t, booking)

	req := httptest.NewRequest(http.MethodGet, "/slip/preview?id=3", nil)
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "BK-3") || !strings.Contains(body, "Original") {
		t.Error("preview should contain the rendered slip copies")
	}
	// Booking slip: flat ₹20 bilty fee on a ₹300 item, no taxes.
	if !strings.Contains(body, "₹320.00") {
		t.Error("expected grand total ₹320.00 in preview")
	}
}

func TestSlipHandler_PreviewNotFound(t *testing.T) {
	h := newTestSlipHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/slip/preview?id=99", nil)
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for a missing booking, got %d", rec.Code)
	}
}

func TestSlipHandler_QuotationUsesServerTotal(t *testing.T) {
	booking := &models.Booking{
		ID:         5,
		BookingNo:  "QT-5",
		Kind:       models.KindQuotation,
		GrandTotal: models.Num(450),
		Items:      []models.LineItem{{Name: "Spare parts", Price: models.Num(448.75)}},
	}
	h := newTestSlipHandler(t, booking)

	data := h.buildSlipData(booking)
	if data.Totals.GrandTotal != 450 {
		t.Errorf("quotation must trust the server grand total, got %v", data.Totals.GrandTotal)
	}
}

func TestSlipHandler_BookingRecomputesTotal(t *testing.T) {
	booking := &models.Booking{
		ID:         6,
		BookingNo:  "BK-6",
		Kind:       models.KindBooking,
		GrandTotal: models.Num(9999), // stale server value must be ignored
		Items:      []models.LineItem{{Name: "Crate", Price: models.Num(100.40)}},
	}
	h := newTestSlipHandler(t, booking)

	data := h.buildSlipData(booking)
	// 100.40 + 20 bilty fee = 120.40, rounded client-side to 120.
	if data.Totals.GrandTotal != 120 {
		t.Errorf("booking slip must recompute client-side, got %v", data.Totals.GrandTotal)
	}
}
