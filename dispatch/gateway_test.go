package dispatch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWhatsAppGateway_SendSlip(t *testing.T) {
	var gotBookingNo string
	var gotFilename string
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart body: %v", err)
		}
		gotBookingNo = r.FormValue("booking_no")
		gotAuth = r.Header.Get("Authorization")
		if _, hdr, err := r.FormFile("document"); err == nil {
			gotFilename = hdr.Filename
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	g := NewWhatsAppGateway(srv.URL, "secret-token")
	if err := g.SendSlip(context.Background(), "BK-1042", []byte("%PDF-1.4")); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if gotBookingNo != "BK-1042" {
		t.Errorf("booking_no: expected BK-1042, got %q", gotBookingNo)
	}
	if gotFilename != "slip.pdf" {
		t.Errorf("document filename: expected slip.pdf, got %q", gotFilename)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization header: got %q", gotAuth)
	}
}

func TestWhatsAppGateway_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "recipient not registered", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	g := NewWhatsAppGateway(srv.URL, "")
	err := g.SendSlip(context.Background(), "BK-9", []byte("%PDF-1.4"))
	if err == nil {
		t.Fatal("expected an error on non-2xx response")
	}
	if !strings.Contains(err.Error(), "recipient not registered") {
		t.Errorf("error should carry the gateway message, got %v", err)
	}
}

func TestWhatsAppGateway_Unconfigured(t *testing.T) {
	g := NewWhatsAppGateway("", "")
	if err := g.SendSlip(context.Background(), "BK-1", nil); err == nil {
		t.Fatal("expected an error when no gateway URL is configured")
	}
}
