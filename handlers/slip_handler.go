package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"shivamroadways/billing"
	"shivamroadways/dispatch"
	"shivamroadways/models"
	"shivamroadways/render"
	"shivamroadways/repository"
	"shivamroadways/utils"
)

// SlipHandler serves the slip pipeline: preview, print document, PDF and
// outbound dispatch, all bound to the same billing and rendering path.
type SlipHandler struct {
	Repo     *repository.SlipRepository
	Renderer *render.Renderer
	Gateway  dispatch.Gateway
	Archive  *dispatch.Archive // optional, nil when R2 is not configured
	SavePath string
	BiltyFee float64

	mu       sync.Mutex
	inFlight map[int64]bool
}

// tryAcquire guards against double-generation for the same booking, e.g. a
// user double-clicking the download button.
func (h *SlipHandler) tryAcquire(bookingID int64) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inFlight == nil {
		h.inFlight = make(map[int64]bool)
	}
	if h.inFlight[bookingID] {
		return false
	}
	h.inFlight[bookingID] = true
	return true
}

func (h *SlipHandler) release(bookingID int64) {
	h.mu.Lock()
	delete(h.inFlight, bookingID)
	h.mu.Unlock()
}

func (h *SlipHandler) loadBooking(w http.ResponseWriter, r *http.Request) (*models.Booking, bool) {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		http.Error(w, "missing booking id", http.StatusBadRequest)
		return nil, false
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return nil, false
	}

	booking, err := h.Repo.GetBookingForSlip(id)
	if err != nil {
		http.Error(w, "failed to load booking: "+err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	if booking == nil {
		http.Error(w, "booking not found", http.StatusNotFound)
		return nil, false
	}
	return booking, true
}

// buildSlipData binds booking, totals and company profile into the render
// input. A missing company profile degrades to a slip without the header
// block rather than an error.
func (h *SlipHandler) buildSlipData(booking *models.Booking) *models.SlipData {
	company, err := h.Repo.GetCompanyForSlip()
	if err != nil {
		log.Printf("company profile unavailable, rendering slip without it: %v", err)
		company = nil
	}

	fee := 0.0
	if booking.Kind != models.KindQuotation {
		// Booking slips carry the configured flat bilty fee; quotations use
		// whatever freight the record itself carries.
		fee = h.BiltyFee
	}

	totals := billing.Compute(booking, billing.Params{
		Kind:     booking.Kind,
		BiltyFee: fee,
		// Quotations trust a backend-supplied grand total; booking slips
		// recompute and round client-side.
		UseServerTotal: booking.Kind == models.KindQuotation,
	})

	contacts := ""
	if company != nil {
		for _, m := range company.Mobile {
			contacts += m.Number + "(" + m.Label + "), "
		}
		if len(contacts) > 2 {
			contacts = contacts[:len(contacts)-2]
		}
	}

	date := "-"
	if !booking.BookingDate.IsZero() {
		date = booking.BookingDate.Format("02-Jan-2006")
	}
	delivery := ""
	if booking.ProposedDeliveryDate != nil && !booking.ProposedDeliveryDate.IsZero() {
		delivery = booking.ProposedDeliveryDate.Format("02-Jan-2006")
	}

	return &models.SlipData{
		Company:         company,
		Booking:         booking,
		Totals:          totals,
		Branches:        models.Branches,
		Contacts:        contacts,
		Date:            date,
		DeliveryDate:    delivery,
		GrandTotalWords: utils.NumberToCurrencyWords(totals.GrandTotal),
	}
}

func slipFilename(booking *models.Booking) string {
	return fmt.Sprintf("%s_%s.pdf", booking.Kind.Title(), booking.BookingNo)
}

// Preview serves the on-screen two-copy slip fragment.
func (h *SlipHandler) Preview(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	html, err := h.Renderer.Screen(h.buildSlipData(booking))
	if err != nil {
		http.Error(w, "failed to render slip: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// Print serves the standalone self-printing document.
func (h *SlipHandler) Print(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	html, err := h.Renderer.PrintDocument(h.buildSlipData(booking))
	if err != nil {
		http.Error(w, "failed to render print document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// PDF generates the slip PDF, saves it locally, archives it when R2 is
// configured and records the generation time on the booking.
func (h *SlipHandler) PDF(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	if !h.tryAcquire(booking.ID) {
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: "slip generation already in progress for this booking",
		})
		return
	}
	defer h.release(booking.ID)

	saveDir := h.SavePath
	if saveDir == "" {
		saveDir = "./slips"
	}
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		http.Error(w, "failed to create save directory: "+err.Error(), http.StatusInternalServerError)
		return
	}

	pdfBytes, err := h.Renderer.PDF(r.Context(), h.buildSlipData(booking))
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := slipFilename(booking)
	savePath := filepath.Join(saveDir, filename)
	if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
		http.Error(w, "failed to save PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	fileURL := ""
	if h.Archive != nil {
		fileURL, err = h.Archive.Upload(r.Context(), pdfBytes, filename)
		if err != nil {
			// Archive failure must not block the slip
			log.Printf("failed to archive slip %s: %v", filename, err)
		}
	}

	if err := h.Repo.BookingRepo.UpdateSlipCreated(booking.ID, savePath, time.Now()); err != nil {
		// Log the error but don't block the response
		log.Printf("failed to update slip_created_at for booking %d: %v", booking.ID, err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "slip generated",
		Data: map[string]string{
			"file": filename,
			"url":  fileURL,
		},
	})
}

// Send generates the slip PDF and hands it to the message gateway. Gateway
// failure comes back as a one-line message, never a crash.
func (h *SlipHandler) Send(w http.ResponseWriter, r *http.Request) {
	booking, ok := h.loadBooking(w, r)
	if !ok {
		return
	}

	if !h.tryAcquire(booking.ID) {
		writeJSON(w, http.StatusConflict, ApiResponse{
			Success: false,
			Message: "slip generation already in progress for this booking",
		})
		return
	}
	defer h.release(booking.ID)

	pdfBytes, err := h.Renderer.PDF(r.Context(), h.buildSlipData(booking))
	if err != nil {
		http.Error(w, "failed to generate PDF: "+err.Error(), http.StatusInternalServerError)
		return
	}

	if h.Gateway == nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{
			Success: false,
			Message: "message gateway not configured",
		})
		return
	}

	if err := h.Gateway.SendSlip(r.Context(), booking.BookingNo, pdfBytes); err != nil {
		writeJSON(w, http.StatusBadGateway, ApiResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: fmt.Sprintf("slip for %s sent", booking.BookingNo),
	})
}
