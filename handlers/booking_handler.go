package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"shivamroadways/models"
	"shivamroadways/repository"
)

type BookingHandler struct {
	Repo repository.BookingRepository
}

// SaveBooking handles create and update of bookings/quotations
func (h *BookingHandler) SaveBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repo.SaveBooking(&booking); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(booking)
}

// GetAllBookings lists bookings, filtered by query params
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]interface{})
	q := r.URL.Query()
	for key, values := range q {
		if len(values) > 0 && values[0] != "" {
			// Attempt to convert numeric values to int if possible
			if intVal, err := strconv.Atoi(values[0]); err == nil {
				filters[key] = intVal
			} else {
				filters[key] = values[0]
			}
		}
	}

	list, err := h.Repo.GetBookings(filters, false)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []*models.Booking{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// GetBookingByID fetches a single booking
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request, id string) {
	bookingID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		http.Error(w, "invalid booking ID", http.StatusBadRequest)
		return
	}

	filters := map[string]interface{}{"id": bookingID}
	list, err := h.Repo.GetBookings(filters, true)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(list) == 0 {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list[0])
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingIDStr := r.URL.Query().Get("id")
	if bookingIDStr == "" {
		http.Error(w, "missing booking id", http.StatusBadRequest)
		return
	}

	bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
	if err != nil {
		http.Error(w, "invalid booking id", http.StatusBadRequest)
		return
	}

	if err := h.Repo.DeleteBooking(bookingID); err != nil {
		http.Error(w, "failed to delete booking: "+err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, ApiResponse{Success: true, Message: "Booking deleted successfully"})
}
