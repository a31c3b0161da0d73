package routes

import (
	"net/http"

	"shivamroadways/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	userHandler *handlers.UserHandler,
	bookingHandler *handlers.BookingHandler,
	companyHandler *handlers.CompanyHandler,
	slipHandler *handlers.SlipHandler,
) {
	// User routes
	http.Handle("/signup", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Signup))))
	http.Handle("/login", withCORS(http.HandlerFunc(handlers.RecoverWrapper(userHandler.Login))))

	// Slip routes
	http.Handle("/slip/preview", withCORS(http.HandlerFunc(handlers.RecoverWrapper(slipHandler.Preview))))
	http.Handle("/slip/print", withCORS(http.HandlerFunc(handlers.RecoverWrapper(slipHandler.Print))))
	http.Handle("/slip/pdf", withCORS(http.HandlerFunc(handlers.RecoverWrapper(slipHandler.PDF))))
	http.Handle("/slip/send", withCORS(http.HandlerFunc(handlers.RecoverWrapper(slipHandler.Send))))

	// Booking routes (quotations share the same surface via kind=quotation)
	http.Handle("/bookings", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut:
			bookingHandler.SaveBooking(w, r)
		case http.MethodGet:
			bookingHandler.GetAllBookings(w, r)
		case http.MethodDelete:
			bookingHandler.DeleteBooking(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))

	// Get booking by ID
	http.Handle("/bookings/", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/bookings/"):]
		if id != "" {
			bookingHandler.GetBookingByID(w, r, id)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))))

	// Company profile routes
	http.Handle("/company", withCORS(http.HandlerFunc(handlers.RecoverWrapper(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			companyHandler.SaveProfile(w, r)
		case http.MethodGet:
			companyHandler.GetProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))))
}
