package repository

import (
	"time"

	"shivamroadways/models"
)

type BookingRepository interface {
	// SaveBooking inserts a new booking (ID == 0) or updates an existing one,
	// replacing its line items.
	SaveBooking(b *models.Booking) error
	GetBookings(filters map[string]interface{}, single bool) ([]*models.Booking, error)
	UpdateSlipCreated(bookingID int64, slipPath string, t time.Time) error
	DeleteBooking(bookingID int64) error
}
