package repository

import "shivamroadways/models"

// SlipRepository provides the data a slip needs: the booking itself and the
// company profile printed in its header.
type SlipRepository struct {
	BookingRepo BookingRepository
	CompanyRepo CompanyRepository
}

func NewSlipRepository(bookingRepo BookingRepository, companyRepo CompanyRepository) *SlipRepository {
	return &SlipRepository{
		BookingRepo: bookingRepo,
		CompanyRepo: companyRepo,
	}
}

// GetBookingForSlip fetches a single booking by ID; nil when not found.
func (r *SlipRepository) GetBookingForSlip(id int64) (*models.Booking, error) {
	bookings, err := r.BookingRepo.GetBookings(map[string]interface{}{"id": id}, true)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return bookings[0], nil
}

// GetCompanyForSlip fetches the latest company profile.
func (r *SlipRepository) GetCompanyForSlip() (*models.CompanyProfile, error) {
	return r.CompanyRepo.GetProfile()
}
