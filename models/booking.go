package models

import "time"

type DocumentKind string

const (
	KindBooking   DocumentKind = "booking"
	KindQuotation DocumentKind = "quotation"
)

// Title is the form used in slip headers and PDF filenames.
func (k DocumentKind) Title() string {
	if k == KindQuotation {
		return "Quotation"
	}
	return "Booking"
}

type PaymentStatus string

const (
	PaymentPaid  PaymentStatus = "paid"
	PaymentToPay PaymentStatus = "toPay"
	PaymentNone  PaymentStatus = "none"
)

// Party is a sender or receiver snapshot stored inline on the booking.
type Party struct {
	Name    string `json:"name" db:"name" bson:"name"`
	Contact string `json:"contact" db:"contact" bson:"contact"`
	City    string `json:"city" db:"city" bson:"city"`
	GSTIN   string `json:"gstin,omitempty" db:"gstin" bson:"gstin,omitempty"`
}

// LineItem is one shipped product/parcel within a booking. All monetary and
// weight fields tolerate malformed input (see FlexNumber); quantity is special
// in that absence means 1 while an explicit 0 stays 0.
type LineItem struct {
	ID            int64         `json:"id" db:"id" bson:"id,omitempty"`
	BookingID     int64         `json:"booking_id" db:"booking_id" bson:"booking_id"`
	Name          string        `json:"name" db:"name" bson:"name"`
	Quantity      FlexNumber    `json:"quantity" db:"quantity" bson:"quantity"`
	Weight        FlexNumber    `json:"weight" db:"weight_kg" bson:"weight"`
	Price         FlexNumber    `json:"price" db:"price" bson:"price"`
	Insurance     FlexNumber    `json:"insurance" db:"insurance" bson:"insurance"`
	VppAmount     FlexNumber    `json:"vpp_amount" db:"vpp_amount" bson:"vpp_amount"`
	PaymentStatus PaymentStatus `json:"payment_status" db:"payment_status" bson:"payment_status"`
	ReceiptNo     string        `json:"receipt_no,omitempty" db:"receipt_no" bson:"receipt_no,omitempty"`
	RefNo         string        `json:"ref_no,omitempty" db:"ref_no" bson:"ref_no,omitempty"`
}

// Status returns the payment status normalized to one of the three known
// values so templates can rely on it as a CSS class.
func (i LineItem) Status() PaymentStatus {
	switch i.PaymentStatus {
	case PaymentPaid, PaymentToPay:
		return i.PaymentStatus
	}
	return PaymentNone
}

// Booking is the aggregate the billing calculator and slip renderer consume.
// Quotations share the same shape, distinguished by Kind.
type Booking struct {
	ID                   int64        `json:"id" db:"id" bson:"_id,omitempty"`
	BookingNo            string       `json:"booking_no" db:"booking_no" bson:"booking_no"`
	Kind                 DocumentKind `json:"kind" db:"kind" bson:"kind"`
	StartStation         string       `json:"start_station" db:"start_station" bson:"start_station"`
	EndStation           string       `json:"end_station" db:"end_station" bson:"end_station"`
	Sender               Party        `json:"sender" bson:"sender"`
	Receiver             Party        `json:"receiver" bson:"receiver"`
	BookingDate          time.Time    `json:"booking_date" db:"booking_date" bson:"booking_date"`
	ProposedDeliveryDate *time.Time   `json:"proposed_delivery_date,omitempty" db:"proposed_delivery_date" bson:"proposed_delivery_date,omitempty"`

	// Rate inputs. Freight is the bilty fee carried on the booking itself;
	// InsVppAmount is an aggregate insurance+VPP override that, when set and
	// positive, wins over the per-item sums. GrandTotal may arrive
	// pre-computed from the backend.
	Freight      FlexNumber `json:"freight" db:"freight" bson:"freight"`
	InsVppAmount FlexNumber `json:"ins_vpp_amount" db:"ins_vpp_amount" bson:"ins_vpp_amount"`
	STax         FlexNumber `json:"s_tax" db:"s_tax" bson:"s_tax"`
	Sgst         FlexNumber `json:"sgst" db:"sgst" bson:"sgst"`
	Cgst         FlexNumber `json:"cgst" db:"cgst" bson:"cgst"`
	Igst         FlexNumber `json:"igst" db:"igst" bson:"igst"`
	GrandTotal   FlexNumber `json:"grand_total" db:"grand_total" bson:"grand_total"`

	Items         []LineItem `json:"items" bson:"items"`
	AdditionalCmt string     `json:"additional_cmt,omitempty" db:"additional_cmt" bson:"additional_cmt,omitempty"`

	Status        string     `json:"status" db:"status" bson:"status"` // draft | complete
	CreatedBy     int64      `json:"created_by" db:"created_by" bson:"created_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at" bson:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty" db:"updated_at" bson:"updated_at,omitempty"`
	SlipCreatedAt *time.Time `json:"slip_created_at,omitempty" db:"slip_created_at" bson:"slip_created_at,omitempty"`
	SlipPath      *string    `json:"slip_path,omitempty" db:"slip_path" bson:"slip_path,omitempty"`

	CreatedByUser *AppUser `json:"created_by_user,omitempty" bson:"-"`
}
