package models

// SlipData is the fully bound input for one rendered slip copy. The same
// value feeds the on-screen preview, the print document and the PDF so the
// three can never drift.
type SlipData struct {
	Company         *CompanyProfile
	Booking         *Booking
	Totals          Totals
	Branches        []Branch
	Contacts        string // formatted mobile numbers
	Date            string // formatted booking/quotation date
	DeliveryDate    string // formatted proposed delivery date, "" when absent
	GrandTotalWords string
	CopyTitle       string // "Original" | "Duplicate"
}
