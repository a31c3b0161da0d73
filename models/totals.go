package models

// TaxLine is one applied tax (service tax, SGST, CGST or IGST). Lines with a
// zero or absent rate are never materialized.
type TaxLine struct {
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// Totals is everything the slip summary shows, derived from a Booking and
// discarded after rendering. Never persisted.
type Totals struct {
	TotalQuantity  float64   `json:"total_quantity"`
	TotalWeight    float64   `json:"total_weight"`
	ItemsTotal     float64   `json:"items_total"`
	TotalInsurance float64   `json:"total_insurance"`
	TotalVpp       float64   `json:"total_vpp"`
	InsVpp         float64   `json:"ins_vpp"` // aggregate insurance+VPP used on the slip
	BiltyFee       float64   `json:"bilty_fee"`
	BillTotal      float64   `json:"bill_total"`
	TaxableBase    float64   `json:"taxable_base"`
	TaxLines       []TaxLine `json:"tax_lines"`
	TaxTotal       float64   `json:"tax_total"`
	PreRound       float64   `json:"pre_round"`
	RoundOff       float64   `json:"round_off"`
	GrandTotal     float64   `json:"grand_total"`
}
