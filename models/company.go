package models

import "time"

type MobileEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// CompanyProfile is the head-office identity printed on every slip.
type CompanyProfile struct {
	ID               int64         `json:"id" bson:"_id,omitempty" db:"id"`
	CompanyName      string        `json:"company_name" bson:"company_name" db:"company_name"`
	Address          string        `json:"address" bson:"address" db:"address"`
	City             string        `json:"city" bson:"city" db:"city"`
	State            string        `json:"state" bson:"state" db:"state"`
	Pincode          string        `json:"pincode" bson:"pincode" db:"pincode"`
	GSTIN            string        `json:"gstin" bson:"gstin" db:"gstin"`
	JurisdictionNote string        `json:"jurisdiction_note" bson:"jurisdiction_note" db:"jurisdiction_note"`
	LogoURL          string        `json:"logo_url" bson:"logo_url" db:"logo_url"`
	SignatureURL     string        `json:"signature_url" bson:"signature_url" db:"signature_url"`
	Mobile           []MobileEntry `json:"mobile" bson:"mobile" db:"mobile"`
	CreatedAt        time.Time     `json:"created_at" bson:"created_at" db:"created_at"`
}
