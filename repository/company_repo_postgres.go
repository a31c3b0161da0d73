package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"shivamroadways/models"
)

type PostgresCompanyRepo struct {
	DB *sql.DB
}

func NewPostgresCompanyRepo(db *sql.DB) *PostgresCompanyRepo {
	return &PostgresCompanyRepo{DB: db}
}

// SaveProfile inserts or updates the company profile
func (r *PostgresCompanyRepo) SaveProfile(profile *models.CompanyProfile) error {
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}

	// Convert mobile slice to JSON manually
	mobileJSON, err := json.Marshal(profile.Mobile)
	if err != nil {
		return err
	}

	// If ID is passed, UPDATE, else INSERT
	if profile.ID > 0 {
		_, err = r.DB.Exec(`
			UPDATE company_profile
			SET company_name=$1, gstin=$2, address=$3, city=$4, state=$5,
				pincode=$6, jurisdiction_note=$7, logo_url=$8, signature_url=$9,
				mobile=$10, created_at=$11
			WHERE id=$12
		`, profile.CompanyName, profile.GSTIN, profile.Address, profile.City, profile.State,
			profile.Pincode, profile.JurisdictionNote, profile.LogoURL, profile.SignatureURL,
			mobileJSON, profile.CreatedAt, profile.ID)
	} else {
		_, err = r.DB.Exec(`
			INSERT INTO company_profile
			(company_name, gstin, address, city, state, pincode, jurisdiction_note, logo_url, signature_url, mobile, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		`, profile.CompanyName, profile.GSTIN, profile.Address, profile.City, profile.State,
			profile.Pincode, profile.JurisdictionNote, profile.LogoURL, profile.SignatureURL,
			mobileJSON, profile.CreatedAt)
	}

	return err
}

// GetProfile fetches the latest company profile
func (r *PostgresCompanyRepo) GetProfile() (*models.CompanyProfile, error) {
	profile := &models.CompanyProfile{}
	var mobileJSON []byte

	err := r.DB.QueryRow(`
		SELECT id, company_name, address, city, state, pincode, gstin,
			jurisdiction_note, logo_url, signature_url, mobile, created_at
		FROM company_profile
		ORDER BY id DESC LIMIT 1
	`).Scan(&profile.ID, &profile.CompanyName, &profile.Address, &profile.City, &profile.State,
		&profile.Pincode, &profile.GSTIN, &profile.JurisdictionNote, &profile.LogoURL,
		&profile.SignatureURL, &mobileJSON, &profile.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if len(mobileJSON) > 0 {
		if err := json.Unmarshal(mobileJSON, &profile.Mobile); err != nil {
			return nil, err
		}
	}

	return profile, nil
}
