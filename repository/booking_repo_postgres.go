package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"shivamroadways/models"
)

type PostgresBookingRepo struct {
	DB *sql.DB
}

func NewPostgresBookingRepo(db *sql.DB) *PostgresBookingRepo {
	return &PostgresBookingRepo{DB: db}
}

// Columns callers may filter on. Keys outside this set are ignored.
var bookingFilterColumns = map[string]bool{
	"id":            true,
	"booking_no":    true,
	"kind":          true,
	"start_station": true,
	"end_station":   true,
	"status":        true,
	"created_by":    true,
}

func (r *PostgresBookingRepo) insertItems(tx *sql.Tx, bookingID int64, items []models.LineItem) error {
	for i := range items {
		it := &items[i]
		_, err := tx.Exec(`
			INSERT INTO booking_item(booking_id,name,quantity,weight_kg,price,insurance,vpp_amount,payment_status,receipt_no,ref_no)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`, bookingID, it.Name, it.Quantity.Ptr(), it.Weight.Ptr(), it.Price.Ptr(),
			it.Insurance.Ptr(), it.VppAmount.Ptr(), string(it.Status()), it.ReceiptNo, it.RefNo)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresBookingRepo) SaveBooking(b *models.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	if b.BookingDate.IsZero() {
		b.BookingDate = time.Now().UTC()
	}
	if b.Kind == "" {
		b.Kind = models.KindBooking
	}
	if b.Status == "" {
		b.Status = "draft"
	}

	if b.ID == 0 {
		err = tx.QueryRow(`
			INSERT INTO booking(
				booking_no,kind,start_station,end_station,
				sender_name,sender_contact,sender_city,sender_gstin,
				receiver_name,receiver_contact,receiver_city,receiver_gstin,
				booking_date,proposed_delivery_date,
				freight,ins_vpp_amount,s_tax,sgst,cgst,igst,grand_total,
				additional_cmt,status,created_by,created_at
			)
			VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25)
			RETURNING id
		`,
			b.BookingNo, b.Kind, b.StartStation, b.EndStation,
			b.Sender.Name, b.Sender.Contact, b.Sender.City, b.Sender.GSTIN,
			b.Receiver.Name, b.Receiver.Contact, b.Receiver.City, b.Receiver.GSTIN,
			b.BookingDate, b.ProposedDeliveryDate,
			b.Freight.Ptr(), b.InsVppAmount.Ptr(), b.STax.Ptr(), b.Sgst.Ptr(), b.Cgst.Ptr(), b.Igst.Ptr(), b.GrandTotal.Ptr(),
			b.AdditionalCmt, b.Status, nullableID(b.CreatedBy), b.CreatedAt,
		).Scan(&b.ID)
		if err != nil {
			return err
		}

		if b.BookingNo == "" {
			b.BookingNo = fmt.Sprintf("BK-%d", b.ID)
			if _, err := tx.Exec(`UPDATE booking SET booking_no=$1 WHERE id=$2`, b.BookingNo, b.ID); err != nil {
				return err
			}
		}
	} else {
		now := time.Now().UTC()
		b.UpdatedAt = &now
		_, err = tx.Exec(`
			UPDATE booking SET
				booking_no=$1, kind=$2, start_station=$3, end_station=$4,
				sender_name=$5, sender_contact=$6, sender_city=$7, sender_gstin=$8,
				receiver_name=$9, receiver_contact=$10, receiver_city=$11, receiver_gstin=$12,
				booking_date=$13, proposed_delivery_date=$14,
				freight=$15, ins_vpp_amount=$16, s_tax=$17, sgst=$18, cgst=$19, igst=$20, grand_total=$21,
				additional_cmt=$22, status=$23, updated_at=$24
			WHERE id=$25
		`,
			b.BookingNo, b.Kind, b.StartStation, b.EndStation,
			b.Sender.Name, b.Sender.Contact, b.Sender.City, b.Sender.GSTIN,
			b.Receiver.Name, b.Receiver.Contact, b.Receiver.City, b.Receiver.GSTIN,
			b.BookingDate, b.ProposedDeliveryDate,
			b.Freight.Ptr(), b.InsVppAmount.Ptr(), b.STax.Ptr(), b.Sgst.Ptr(), b.Cgst.Ptr(), b.Igst.Ptr(), b.GrandTotal.Ptr(),
			b.AdditionalCmt, b.Status, b.UpdatedAt, b.ID,
		)
		if err != nil {
			return err
		}

		// Refresh line items
		if _, err := tx.Exec(`DELETE FROM booking_item WHERE booking_id=$1`, b.ID); err != nil {
			return err
		}
	}

	if err := r.insertItems(tx, b.ID, b.Items); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PostgresBookingRepo) GetBookings(filters map[string]interface{}, single bool) ([]*models.Booking, error) {
	query := `
		SELECT
			b.id, b.booking_no, b.kind, b.start_station, b.end_station,
			b.sender_name, b.sender_contact, b.sender_city, b.sender_gstin,
			b.receiver_name, b.receiver_contact, b.receiver_city, b.receiver_gstin,
			b.booking_date, b.proposed_delivery_date,
			b.freight, b.ins_vpp_amount, b.s_tax, b.sgst, b.cgst, b.igst, b.grand_total,
			b.additional_cmt, b.status, b.created_at, b.updated_at, b.slip_created_at, b.slip_path
		FROM booking b
	`

	args := []interface{}{}
	where := []string{}
	i := 1
	for k, v := range filters {
		if !bookingFilterColumns[k] {
			continue
		}
		where = append(where, fmt.Sprintf("b.%s = $%d", k, i))
		args = append(args, v)
		i++
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if !single {
		query += " ORDER BY b.created_at DESC"
	}

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.BookingNo, &b.Kind, &b.StartStation, &b.EndStation,
			&b.Sender.Name, &b.Sender.Contact, &b.Sender.City, &b.Sender.GSTIN,
			&b.Receiver.Name, &b.Receiver.Contact, &b.Receiver.City, &b.Receiver.GSTIN,
			&b.BookingDate, &b.ProposedDeliveryDate,
			&b.Freight, &b.InsVppAmount, &b.STax, &b.Sgst, &b.Cgst, &b.Igst, &b.GrandTotal,
			&b.AdditionalCmt, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.SlipCreatedAt, &b.SlipPath,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Load all line items in one go (to avoid N+1)
	if len(result) > 0 {
		byID := make(map[int64]*models.Booking, len(result))
		ids := make([]int64, len(result))
		for i, b := range result {
			ids[i] = b.ID
			byID[b.ID] = b
		}

		itemRows, err := r.DB.Query(`
			SELECT id, booking_id, name, quantity, weight_kg, price, insurance, vpp_amount, payment_status, receipt_no, ref_no
			FROM booking_item
			WHERE booking_id = ANY($1)
			ORDER BY id
		`, pq.Array(ids))
		if err != nil {
			return nil, err
		}
		defer itemRows.Close()

		for itemRows.Next() {
			var it models.LineItem
			err := itemRows.Scan(
				&it.ID, &it.BookingID, &it.Name, &it.Quantity, &it.Weight,
				&it.Price, &it.Insurance, &it.VppAmount, &it.PaymentStatus,
				&it.ReceiptNo, &it.RefNo,
			)
			if err != nil {
				return nil, err
			}
			if b, ok := byID[it.BookingID]; ok {
				b.Items = append(b.Items, it)
			}
		}
		if err := itemRows.Err(); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (r *PostgresBookingRepo) UpdateSlipCreated(bookingID int64, slipPath string, t time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE booking SET slip_created_at=$1, slip_path=$2 WHERE id=$3
	`, t, slipPath, bookingID)
	return err
}

func (r *PostgresBookingRepo) DeleteBooking(bookingID int64) error {
	res, err := r.DB.Exec(`DELETE FROM booking WHERE id=$1`, bookingID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func nullableID(id int64) interface{} {
	if id == 0 {
		return nil
	}
	return id
}
