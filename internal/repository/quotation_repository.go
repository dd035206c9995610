package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// QuotationRepo provides CRUD for the wide quotations table.  Create runs
// inside an explicit transaction so a failure anywhere leaves no partial
// row behind.
type QuotationRepo struct{ DB *sql.DB }

func NewQuotationRepo(db *sql.DB) *QuotationRepo { return &QuotationRepo{DB: db} }

const quotationColumns = `id, type_of_stone, status_of_stone, size, quantity, thickness, rate_per, rate_value, gst_percent,
	owner_name, company_name, mobile_no, email_address, address,
	estimated_weight, quintals, tonnes, selected_state, selected_district, selected_city,
	freight_rate, freight_cost, invoice_no, DATE_FORMAT(date, '%Y-%m-%d'),
	customer_name, customer_mobile_no, permanent_address, postal_code, customer_gst,
	sub_total, gst_amount, total_without_freight, freight_charges, grand_total`

func scanQuotation(row interface{ Scan(...any) error }) (model.Quotation, error) {
	var q model.Quotation
	err := row.Scan(&q.ID, &q.TypeOfStone, &q.StatusOfStone, &q.Size, &q.Quantity, &q.Thickness,
		&q.RatePer, &q.RateValue, &q.GSTPercent,
		&q.OwnerName, &q.CompanyName, &q.MobileNo, &q.EmailAddress, &q.Address,
		&q.EstimatedWeight, &q.Quintals, &q.Tonnes, &q.SelectedState, &q.SelectedDistrict, &q.SelectedCity,
		&q.FreightRate, &q.FreightCost, &q.InvoiceNo, &q.Date,
		&q.CustomerName, &q.CustomerMobileNo, &q.PermanentAddress, &q.PostalCode, &q.CustomerGST,
		&q.SubTotal, &q.GSTAmount, &q.TotalWithoutFreight, &q.FreightCharges, &q.GrandTotal)
	return q, err
}

func quotationArgs(q model.Quotation) []any {
	return []any{
		q.TypeOfStone, q.StatusOfStone, q.Size, q.Quantity, q.Thickness, q.RatePer, q.RateValue, q.GSTPercent,
		q.OwnerName, q.CompanyName, q.MobileNo, q.EmailAddress, q.Address,
		q.EstimatedWeight, q.Quintals, q.Tonnes, q.SelectedState, q.SelectedDistrict, q.SelectedCity,
		q.FreightRate, q.FreightCost, q.InvoiceNo, q.Date,
		q.CustomerName, q.CustomerMobileNo, q.PermanentAddress, q.PostalCode, q.CustomerGST,
		q.SubTotal, q.GSTAmount, q.TotalWithoutFreight, q.FreightCharges, q.GrandTotal,
	}
}

// List returns all quotations, newest first.
func (r *QuotationRepo) List(ctx context.Context) ([]model.Quotation, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+quotationColumns+" FROM quotations ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Quotation{}
	for rows.Next() {
		q, err := scanQuotation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// GetByID fetches one quotation or ErrNotFound.
func (r *QuotationRepo) GetByID(ctx context.Context, id uint64) (model.Quotation, error) {
	q, err := scanQuotation(r.DB.QueryRowContext(ctx,
		"SELECT "+quotationColumns+" FROM quotations WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return q, ErrNotFound
	}
	return q, err
}

// LastID returns the highest quotation id, or 0 when the table is empty.
// The quotation form uses it to preview the next invoice number.
func (r *QuotationRepo) LastID(ctx context.Context) (uint64, error) {
	var last sql.NullInt64
	if err := r.DB.QueryRowContext(ctx, "SELECT MAX(id) FROM quotations").Scan(&last); err != nil {
		return 0, err
	}
	if !last.Valid {
		return 0, nil
	}
	return uint64(last.Int64), nil
}

// Create inserts one quotation across all columns inside a transaction.
// On any failure the transaction is rolled back; the table gains either
// exactly one complete row or nothing.
func (r *QuotationRepo) Create(ctx context.Context, q model.Quotation) (uint64, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO quotations (
		     type_of_stone, status_of_stone, size, quantity, thickness, rate_per, rate_value, gst_percent,
		     owner_name, company_name, mobile_no, email_address, address,
		     estimated_weight, quintals, tonnes, selected_state, selected_district, selected_city,
		     freight_rate, freight_cost, invoice_no, date,
		     customer_name, customer_mobile_no, permanent_address, postal_code, customer_gst,
		     sub_total, gst_amount, total_without_freight, freight_charges, grand_total
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		quotationArgs(q)...)
	if err != nil {
		return 0, err
	}
	var id int64
	id, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}
	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update performs a full-column replacement of one quotation.
func (r *QuotationRepo) Update(ctx context.Context, id uint64, q model.Quotation) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE quotations SET
		     type_of_stone=?, status_of_stone=?, size=?, quantity=?, thickness=?, rate_per=?, rate_value=?, gst_percent=?,
		     owner_name=?, company_name=?, mobile_no=?, email_address=?, address=?,
		     estimated_weight=?, quintals=?, tonnes=?, selected_state=?, selected_district=?, selected_city=?,
		     freight_rate=?, freight_cost=?, invoice_no=?, date=?,
		     customer_name=?, customer_mobile_no=?, permanent_address=?, postal_code=?, customer_gst=?,
		     sub_total=?, gst_amount=?, total_without_freight=?, freight_charges=?, grand_total=?
		 WHERE id=?`,
		append(quotationArgs(q), id)...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one quotation or returns ErrNotFound.
func (r *QuotationRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM quotations WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
