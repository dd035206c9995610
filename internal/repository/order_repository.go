package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// OrderRepo encapsulates all database queries for the Orders table.
type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

const orderColumns = `order_id, customer_name, mobile_number, stone_level, stone_size, quantity,
	area, delivery_to, third_party_name, third_party_mobile, permanent_address, postal_code,
	payment_mode, amount,
	DATE_FORMAT(submitted_date, '%Y-%m-%d'), TIME_FORMAT(submitted_time, '%H:%i:%s')`

func scanOrder(row interface{ Scan(...any) error }) (model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerName, &o.MobileNumber, &o.StoneLevel, &o.StoneSize,
		&o.Quantity, &o.Area, &o.DeliveryTo, &o.ThirdPartyName, &o.ThirdPartyMobile,
		&o.PermanentAddress, &o.PostalCode, &o.PaymentMode, &o.Amount,
		&o.SubmittedDate, &o.SubmittedTime)
	return o, err
}

// List returns every order, newest first.  Pagination has never been part
// of this API.
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM Orders ORDER BY order_id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// GetByID fetches a single order or ErrNotFound.
func (r *OrderRepo) GetByID(ctx context.Context, id uint64) (model.Order, error) {
	o, err := scanOrder(r.DB.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM Orders WHERE order_id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return o, ErrNotFound
	}
	return o, err
}

// Create inserts a new order.  The submission date and time stamps are
// assigned by the database, not the caller.
func (r *OrderRepo) Create(ctx context.Context, o model.Order) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO Orders
		 (customer_name, mobile_number, stone_level, stone_size, quantity, area, delivery_to,
		  third_party_name, third_party_mobile, permanent_address, postal_code, payment_mode, amount,
		  submitted_date, submitted_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_DATE(), CURRENT_TIME())`,
		o.CustomerName, o.MobileNumber, o.StoneLevel, o.StoneSize, o.Quantity, o.Area,
		o.DeliveryTo, o.ThirdPartyName, o.ThirdPartyMobile, o.PermanentAddress, o.PostalCode,
		o.PaymentMode, o.Amount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update performs a full-column replacement of an order.  ErrNotFound is
// returned when the id matches no row.
func (r *OrderRepo) Update(ctx context.Context, id uint64, o model.Order) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE Orders SET
		 customer_name=?, mobile_number=?, stone_level=?, stone_size=?, quantity=?, area=?, delivery_to=?,
		 third_party_name=?, third_party_mobile=?, permanent_address=?, postal_code=?, payment_mode=?, amount=?
		 WHERE order_id=?`,
		o.CustomerName, o.MobileNumber, o.StoneLevel, o.StoneSize, o.Quantity, o.Area,
		o.DeliveryTo, o.ThirdPartyName, o.ThirdPartyMobile, o.PermanentAddress, o.PostalCode,
		o.PaymentMode, o.Amount, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an order by id or returns ErrNotFound.
func (r *OrderRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM Orders WHERE order_id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
