package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// LedgerRepo provides CRUD for the mines_ledger table.  The party-type
// derivation happens in the handler; by the time an entry reaches this
// layer its party columns are already nil for Self Factory rows.
type LedgerRepo struct{ DB *sql.DB }

func NewLedgerRepo(db *sql.DB) *LedgerRepo { return &LedgerRepo{DB: db} }

const ledgerColumns = `id, DATE_FORMAT(transaction_date, '%Y-%m-%d'), stone_level, size, quantity,
	area_location, party_type, party_name, mobile_number, mode_of_payment, amount`

func scanLedger(row interface{ Scan(...any) error }) (model.LedgerEntry, error) {
	var e model.LedgerEntry
	err := row.Scan(&e.ID, &e.TransactionDate, &e.StoneLevel, &e.Size, &e.Quantity,
		&e.AreaLocation, &e.PartyType, &e.PartyName, &e.MobileNumber, &e.ModeOfPayment, &e.Amount)
	return e, err
}

// List returns every ledger entry, most recent transaction first with id
// as the tie-breaker.
func (r *LedgerRepo) List(ctx context.Context) ([]model.LedgerEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+ledgerColumns+" FROM mines_ledger ORDER BY transaction_date DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.LedgerEntry{}
	for rows.Next() {
		e, err := scanLedger(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetByID fetches a single entry or ErrNotFound.
func (r *LedgerRepo) GetByID(ctx context.Context, id uint64) (model.LedgerEntry, error) {
	e, err := scanLedger(r.DB.QueryRowContext(ctx,
		"SELECT "+ledgerColumns+" FROM mines_ledger WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return e, ErrNotFound
	}
	return e, err
}

// Create inserts a ledger entry.  The transaction date is server-assigned
// by the handler (today, YYYY-MM-DD) before reaching this layer.
func (r *LedgerRepo) Create(ctx context.Context, e model.LedgerEntry) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO mines_ledger
		 (transaction_date, stone_level, size, quantity, area_location, party_type,
		  party_name, mobile_number, mode_of_payment, amount)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.TransactionDate, e.StoneLevel, e.Size, e.Quantity, e.AreaLocation, e.PartyType,
		e.PartyName, e.MobileNumber, e.ModeOfPayment, e.Amount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update replaces an entry's columns.  The original transaction date is
// left untouched on update.
func (r *LedgerRepo) Update(ctx context.Context, id uint64, e model.LedgerEntry) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE mines_ledger SET
		 stone_level = ?, size = ?, quantity = ?, area_location = ?, party_type = ?,
		 party_name = ?, mobile_number = ?, mode_of_payment = ?, amount = ?
		 WHERE id = ?`,
		e.StoneLevel, e.Size, e.Quantity, e.AreaLocation, e.PartyType,
		e.PartyName, e.MobileNumber, e.ModeOfPayment, e.Amount, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an entry by id or returns ErrNotFound.
func (r *LedgerRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM mines_ledger WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
