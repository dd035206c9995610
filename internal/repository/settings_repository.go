package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/model"
)

// SettingsRepo manages the single fixed-id app_settings row.
type SettingsRepo struct{ DB *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{DB: db} }

// Get reads the configuration row.  When the row has never been written
// it returns zero-valued defaults rather than an error: the settings form
// must render before the first save.
func (r *SettingsRepo) Get(ctx context.Context) (model.AppSettings, error) {
	s := model.AppSettings{ID: model.SettingsID}
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, default_quantity, fixed_loading_charge, freight_rate_per_quintal_usd FROM app_settings WHERE id = ?",
		model.SettingsID).
		Scan(&s.ID, &s.DefaultQuantity, &s.FixedLoadingCharge, &s.FreightRatePerQuintalUSD)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AppSettings{ID: model.SettingsID}, nil
	}
	return s, err
}

// Upsert atomically inserts or updates the id=1 row.  ON DUPLICATE KEY
// UPDATE keeps the invariant that the table never holds more than one row.
func (r *SettingsRepo) Upsert(ctx context.Context, s model.AppSettings) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO app_settings (id, default_quantity, fixed_loading_charge, freight_rate_per_quintal_usd)
		 VALUES (?, ?, ?, ?)
		 ON DUPLICATE KEY UPDATE
		     default_quantity = VALUES(default_quantity),
		     fixed_loading_charge = VALUES(fixed_loading_charge),
		     freight_rate_per_quintal_usd = VALUES(freight_rate_per_quintal_usd)`,
		model.SettingsID, s.DefaultQuantity, s.FixedLoadingCharge, s.FreightRatePerQuintalUSD)
	return err
}
