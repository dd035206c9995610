package model

// SettingsID is the only row the app_settings table ever holds.
const SettingsID = 1

// AppSettings mirrors the single fixed-id `app_settings` configuration
// row.  The client knows the default_quantity column as "quantity"; the
// handler performs that renaming at the API boundary.
type AppSettings struct {
	ID                       uint64  // app_settings.id, always 1
	DefaultQuantity          float64 // app_settings.default_quantity
	FixedLoadingCharge       float64 // app_settings.fixed_loading_charge
	FreightRatePerQuintalUSD float64 // app_settings.freight_rate_per_quintal_usd
}
