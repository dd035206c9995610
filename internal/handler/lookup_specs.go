package handler

import (
	"database/sql"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
)

// Constructors for the six flat entities served by LookupHandler.  Each
// binds a table to the generic repository and the response wording its
// clients expect.

// NewStonePriceHandler serves /api/stone_data (table stone_quotation).
func NewStonePriceHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "stone_quotation", "id",
		[]string{"stone_type", "price"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "stone_data",
		Fields: []LookupField{
			{Name: "stone_type", Label: "Stone type"},
			{Name: "price", Label: "Price", Numeric: true},
		},
		RequiredMsg:       "Stone type and price are required.",
		UpdateRequiredMsg: "Stone type and price are required for update.",
		EchoDetails:       true,
		CreateMsg:         "Record created successfully",
		UpdateMsg:         "Record updated successfully",
		DeleteMsg:         "Record deleted successfully",
		NotFoundMsg:       "Record not found.",
		FetchErr:          "Error fetching stone data.",
		CreateErr:         "Error creating record.",
		UpdateErr:         "Error updating record.",
		DeleteErr:         "Error deleting record.",
	})
}

// NewStoneFinishingHandler serves /api/stone_finishing.
func NewStoneFinishingHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "stone_finishing", "id",
		[]string{"finishing_type", "price_difference"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "stone_finishing",
		Fields: []LookupField{
			{Name: "finishing_type", Label: "Finishing type"},
			{Name: "price_difference", Label: "Price difference", Numeric: true},
		},
		RequiredMsg:       "Missing finishing_type or price_difference",
		UpdateRequiredMsg: "Finishing type and price difference are required for update.",
		EchoFields:        true,
		EchoDetails:       true,
		CreateMsg:         "Finishing detail created successfully",
		UpdateMsg:         "Finishing detail updated successfully",
		DeleteMsg:         "Finishing detail deleted successfully",
		NotFoundMsg:       "Finishing detail not found",
		FetchErr:          "Error fetching finishing data.",
		CreateErr:         "Error creating finishing record.",
		UpdateErr:         "Error updating finishing record.",
		DeleteErr:         "Error deleting finishing record.",
	})
}

// NewStoneSizeHandler serves /api/stone_sizes.
func NewStoneSizeHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "stone_sizes", "id",
		[]string{"size", "price"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "stone_sizes",
		Fields: []LookupField{
			{Name: "size", Label: "Size"},
			{Name: "price", Label: "Price", Numeric: true},
		},
		RequiredMsg:       "Size and price are required.",
		UpdateRequiredMsg: "Size and price are required for update.",
		EchoFields:        true,
		EchoDetails:       true,
		CreateMsg:         "Stone size created successfully",
		UpdateMsg:         "Stone size updated successfully",
		DeleteMsg:         "Stone size deleted successfully",
		NotFoundMsg:       "Stone size record not found",
		FetchErr:          "Error fetching stone size data.",
		CreateErr:         "Error creating stone size record.",
		UpdateErr:         "Error updating stone size record.",
		DeleteErr:         "Error deleting stone size record.",
	})
}

// NewStoneThicknessHandler serves /api/stone_thicknesses.
func NewStoneThicknessHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "stone_thicknesses", "id",
		[]string{"thickness", "price", "weight"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "stone_thicknesses",
		Fields: []LookupField{
			{Name: "thickness", Label: "Thickness"},
			{Name: "price", Label: "Price", Numeric: true},
			{Name: "weight", Label: "Weight", Numeric: true},
		},
		RequiredMsg:       "Thickness, price, and weight are required.",
		UpdateRequiredMsg: "Thickness, price, and weight are required for update.",
		EchoFields:        true,
		EchoDetails:       true,
		CreateMsg:         "Stone thickness created successfully",
		UpdateMsg:         "Stone thickness updated successfully",
		DeleteMsg:         "Stone thickness deleted successfully",
		NotFoundMsg:       "Stone thickness record not found",
		FetchErr:          "Error fetching stone thickness data.",
		CreateErr:         "Error creating stone thickness record.",
		UpdateErr:         "Error updating stone thickness record.",
		DeleteErr:         "Error deleting stone thickness record.",
	})
}

// NewStoneStockHandler serves /api/stone_ledger_data, the slab stock
// register.
func NewStoneStockHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "stone_ledger_data", "id",
		[]string{"stone_type", "stone_finish", "stone_size", "stone_slabs"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "stone_ledger_data",
		Fields: []LookupField{
			{Name: "stone_type", Label: "Stone type"},
			{Name: "stone_finish", Label: "Stone finish"},
			{Name: "stone_size", Label: "Stone size"},
			{Name: "stone_slabs", Label: "Stone slabs", Numeric: true},
		},
		RequiredMsg:       "Missing required fields: stone_type, stone_finish, stone_size, or stone_slabs.",
		UpdateRequiredMsg: "Missing required fields for update.",
		CreateMsg:         "Stone entry created successfully",
		UpdateMsg:         "Stone entry successfully updated.",
		DeleteMsg:         "Stone entry successfully deleted.",
		NotFoundMsg:       "Stone entry not found.",
		UpdateNotFoundMsg: "Stone entry ID not found for update.",
		DeleteNotFoundMsg: "Stone entry ID not found for deletion.",
		FetchErr:          "An internal server error occurred while fetching entries.",
		CreateErr:         "An internal server error occurred while creating the entry.",
		UpdateErr:         "An internal server error occurred while updating the entry.",
		DeleteErr:         "An internal server error occurred while deleting the entry.",
	})
}

// NewMachineryHandler serves /api/machinery_ledger_data (table machinery).
func NewMachineryHandler(db *sql.DB) *LookupHandler {
	repo := repository.NewLookupRepo(db, "machinery", "id",
		[]string{"machine_name", "model_number", "purchase_date", "current_status"}, "id DESC")
	return NewLookupHandler(repo, LookupSpec{
		Noun: "machinery_ledger_data",
		Fields: []LookupField{
			{Name: "machine_name", Label: "Machine name"},
			{Name: "model_number", Label: "Model number"},
			{Name: "purchase_date", Label: "Purchase date"},
			{Name: "current_status", Label: "Current status"},
		},
		RequiredMsg:       "Missing required fields for creation.",
		UpdateRequiredMsg: "Missing required fields for update.",
		WrapList:          true,
		ListMsg:           "Machinery entries successfully fetched.",
		CreateMsg:         "Machinery entry successfully created.",
		UpdateMsg:         "Machinery entry successfully updated.",
		DeleteMsg:         "Machinery entry successfully deleted.",
		NotFoundMsg:       "Machinery entry not found.",
		UpdateNotFoundMsg: "Machinery entry ID not found for update.",
		DeleteNotFoundMsg: "Machinery entry ID not found for deletion.",
		FetchErr:          "An internal server error occurred while fetching entries.",
		CreateErr:         "An internal server error occurred while creating the entry.",
		UpdateErr:         "An internal server error occurred while updating the entry.",
		DeleteErr:         "An internal server error occurred while deleting the entry.",
	})
}
