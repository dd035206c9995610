package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/repository"
	"github.com/Rishijaiswal533/Sawla-Stone-Industries/internal/utils"
)

// LookupField describes one column of a flat lookup entity.  Name is both
// the JSON key and the column name.  Label is the human-readable form used
// in error messages.  Numeric fields must parse as a number (zero is
// valid); string fields must be non-empty.
type LookupField struct {
	Name    string
	Label   string
	Numeric bool
}

// LookupSpec parameterizes the generic CRUD handler for one flat entity:
// its columns, validation message and response wording.  The six lookup
// families (four pricing tables, stone ledger, machinery register) are
// instances of this one implementation.
type LookupSpec struct {
	Noun        string // log prefix, e.g. "stone_data"
	Fields      []LookupField
	RequiredMsg string // 400 message when a required field is missing
	WrapList    bool   // wrap list responses in {message, data}
	ListMsg     string // message used when WrapList is set
	EchoFields  bool   // echo submitted fields back in the create response
	EchoDetails bool   // include details: err.Error() on 500 responses
	CreateMsg   string
	UpdateMsg   string
	DeleteMsg   string
	NotFoundMsg string
	FetchErr    string
	CreateErr   string
	UpdateErr   string
	DeleteErr   string

	// Optional per-method overrides. Some families word the update
	// validation and the update/delete misses differently.
	UpdateRequiredMsg string
	UpdateNotFoundMsg string
	DeleteNotFoundMsg string
}

func orDefault(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// LookupHandler serves the full CRUD surface for one flat entity.
type LookupHandler struct {
	Repo *repository.LookupRepo
	Spec LookupSpec
}

func NewLookupHandler(repo *repository.LookupRepo, spec LookupSpec) *LookupHandler {
	return &LookupHandler{Repo: repo, Spec: spec}
}

func (h *LookupHandler) fail(c echo.Context, status int, msg string, err error) error {
	log.Printf("Database Error (%s): %v", h.Spec.Noun, err)
	body := echo.Map{"message": msg}
	if h.Spec.EchoDetails {
		body["details"] = err.Error()
	}
	return c.JSON(status, body)
}

// extract pulls the declared fields out of the raw JSON body in column
// order.  It returns a validation error message for the first field that
// is missing (strings) or does not parse (numerics); values otherwise.
func (h *LookupHandler) extract(body map[string]any, requiredMsg string) ([]any, string) {
	values := make([]any, 0, len(h.Spec.Fields))
	for _, f := range h.Spec.Fields {
		raw, present := body[f.Name]
		if f.Numeric {
			if !present || raw == nil {
				return nil, requiredMsg
			}
			n, ok := utils.ParseNumber(raw)
			if !ok {
				return nil, f.Label + " must be a number."
			}
			values = append(values, n)
			continue
		}
		s, _ := raw.(string)
		if utils.CleanString(s) == nil {
			return nil, requiredMsg
		}
		values = append(values, s)
	}
	return values, ""
}

// List handles GET on the collection.
func (h *LookupHandler) List(c echo.Context) error {
	rows, err := h.Repo.List(c.Request().Context())
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, h.Spec.FetchErr, err)
	}
	if h.Spec.WrapList {
		return c.JSON(http.StatusOK, echo.Map{"message": h.Spec.ListMsg, "data": rows})
	}
	return c.JSON(http.StatusOK, rows)
}

// Get handles GET on a single row.
func (h *LookupHandler) Get(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": h.Spec.NotFoundMsg})
	}
	row, err := h.Repo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": h.Spec.NotFoundMsg})
		}
		return h.fail(c, http.StatusInternalServerError, h.Spec.FetchErr, err)
	}
	return c.JSON(http.StatusOK, row)
}

// Create handles POST.  Validation completes before any database call.
func (h *LookupHandler) Create(c echo.Context) error {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	values, msg := h.extract(body, h.Spec.RequiredMsg)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}
	id, err := h.Repo.Create(c.Request().Context(), values)
	if err != nil {
		return h.fail(c, http.StatusInternalServerError, h.Spec.CreateErr, err)
	}
	resp := echo.Map{"message": h.Spec.CreateMsg, "id": id}
	if h.Spec.EchoFields {
		for i, f := range h.Spec.Fields {
			resp[f.Name] = values[i]
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

// Update handles PUT with full-record replacement semantics.
func (h *LookupHandler) Update(c echo.Context) error {
	notFound := orDefault(h.Spec.UpdateNotFoundMsg, h.Spec.NotFoundMsg)
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": notFound})
	}
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}
	values, msg := h.extract(body, orDefault(h.Spec.UpdateRequiredMsg, h.Spec.RequiredMsg))
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": msg})
	}
	if err := h.Repo.Update(c.Request().Context(), id, values); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": notFound})
		}
		return h.fail(c, http.StatusInternalServerError, h.Spec.UpdateErr, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": h.Spec.UpdateMsg, "id": id})
}

// Delete handles DELETE on a single row.
func (h *LookupHandler) Delete(c echo.Context) error {
	notFound := orDefault(h.Spec.DeleteNotFoundMsg, h.Spec.NotFoundMsg)
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": notFound})
	}
	if err := h.Repo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": notFound})
		}
		return h.fail(c, http.StatusInternalServerError, h.Spec.DeleteErr, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": h.Spec.DeleteMsg, "id": id})
}
