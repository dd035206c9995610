package handler // handler defines the HTTP handlers for the API

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// parseID parses the :id route parameter into a uint64.  The second
// return value reports whether the parameter was a valid numeric id.
func parseID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
