package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// problemHandler handles GET /api/v1/problems/:specID. It serves the
// participant-facing problem statement; the solution, hidden tests, and
// guardrail keywords stay server-side.
func (s *Server) problemHandler(c *echo.Context) error {
	specID, err := strconv.Atoi(c.Param("specID"))
	if err != nil || specID <= 0 {
		return writeError(c, http.StatusBadRequest, codeInvalidRequest, "invalid spec id")
	}

	pc, ok := s.probs.Lookup(c.Request().Context(), specID)
	if !ok {
		return writeError(c, http.StatusNotFound, codeNotFound, "unknown problem")
	}
	return c.JSON(http.StatusOK, newProblemResponse(pc))
}
