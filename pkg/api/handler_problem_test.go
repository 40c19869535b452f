package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examkit/proctor/pkg/problems"
)

func newProblemTestServer() *Server {
	s := &Server{
		echo:   echo.New(),
		probs:  problems.NewRegistry(nil),
		logger: slog.Default(),
	}
	s.routes()
	return s
}

func TestProblemHandler(t *testing.T) {
	s := newProblemTestServer()

	t.Run("known problem", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problems/10", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ProblemResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 10, resp.SpecID)
		assert.Equal(t, "2098", resp.BasicInfo.ProblemID)
		assert.Equal(t, 1000, resp.Constraints.TimeLimitMS)

		// Only sample tests are exposed.
		require.Len(t, resp.SampleTests, 1)
		assert.True(t, resp.SampleTests[0].IsSample)
	})

	t.Run("solution and keywords never leave the server", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problems/10", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var raw map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
		assert.NotContains(t, raw, "solution_code")
		assert.NotContains(t, raw, "keywords")
		assert.NotContains(t, raw, "test_cases")
		assert.NotContains(t, raw, "ai_guide")
	})

	t.Run("unknown problem", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problems/999", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body ErrorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Error)
		assert.Equal(t, codeNotFound, body.ErrorCode)
	})

	t.Run("malformed spec id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/problems/abc", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
