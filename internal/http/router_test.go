package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	w := doJSON(t, router, "GET", "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestRouteNotFound(t *testing.T) {
	router, cleanup := setupTestRouter(t)
	defer cleanup()

	t.Run("unknown path", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "route not found", resp.Error)
	})

	t.Run("distinct from a missing resource", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/books/7f9c0a66-55c4-4d2a-9e53-0c2a3f34a1bd", "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "book not found", resp.Error)
	})
}
