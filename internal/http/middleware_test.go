package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	serve := func(err error) *httptest.ResponseRecorder {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/boom", func(c *gin.Context) {
			_ = c.Error(err)
		})

		w := httptest.NewRecorder()
		req, reqErr := http.NewRequest("GET", "/boom", nil)
		require.NoError(t, reqErr)
		router.ServeHTTP(w, req)
		return w
	}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation maps to 400", apperr.New(apperr.KindValidation, "title is required"), http.StatusBadRequest, "title is required"},
		{"not found maps to 404", apperr.New(apperr.KindNotFound, "book not found"), http.StatusNotFound, "book not found"},
		{"route not found maps to 404", apperr.New(apperr.KindRouteNotFound, "route not found"), http.StatusNotFound, "route not found"},
		{"internal maps to 500", apperr.Wrap(apperr.KindInternal, "failed to list books", errors.New("disk io")), http.StatusInternalServerError, "failed to list books"},
		{"untagged errors map to 500 with a generic message", errors.New("sql: database is closed"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantBody, resp.Error)
		})
	}

	t.Run("does not overwrite an already written response", func(t *testing.T) {
		router := gin.New()
		router.Use(ErrorHandler())
		router.GET("/half", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
			_ = c.Error(errors.New("late failure"))
		})

		w := httptest.NewRecorder()
		req, err := http.NewRequest("GET", "/half", nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())
	})
}
