package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

// statusByKind is the exhaustive mapping from error kind to HTTP status.
// Controllers and repositories only ever tag errors with a kind; this table
// is the single place where kinds become status codes.
var statusByKind = map[apperr.Kind]int{
	apperr.KindValidation:    http.StatusBadRequest,
	apperr.KindNotFound:      http.StatusNotFound,
	apperr.KindRouteNotFound: http.StatusNotFound,
	apperr.KindInternal:      http.StatusInternalServerError,
}

// ErrorHandler turns errors attached to the gin context into uniform JSON
// responses. Every failure is logged before responding; untagged errors
// map to 500 with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		kind := apperr.KindOf(err)
		status, ok := statusByKind[kind]
		if !ok {
			status = http.StatusInternalServerError
		}

		log.Printf("%s %s failed (%s): %v", c.Request.Method, c.Request.URL.Path, kind, err)

		if c.Writer.Written() {
			return
		}
		c.JSON(status, ErrorResponse{Error: apperr.Message(err)})
	}
}

// RouteNotFound handles requests that matched no route. The error flows
// through ErrorHandler like any other, which keeps the body shape uniform
// while staying distinguishable from a missing resource by message.
func RouteNotFound(c *gin.Context) {
	_ = c.Error(apperr.New(apperr.KindRouteNotFound, "route not found"))
}
