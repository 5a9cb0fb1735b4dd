package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RouterConfig holds the dependencies the router needs. Using a config
// struct keeps the constructor stable as dependencies are added.
type RouterConfig struct {
	BookStore BookStore
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(ErrorHandler())

	router.NoRoute(RouteNotFound)

	// Liveness check. Static on purpose: it must never touch the database.
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	booksController := NewBooksController(cfg.BookStore)
	router.POST("/api/books", booksController.CreateBook)
	router.GET("/api/books", booksController.ListBooks)
	router.GET("/api/books/stats", booksController.GetBookStats)
	router.GET("/api/books/:id", booksController.GetBook)
	router.PATCH("/api/books/:id", booksController.UpdateBook)
	router.DELETE("/api/books/:id", booksController.DeleteBook)

	return router
}
