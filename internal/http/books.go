package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/database/books"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// BookStore defines database operations for book management.
type BookStore interface {
	Create(book *entities.Book) error
	GetByID(id string) (*entities.Book, error)
	Update(book *entities.Book) error
	Delete(id string) error
	List(filter books.ListFilter) (*books.ListResult, error)
	GetStats() (*books.Stats, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// CreateBookRequest is the request body for creating a book. Only title
// and author are required; everything else falls back to schema defaults.
type CreateBookRequest struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Status string   `json:"status"`
	Rating *float64 `json:"rating"`
	Notes  string   `json:"notes"`
	Tags   []string `json:"tags"`
}

// Validate checks the request and builds the book to persist, with
// trimmed title/author and defaults applied.
func (r *CreateBookRequest) Validate() (*entities.Book, error) {
	title := strings.TrimSpace(r.Title)
	author := strings.TrimSpace(r.Author)

	var problems []string
	if title == "" {
		problems = append(problems, "title is required")
	}
	if author == "" {
		problems = append(problems, "author is required")
	}

	status := entities.ReadingStatus(r.Status)
	if r.Status == "" {
		status = entities.StatusToRead
	} else if !status.Valid() {
		problems = append(problems, "status must be one of to-read, reading, finished")
	}
	if r.Rating != nil && (*r.Rating < 0 || *r.Rating > 5) {
		problems = append(problems, "rating must be between 0 and 5")
	}
	if len(problems) > 0 {
		return nil, apperr.New(apperr.KindValidation, strings.Join(problems, "; "))
	}

	tags := entities.StringList(r.Tags)
	if tags == nil {
		tags = entities.StringList{}
	}

	return &entities.Book{
		Title:  title,
		Author: author,
		Status: status,
		Rating: r.Rating,
		Notes:  r.Notes,
		Tags:   tags,
	}, nil
}

// UpdateBookRequest is the request body for a partial update. Absent
// fields leave the stored value untouched.
type UpdateBookRequest struct {
	Title  *string  `json:"title"`
	Author *string  `json:"author"`
	Status *string  `json:"status"`
	Rating *float64 `json:"rating"`
	Notes  *string  `json:"notes"`
	Tags   []string `json:"tags"`
}

// Apply merges the patch into book and validates the merged result.
// book is only mutated when the merged result is valid.
func (r *UpdateBookRequest) Apply(book *entities.Book) error {
	merged := *book

	if r.Title != nil {
		merged.Title = strings.TrimSpace(*r.Title)
	}
	if r.Author != nil {
		merged.Author = strings.TrimSpace(*r.Author)
	}
	if r.Status != nil {
		merged.Status = entities.ReadingStatus(*r.Status)
	}
	if r.Rating != nil {
		merged.Rating = r.Rating
	}
	if r.Notes != nil {
		merged.Notes = *r.Notes
	}
	if r.Tags != nil {
		merged.Tags = entities.StringList(r.Tags)
	}

	var problems []string
	if merged.Title == "" {
		problems = append(problems, "title must not be empty")
	}
	if merged.Author == "" {
		problems = append(problems, "author must not be empty")
	}
	if !merged.Status.Valid() {
		problems = append(problems, "status must be one of to-read, reading, finished")
	}
	if merged.Rating != nil && (*merged.Rating < 0 || *merged.Rating > 5) {
		problems = append(problems, "rating must be between 0 and 5")
	}
	if len(problems) > 0 {
		return apperr.New(apperr.KindValidation, strings.Join(problems, "; "))
	}

	*book = merged
	return nil
}

// CreateBook creates a new book record.
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(apperr.KindValidation, "invalid request body", err))
		return
	}

	book, err := req.Validate()
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := bc.store.Create(book); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, book)
}

// ListBooks returns a filtered, paginated book list, newest first.
// GET /api/books?q=&status=&tag=&page=&limit=
func (bc *BooksController) ListBooks(c *gin.Context) {
	filter := books.ListFilter{
		Query:  c.Query("q"),
		Status: c.Query("status"),
		Tag:    c.Query("tag"),
		Page:   parsePositiveInt(c, "page", defaultPage),
		Limit:  parsePositiveInt(c, "limit", defaultLimit),
	}

	result, err := bc.store.List(filter)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetBook returns a single book by id.
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// UpdateBook applies a partial update and returns the post-update record.
// PATCH /api/books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	book, err := bc.store.GetByID(c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperr.Wrap(apperr.KindValidation, "invalid request body", err))
		return
	}

	if err := req.Apply(book); err != nil {
		_ = c.Error(err)
		return
	}

	if err := bc.store.Update(book); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook permanently removes a book.
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	if err := bc.store.Delete(c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetBookStats returns collection totals grouped by reading status.
// GET /api/books/stats
func (bc *BooksController) GetBookStats(c *gin.Context) {
	stats, err := bc.store.GetStats()
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
