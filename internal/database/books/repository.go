// Package books provides database operations for book records.
package books

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
)

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListFilter describes the optional list filters. Zero values mean "not
// set"; Page and Limit are expected to be normalized by the caller.
type ListFilter struct {
	Query  string // case-insensitive substring on title OR author
	Status string // exact match
	Tag    string // exact membership in the tags list
	Page   int    // 1-based
	Limit  int
}

// ListResult carries one page of books plus the unpaginated match count,
// so callers can compute the page count themselves.
type ListResult struct {
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Items []entities.Book `json:"items"`
}

// Stats aggregates the collection by reading status.
type Stats struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"byStatus"`
}

// Create persists a new book, assigning its id. Timestamps are set by
// gorm on insert.
func (r *Repository) Create(book *entities.Book) error {
	if book.ID == "" {
		book.ID = uuid.NewString()
	}
	if book.Tags == nil {
		book.Tags = entities.StringList{}
	}
	if err := r.db.Create(book).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to create book", err)
	}
	return nil
}

// GetByID retrieves a book. A malformed id cannot match any stored record,
// so it is reported as not-found rather than as a client error.
func (r *Repository) GetByID(id string) (*entities.Book, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.New(apperr.KindNotFound, "book not found")
	}

	var book entities.Book
	err := r.db.Where("id = ?", id).First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.KindNotFound, "book not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to fetch book", err)
	}
	return &book, nil
}

// Update persists an already merged and validated book. gorm refreshes
// UpdatedAt on save.
func (r *Repository) Update(book *entities.Book) error {
	if err := r.db.Save(book).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to update book", err)
	}
	return nil
}

// Delete permanently removes a book.
func (r *Repository) Delete(id string) error {
	book, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if err := r.db.Delete(book).Error; err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete book", err)
	}
	return nil
}

// applyFilter adds the WHERE clauses for filter to a fresh query. Called
// once for the count and once for the page fetch; reusing a single gorm
// chain across both is not safe.
func (r *Repository) applyFilter(filter ListFilter) *gorm.DB {
	query := r.db.Model(&entities.Book{})

	if filter.Query != "" {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(author) LIKE ?", pattern, pattern)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Tag != "" {
		// sqlite JSON1: tags is stored as a JSON array in a TEXT column.
		query = query.Where("EXISTS (SELECT 1 FROM json_each(books.tags) WHERE json_each.value = ?)", filter.Tag)
	}
	return query
}

// List returns one page of books matching the filter, newest first, along
// with the total match count.
func (r *Repository) List(filter ListFilter) (*ListResult, error) {
	var total int64
	if err := r.applyFilter(filter).Count(&total).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to count books", err)
	}

	items := []entities.Book{}
	offset := (filter.Page - 1) * filter.Limit
	err := r.applyFilter(filter).
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.Limit).
		Find(&items).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list books", err)
	}

	return &ListResult{
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
		Items: items,
	}, nil
}

// GetStats returns the total book count and a per-status breakdown.
func (r *Repository) GetStats() (*Stats, error) {
	stats := &Stats{ByStatus: map[string]int64{}}

	if err := r.db.Model(&entities.Book{}).Count(&stats.Total).Error; err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to count books", err)
	}

	rows := []struct {
		Status string
		Count  int64
	}{}
	err := r.db.Model(&entities.Book{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to aggregate books", err)
	}
	for _, row := range rows {
		stats.ByStatus[row.Status] = row.Count
	}
	return stats, nil
}
