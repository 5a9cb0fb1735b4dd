// Package database provides the data access layer for the application.
//
// database.go owns the connection lifecycle: it opens the sqlite database,
// runs migrations, and exposes Ping/Close. Domain operations live in
// sub-packages, each exposing a Repository over the shared *gorm.DB:
//
//	db, err := database.NewDatabase("./bookshelf.db")
//	repo := books.NewRepository(db.DB)
//	book, err := repo.GetByID(ctx, id)
//
// The single Database value is created at startup and injected into
// repositories; it is never accessed as a package-level global.
package database
