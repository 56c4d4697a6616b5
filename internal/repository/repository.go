package repository

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Queries wraps a pgx pool with typed accessors for the schema in
// internal/database/migrations.
type Queries struct {
	db *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Queries {
	return &Queries{db: db}
}
