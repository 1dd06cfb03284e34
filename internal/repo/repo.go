package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Quote is a saved estimation: the exact input and both result records as
// JSON, full float precision, so a re-render never re-derives a number.
type Quote struct {
	ID        int             `json:"id"`
	Reference string          `json:"reference"`
	Title     string          `json:"title"`
	Room      json.RawMessage `json:"room"`
	Sizing    json.RawMessage `json:"sizing"`
	Costing   json.RawMessage `json:"costing"`
	CreatedAt time.Time       `json:"created_at"`
}

// QuoteSummary is the list view, without the payloads.
type QuoteSummary struct {
	ID        int       `json:"id"`
	Reference string    `json:"reference"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrNotFound = fmt.Errorf("not found")

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveQuote(ctx context.Context, userID int, q Quote) (int, error)
	GetQuote(ctx context.Context, userID, id int) (Quote, error)
	ListQuotes(ctx context.Context, userID int) ([]QuoteSummary, error)
}

type PostgresQuoteRepository struct {
	db *sql.DB
}

func NewPostgresQuoteDB(db *sql.DB) *PostgresQuoteRepository {
	return &PostgresQuoteRepository{db: db}
}

func (r *PostgresQuoteRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresQuoteRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresQuoteRepository) SaveQuote(ctx context.Context, userID int, q Quote) (int, error) {
	var id int
	query := `INSERT INTO quotes (user_id, reference, title, room, sizing, costing)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, q.Reference, q.Title,
		[]byte(q.Room), []byte(q.Sizing), []byte(q.Costing)).Scan(&id)
	return id, err
}

func (r *PostgresQuoteRepository) GetQuote(ctx context.Context, userID, id int) (Quote, error) {
	var q Quote
	var room, sizing, costing []byte
	query := `SELECT id, reference, title, room, sizing, costing, created_at
		FROM quotes WHERE id=$1 AND user_id=$2`
	err := r.db.QueryRowContext(ctx, query, id, userID).
		Scan(&q.ID, &q.Reference, &q.Title, &room, &sizing, &costing, &q.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return Quote{}, ErrNotFound
		}
		return Quote{}, err
	}
	q.Room = room
	q.Sizing = sizing
	q.Costing = costing
	return q, nil
}

func (r *PostgresQuoteRepository) ListQuotes(ctx context.Context, userID int) ([]QuoteSummary, error) {
	query := `SELECT id, reference, title, created_at
		FROM quotes WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []QuoteSummary
	for rows.Next() {
		var s QuoteSummary
		if err := rows.Scan(&s.ID, &s.Reference, &s.Title, &s.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
