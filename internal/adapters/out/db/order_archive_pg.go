// internal/adapters/out/db/order_archive_pg.go
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	_ "github.com/lib/pq"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"
)

// OrderArchivePG mirrors finalized orders into Postgres for reporting.
// Firestore stays the source of truth; this sink is best-effort and only
// enabled when DATABASE_URL is set.
type OrderArchivePG struct {
	DB *sql.DB
}

func NewOrderArchivePG(db *sql.DB) *OrderArchivePG {
	return &OrderArchivePG{DB: db}
}

// Open connects and pings. Callers treat an error as "archive disabled".
func Open(databaseURL string) (*sql.DB, error) {
	dsn := strings.TrimSpace(databaseURL)
	if dsn == "" {
		return nil, errors.New("order_archive_pg: DATABASE_URL is empty")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Archive upserts one finalized order. Items are stored as a JSON column,
// matching the Firestore shape so the two sinks stay comparable.
func (a *OrderArchivePG) Archive(ctx context.Context, o orderdom.Order) error {
	if a == nil || a.DB == nil {
		return errors.New("order_archive_pg: db is nil")
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO orders (id, identity_id, items, total, status, created_at, completed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  items = EXCLUDED.items,
  status = EXCLUDED.status,
  completed_at = EXCLUDED.completed_at`

	_, err = a.DB.ExecContext(ctx, q,
		strings.TrimSpace(o.ID),
		strings.TrimSpace(o.IdentityID),
		items,
		o.Total,
		string(o.Status),
		o.CreatedAt,
		o.CompletedAt,
	)
	return err
}
