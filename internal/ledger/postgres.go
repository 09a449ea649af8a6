package ledger

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// PostgresLedger stores completed orders in a plain orders table. Used
// when DATABASE_URL is configured instead of a sheet webhook.
type PostgresLedger struct {
	db *sql.DB
}

func NewPostgresLedger(db *sql.DB) *PostgresLedger {
	return &PostgresLedger{db: db}
}

func (l *PostgresLedger) AppendRow(ctx context.Context, row Row) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO orders (id, name, city, address, phone, product, price, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		uuid.NewString(),
		row.Name,
		row.City,
		row.Address,
		row.Phone,
		row.Product,
		row.Price,
		row.Timestamp,
	)
	return err
}

func (l *PostgresLedger) ListPhones(ctx context.Context) (map[string]struct{}, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT phone FROM orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]struct{})
	for rows.Next() {
		var phone string
		if err := rows.Scan(&phone); err != nil {
			return nil, err
		}
		out[phone] = struct{}{}
	}
	return out, rows.Err()
}
