package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// storeTables lists tables in dependency order.
var storeTables = []string{"customers", "products", "orders", "order_items"}

// Truncate empties the store tables and resets their id sequences.
func Truncate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, "TRUNCATE order_items, orders, products, customers RESTART IDENTITY")
	if err != nil {
		return fmt.Errorf("truncate store tables: %w", err)
	}
	return nil
}

// Load bulk-inserts data with COPY in a single transaction and moves each id
// sequence past the loaded ids.
func Load(ctx context.Context, db *sql.DB, data *Data) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	customers := make([][]any, 0, len(data.Customers))
	for _, c := range data.Customers {
		customers = append(customers, []any{c.ID, c.Name, c.Email, c.Region, c.SignupDate.Format("2006-01-02")})
	}
	if err = copyRows(ctx, tx, "customers", []string{"id", "name", "email", "region", "signup_date"}, customers); err != nil {
		return err
	}

	products := make([][]any, 0, len(data.Products))
	for _, p := range data.Products {
		products = append(products, []any{p.ID, p.Name, p.Category, p.Cost, p.Price})
	}
	if err = copyRows(ctx, tx, "products", []string{"id", "name", "category", "cost", "price"}, products); err != nil {
		return err
	}

	// created_at is TIMESTAMP, so the wall-clock is written without an offset
	orders := make([][]any, 0, len(data.Orders))
	for _, o := range data.Orders {
		orders = append(orders, []any{o.ID, o.CustomerID, string(o.Status), o.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	if err = copyRows(ctx, tx, "orders", []string{"id", "customer_id", "status", "created_at"}, orders); err != nil {
		return err
	}

	lines := make([][]any, 0, len(data.Lines))
	for _, l := range data.Lines {
		lines = append(lines, []any{l.OrderID, l.ProductID, l.Quantity, l.UnitPrice})
	}
	if err = copyRows(ctx, tx, "order_items", []string{"order_id", "product_id", "quantity", "unit_price"}, lines); err != nil {
		return err
	}

	for _, table := range storeTables {
		query := fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table)
		if _, err = tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("reset %s sequence: %w", table, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit load: %w", err)
	}
	return nil
}

func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]any) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return fmt.Errorf("prepare copy into %s: %w", table, err)
	}

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy into %s: %w", table, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy into %s: %w", table, err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy into %s: %w", table, err)
	}

	log.Info().Str("table", table).Int("rows", len(rows)).Msg("📋 Copied rows")
	return nil
}
