// Package sqlite provides a SQLite-backed implementation of the
// domain repositories. The upstream dashboard is the sole writer of
// this data; the engines only read snapshots loaded from it.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/vailmont/printops/pkg/domain/entities"
	"github.com/vailmont/printops/pkg/domain/repositories"
	"github.com/vailmont/printops/pkg/domain/services"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Store is a SQLite-backed implementation of all domain repositories
type Store struct {
	db *sql.DB
}

// Verify interface compliance
var (
	_ repositories.OrderRepository   = (*Store)(nil)
	_ repositories.CatalogRepository = (*Store)(nil)
	_ repositories.StockRepository   = (*Store)(nil)
	_ repositories.UsageRepository   = (*Store)(nil)
)

// Open opens the database at path, sets the recommended pragmas and
// runs pending migrations.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set sqlite pragmas: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Revision returns an identity token for the current data. Callers
// cache engine reports keyed by this token and recompute only when it
// changes.
func (s *Store) Revision(ctx context.Context) (string, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM filament_stock),
			(SELECT COUNT(*) FROM part_stock),
			(SELECT COUNT(*) FROM product_stock),
			(SELECT COUNT(*) FROM usage_history),
			(SELECT COALESCE(MAX(rowid), 0) FROM orders),
			(SELECT COALESCE(MAX(rowid), 0) FROM usage_history)`

	var counts [8]int64
	row := s.db.QueryRowContext(ctx, query)
	if err := row.Scan(&counts[0], &counts[1], &counts[2], &counts[3], &counts[4], &counts[5], &counts[6], &counts[7]); err != nil {
		return "", fmt.Errorf("compute revision: %w", err)
	}

	h := fnv.New64a()
	fmt.Fprintf(h, "%v", counts)
	return fmt.Sprintf("%x", h.Sum64()), nil
}

// LoadActiveOrders inserts orders into the active collection
func (s *Store) LoadActiveOrders(ctx context.Context, orders []entities.Order) error {
	return s.insertOrders(ctx, orders, false)
}

// LoadArchivedOrders inserts orders into the archived collection
func (s *Store) LoadArchivedOrders(ctx context.Context, orders []entities.Order) error {
	return s.insertOrders(ctx, orders, true)
}

func (s *Store) insertOrders(ctx context.Context, orders []entities.Order, archived bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin order insert: %w", err)
	}
	defer tx.Rollback()

	for _, order := range orders {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (id, archived, status, raw_price, quantity, item_name,
				sales_tax, color, printer_id, assignee_id, shipped_at, created_at, archived_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(order.ID), boolToInt(archived), string(order.Status), order.RawPrice,
			order.Quantity, order.ItemName, order.SalesTax.String(), order.Color,
			order.PrinterID, order.AssigneeID,
			timeToText(order.ShippedAt), timeToText(order.CreatedAt), timeToText(order.ArchivedAt))
		if err != nil {
			return fmt.Errorf("insert order %s: %w", order.ID, err)
		}

		for _, item := range order.LineItems {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO line_items (order_id, name, raw_price, quantity)
				VALUES (?, ?, ?, ?)`,
				string(order.ID), item.Name, item.RawPrice, item.Quantity)
			if err != nil {
				return fmt.Errorf("insert line item for order %s: %w", order.ID, err)
			}
		}
	}

	return tx.Commit()
}

// ActiveOrders returns all orders in the active collection
func (s *Store) ActiveOrders(ctx context.Context) ([]entities.Order, error) {
	return s.queryOrders(ctx, false)
}

// ArchivedOrders returns all orders in the archived collection
func (s *Store) ArchivedOrders(ctx context.Context) ([]entities.Order, error) {
	return s.queryOrders(ctx, true)
}

func (s *Store) queryOrders(ctx context.Context, archived bool) ([]entities.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, status, raw_price, quantity, item_name, sales_tax, color,
			printer_id, assignee_id, shipped_at, created_at, archived_at
		FROM orders WHERE archived = ? ORDER BY id`, boolToInt(archived))
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		var (
			order                        entities.Order
			id, status, salesTax         string
			shippedAt, createdAt, archAt sql.NullString
		)
		if err := rows.Scan(&id, &status, &order.RawPrice, &order.Quantity, &order.ItemName,
			&salesTax, &order.Color, &order.PrinterID, &order.AssigneeID,
			&shippedAt, &createdAt, &archAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		order.ID = entities.OrderID(id)
		order.Status = entities.OrderStatus(status)
		// Stored tax values come from this store so a parse failure
		// degrades to zero the same way the normalizer does.
		order.SalesTax = services.NormalizePrice(salesTax)
		order.ShippedAt = textToTime(shippedAt)
		order.CreatedAt = textToTime(createdAt)
		order.ArchivedAt = textToTime(archAt)

		items, err := s.queryLineItems(ctx, id)
		if err != nil {
			return nil, err
		}
		order.LineItems = items
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (s *Store) queryLineItems(ctx context.Context, orderID string) ([]entities.LineItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, raw_price, quantity FROM line_items WHERE order_id = ? ORDER BY rowid`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query line items for %s: %w", orderID, err)
	}
	defer rows.Close()

	var items []entities.LineItem
	for rows.Next() {
		var item entities.LineItem
		if err := rows.Scan(&item.Name, &item.RawPrice, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan line item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// LoadProducts inserts catalog products. Product definitions are
// nested (printers, plates, parts) so they are stored as JSON
// documents keyed by name.
func (s *Store) LoadProducts(ctx context.Context, products []entities.Product) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin product insert: %w", err)
	}
	defer tx.Rollback()

	for _, product := range products {
		doc, err := json.Marshal(product)
		if err != nil {
			return fmt.Errorf("marshal product %s: %w", product.Name, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO products (name, doc) VALUES (?, ?)
			ON CONFLICT (name) DO UPDATE SET doc = excluded.doc`,
			product.Name, string(doc))
		if err != nil {
			return fmt.Errorf("insert product %s: %w", product.Name, err)
		}
	}

	return tx.Commit()
}

// Products returns all catalog products
func (s *Store) Products(ctx context.Context) ([]entities.Product, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT doc FROM products ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []entities.Product
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		var product entities.Product
		if err := json.Unmarshal([]byte(doc), &product); err != nil {
			return nil, fmt.Errorf("unmarshal product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// FindProduct resolves a name to a catalog product using the ranked
// matching strategy, or nil when nothing matches.
func (s *Store) FindProduct(ctx context.Context, name string) (*entities.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}

	best := services.MatchNone
	var found *entities.Product
	for i := range products {
		kind := services.MatchName(name, products[i].Name, products[i].Aliases)
		if kind > best {
			best = kind
			found = &products[i]
		}
	}
	return found, nil
}

// LoadFilaments inserts filament stock for one owner
func (s *Store) LoadFilaments(ctx context.Context, owner string, filaments []entities.FilamentStock) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin filament insert: %w", err)
	}
	defer tx.Rollback()

	for _, f := range filaments {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO filament_stock (owner, color, amount_grams, backup_rolls, reorder_at, supplier_url)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT (owner, color) DO UPDATE SET
				amount_grams = excluded.amount_grams,
				backup_rolls = excluded.backup_rolls,
				reorder_at = excluded.reorder_at,
				supplier_url = excluded.supplier_url`,
			owner, f.Color, f.AmountGrams, f.BackupRolls, f.ReorderAt, f.SupplierURL)
		if err != nil {
			return fmt.Errorf("insert filament %s/%s: %w", owner, f.Color, err)
		}
	}

	return tx.Commit()
}

// LoadParts inserts part stock for one owner
func (s *Store) LoadParts(ctx context.Context, owner string, parts []entities.PartStock) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin part insert: %w", err)
	}
	defer tx.Rollback()

	for _, p := range parts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO part_stock (owner, name, quantity, reorder_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (owner, name) DO UPDATE SET
				quantity = excluded.quantity,
				reorder_at = excluded.reorder_at`,
			owner, p.Name, p.Quantity, p.ReorderAt)
		if err != nil {
			return fmt.Errorf("insert part %s/%s: %w", owner, p.Name, err)
		}
	}

	return tx.Commit()
}

// LoadProductStock inserts finished-goods stock counts
func (s *Store) LoadProductStock(ctx context.Context, stock []entities.ProductStock) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin product stock insert: %w", err)
	}
	defer tx.Rollback()

	for _, p := range stock {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO product_stock (product, variant, count) VALUES (?, ?, ?)
			ON CONFLICT (product, variant) DO UPDATE SET count = excluded.count`,
			p.Product, p.Variant, p.Count)
		if err != nil {
			return fmt.Errorf("insert product stock %s: %w", p.Product, err)
		}
	}

	return tx.Commit()
}

// FilamentsByOwner returns all filament stock keyed by owner
func (s *Store) FilamentsByOwner(ctx context.Context) (map[string][]entities.FilamentStock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner, color, amount_grams, backup_rolls, reorder_at, supplier_url
		FROM filament_stock ORDER BY owner, color`)
	if err != nil {
		return nil, fmt.Errorf("query filament stock: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entities.FilamentStock)
	for rows.Next() {
		var owner string
		var f entities.FilamentStock
		if err := rows.Scan(&owner, &f.Color, &f.AmountGrams, &f.BackupRolls, &f.ReorderAt, &f.SupplierURL); err != nil {
			return nil, fmt.Errorf("scan filament stock: %w", err)
		}
		out[owner] = append(out[owner], f)
	}
	return out, rows.Err()
}

// PartsByOwner returns all part stock keyed by owner
func (s *Store) PartsByOwner(ctx context.Context) (map[string][]entities.PartStock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT owner, name, quantity, reorder_at FROM part_stock ORDER BY owner, name`)
	if err != nil {
		return nil, fmt.Errorf("query part stock: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entities.PartStock)
	for rows.Next() {
		var owner string
		var p entities.PartStock
		if err := rows.Scan(&owner, &p.Name, &p.Quantity, &p.ReorderAt); err != nil {
			return nil, fmt.Errorf("scan part stock: %w", err)
		}
		out[owner] = append(out[owner], p)
	}
	return out, rows.Err()
}

// ProductStock returns all finished-goods stock counts
func (s *Store) ProductStock(ctx context.Context) ([]entities.ProductStock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT product, variant, count FROM product_stock ORDER BY product, variant`)
	if err != nil {
		return nil, fmt.Errorf("query product stock: %w", err)
	}
	defer rows.Close()

	var out []entities.ProductStock
	for rows.Next() {
		var p entities.ProductStock
		if err := rows.Scan(&p.Product, &p.Variant, &p.Count); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// LoadUsage appends consumption records to the log
func (s *Store) LoadUsage(ctx context.Context, records []entities.UsageRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin usage insert: %w", err)
	}
	defer tx.Rollback()

	for _, record := range records {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO usage_history (color, grams, at) VALUES (?, ?, ?)`,
			record.Color, record.Grams, record.At.UTC().Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert usage record: %w", err)
		}
	}

	return tx.Commit()
}

// UsageSince returns records at or after the given time, oldest first
func (s *Store) UsageSince(ctx context.Context, since time.Time) ([]entities.UsageRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT color, grams, at FROM usage_history WHERE at >= ? ORDER BY at`,
		since.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("query usage history: %w", err)
	}
	defer rows.Close()

	var out []entities.UsageRecord
	for rows.Next() {
		var record entities.UsageRecord
		var at string
		if err := rows.Scan(&record.Color, &record.Grams, &at); err != nil {
			return nil, fmt.Errorf("scan usage record: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("parse usage timestamp %q: %w", at, err)
		}
		record.At = parsed
		out = append(out, record)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func timeToText(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func textToTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s.String)
	if err != nil {
		return nil
	}
	return &t
}
