package catalog

import (
	"context"
	"fmt"
	"time"

	"core/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresCatalog reads the product catalog from a PostgreSQL database.
type PostgresCatalog struct {
	db *sqlx.DB
}

// NewPostgresCatalog connects to PostgreSQL and verifies the connection.
func NewPostgresCatalog(dsn string, maxConn, maxIdleConn int) (*PostgresCatalog, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCatalog{db: db}, nil
}

// Close closes the database connection
func (c *PostgresCatalog) Close() error {
	return c.db.Close()
}

// Products reads the full catalog. Row order is the catalog order seen by
// the matcher's stable sort, so it is fixed by the query.
func (c *PostgresCatalog) Products(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT
			name, type, installation, price_gbp, filtration_type,
			capacity_liters, remineralization, removes_chlorine, removes_lead,
			removes_fluoride, removes_bacteria, filter_lifespan_months,
			maintenance_cost_yearly_gbp, warranty_years, ecofriendly_rating
		FROM products
		ORDER BY id
	`
	var products []model.Product
	if err := c.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
