package repos

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib" // registers driver "pgx"
	_ "modernc.org/sqlite"             // registers driver "sqlite"
)

// OpenDB opens the configured database and bootstraps the schema.
// driver is "postgres" (pgx) or "sqlite" (pure-Go, also used by tests).
// Queries throughout this package are written with ? placeholders and passed
// through Rebind so the same SQL runs on both drivers.
func OpenDB(driver, dsn string) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error
	switch driver {
	case "postgres":
		db, err = sqlx.Open("pgx", dsn)
	case "sqlite":
		db, err = sqlx.Open("sqlite", dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := schemaSQLite
	if db.DriverName() == "pgx" {
		schema = schemaPostgres
	}
	_, err := db.Exec(schema)
	return err
}

// Storefront ids come from Shopify (insert-only; a re-delivered id conflicts
// on the primary key). Cart ids are opaque tokens. The payload column always
// holds the complete inbound body. No FK from orders.customer_id to
// customers.id: events arrive in any order.

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS orders(
  id INTEGER PRIMARY KEY,
  order_number INTEGER,
  total_price NUMERIC,
  currency TEXT,
  financial_status TEXT,
  created_at TEXT,
  customer_id INTEGER,
  payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);

CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  title TEXT,
  product_type TEXT,
  vendor TEXT,
  created_at TEXT,
  payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS customers(
  id INTEGER PRIMARY KEY,
  first_name TEXT,
  last_name TEXT,
  email TEXT,
  accepts_marketing INTEGER,
  created_at TEXT,
  password_hash TEXT,
  payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS checkouts(
  id INTEGER PRIMARY KEY,
  cart_token TEXT,
  customer_id INTEGER,
  total_price NUMERIC,
  created_at TEXT,
  payload TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  cart_token TEXT,
  customer_id INTEGER,
  payload TEXT NOT NULL,
  received_at TEXT DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS events(
  id TEXT PRIMARY KEY,
  event_type TEXT NOT NULL CHECK (event_type IN ('order_created','checkout_started','cart_created')),
  entity_id TEXT NOT NULL,
  payload TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS orders(
  id BIGINT PRIMARY KEY,
  order_number BIGINT,
  total_price NUMERIC(12,2),
  currency VARCHAR(10),
  financial_status VARCHAR(50),
  created_at TIMESTAMPTZ,
  customer_id BIGINT,
  payload JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id);

CREATE TABLE IF NOT EXISTS products(
  id BIGINT PRIMARY KEY,
  title VARCHAR(255),
  product_type VARCHAR(255),
  vendor VARCHAR(255),
  created_at TIMESTAMPTZ,
  payload JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS customers(
  id BIGINT PRIMARY KEY,
  first_name VARCHAR(255),
  last_name VARCHAR(255),
  email VARCHAR(255),
  accepts_marketing BOOLEAN,
  created_at TIMESTAMPTZ,
  password_hash VARCHAR(255),
  payload JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS checkouts(
  id BIGINT PRIMARY KEY,
  cart_token TEXT,
  customer_id BIGINT,
  total_price NUMERIC(12,2),
  created_at TIMESTAMPTZ,
  payload JSONB NOT NULL
);

CREATE TABLE IF NOT EXISTS carts(
  id TEXT PRIMARY KEY,
  cart_token TEXT,
  customer_id BIGINT,
  payload JSONB NOT NULL,
  received_at TIMESTAMPTZ DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events(
  id TEXT PRIMARY KEY,
  event_type TEXT NOT NULL CHECK (event_type IN ('order_created','checkout_started','cart_created')),
  entity_id TEXT NOT NULL,
  payload JSONB NOT NULL,
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_events_type ON events(event_type);

CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMPTZ DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`
