package postgres

import (
	"context"
	"fmt"
)

// Las fechas calendario (expenses.date, sales.date, returns.date) se guardan
// como TEXT "YYYY-MM-DD": la comparación lexicográfica coincide con la
// cronológica y evita sorpresas de zona horaria.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS categories (
	id         TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	name       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL,
	UNIQUE (kind, name)
);

CREATE TABLE IF NOT EXISTS units (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL UNIQUE,
	short      TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	type        TEXT NOT NULL,
	category_id TEXT NOT NULL REFERENCES categories(id),
	unit_id     TEXT NOT NULL REFERENCES units(id),
	price       BIGINT,
	sale_price  BIGINT,
	active      BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
	id             TEXT PRIMARY KEY,
	date           TEXT NOT NULL,
	category_id    TEXT NOT NULL REFERENCES categories(id),
	amount         BIGINT NOT NULL,
	payment_method TEXT NOT NULL,
	note           TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date);

CREATE TABLE IF NOT EXISTS orders (
	id            TEXT PRIMARY KEY,
	customer_name TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	channel       TEXT NOT NULL,
	source        TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	total         BIGINT NOT NULL,
	note          TEXT NOT NULL DEFAULT '',
	coupon_code   TEXT NOT NULL DEFAULT '',
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL,
	status        TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sales (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	product_id TEXT NOT NULL REFERENCES products(id),
	quantity   BIGINT NOT NULL,
	price      BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(date);

CREATE TABLE IF NOT EXISTS returns (
	id     TEXT PRIMARY KEY,
	date   TEXT NOT NULL,
	status TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS return_items (
	return_id  TEXT NOT NULL REFERENCES returns(id) ON DELETE CASCADE,
	product_id TEXT NOT NULL,
	quantity   BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS branch_stocks (
	id         TEXT PRIMARY KEY,
	branch_id  TEXT NOT NULL,
	product_id TEXT NOT NULL REFERENCES products(id),
	quantity   BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS coupons (
	id         TEXT PRIMARY KEY,
	code       TEXT NOT NULL UNIQUE,
	discount   BIGINT NOT NULL,
	used_count BIGINT NOT NULL DEFAULT 0,
	active     BOOLEAN NOT NULL DEFAULT TRUE
);

CREATE TABLE IF NOT EXISTS workers (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS branches (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS shops (
	id   TEXT PRIMARY KEY,
	name TEXT NOT NULL
);
`

// Migrate aplica el esquema. Todas las sentencias son idempotentes
// (IF NOT EXISTS), así que es seguro ejecutarlo en cada arranque del seeder.
func Migrate(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("aplicar esquema: %w", err)
	}
	return nil
}
