// Package sqlite implements the domain repositories on an embedded SQLite
// database. Decimal quantities are stored as TEXT and parsed with
// shopspring/decimal so balance arithmetic stays exact; timestamps are stored
// as RFC 3339 text.
package sqlite

// Schema defines the SQL statements to create database tables.
// All statements are idempotent so Open can run them on every start.
const Schema = `
-- Running totals, one row per metal type (gold=1, silver=2).
-- Rows are seeded once at startup and never deleted.
CREATE TABLE IF NOT EXISTS metal_balances (
    id TEXT PRIMARY KEY,
    metal_type INTEGER NOT NULL UNIQUE,
    total_grams TEXT NOT NULL DEFAULT '0'
);

-- Ledger of balance mutations. delta_grams is positive for additions,
-- negative for sales. Rows are deletable; a delete reverses the delta.
CREATE TABLE IF NOT EXISTS metal_transactions (
    id TEXT PRIMARY KEY,
    metal_type INTEGER NOT NULL,
    delta_grams TEXT NOT NULL,
    price TEXT NULL,
    note TEXT NULL,
    at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_metal_transactions_type_at
    ON metal_transactions (metal_type, at DESC);

CREATE TABLE IF NOT EXISTS accessory_items (
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    description TEXT NOT NULL,
    price TEXT NOT NULL,
    added_at TEXT NOT NULL,
    sold_at TEXT NULL,
    sold_price TEXT NULL,
    sku TEXT NULL
);

CREATE INDEX IF NOT EXISTS idx_accessory_items_sold_at
    ON accessory_items (sold_at);

CREATE INDEX IF NOT EXISTS idx_accessory_items_type_sold_at
    ON accessory_items (type, sold_at);

CREATE TABLE IF NOT EXISTS check_items (
    id TEXT PRIMARY KEY,
    bank TEXT NOT NULL,
    number TEXT NOT NULL,
    payee TEXT NOT NULL,
    amount TEXT NOT NULL,
    issue_date TEXT NOT NULL,    -- YYYY-MM-DD
    due_date TEXT NOT NULL,      -- YYYY-MM-DD
    status TEXT NOT NULL,
    notes TEXT NULL,
    deposited_at TEXT NULL,
    cleared_at TEXT NULL
);

CREATE INDEX IF NOT EXISTS idx_check_items_due_date
    ON check_items (due_date);

CREATE INDEX IF NOT EXISTS idx_check_items_status
    ON check_items (status);

CREATE TABLE IF NOT EXISTS fixed_expenses (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    price TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fixed_expenses_name
    ON fixed_expenses (name);
`
