package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// schema creates every table the storefront needs. Statements are idempotent
// so EnsureSchema can run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS products (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	price       BIGINT NOT NULL DEFAULT 0,
	description TEXT NOT NULL DEFAULT '',
	images      JSONB NOT NULL DEFAULT '[]',
	colors      JSONB NOT NULL DEFAULT '[]',
	sizes       JSONB NOT NULL DEFAULT '[]',
	category    TEXT NOT NULL DEFAULT '',
	tags        JSONB NOT NULL DEFAULT '[]',
	stock       INTEGER NOT NULL DEFAULT 0,
	rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
	reviews     INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vehicles (
	id            BIGSERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	model         TEXT NOT NULL DEFAULT '',
	year          TEXT NOT NULL DEFAULT '',
	type          TEXT NOT NULL DEFAULT '',
	transmission  TEXT NOT NULL DEFAULT '',
	condition     TEXT NOT NULL DEFAULT '',
	engine        TEXT NOT NULL DEFAULT '',
	trim          TEXT NOT NULL DEFAULT '',
	price         BIGINT NOT NULL DEFAULT 0,
	papers        TEXT NOT NULL DEFAULT '',
	exterior      TEXT NOT NULL DEFAULT '',
	interior      TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	images        JSONB NOT NULL DEFAULT '[]',
	video_url     TEXT NOT NULL DEFAULT '',
	external_link TEXT NOT NULL DEFAULT '',
	specs         JSONB NOT NULL DEFAULT '[]',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS cart_snapshots (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS site_settings (
	key        TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vehicle_likes (
	vehicle_id BIGINT PRIMARY KEY,
	likes      BIGINT NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS conversations (
	id           TEXT PRIMARY KEY,
	user_name    TEXT NOT NULL DEFAULT '',
	unread_count INTEGER NOT NULL DEFAULT 0,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
	sender          TEXT NOT NULL,
	body            TEXT NOT NULL,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages (conversation_id, created_at);
`

// EnsureSchema bootstraps the database schema
func EnsureSchema(ctx context.Context, database *sql.DB) error {
	if _, err := database.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}
	log.Printf("✓ Database schema ensured")
	return nil
}
