package repositories

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/avolkoff/calendar-api/internal/logger"
)

//go:embed schema.sql
var schema string

// ApplySchema creates the users, events and event_attendees tables
// if they do not exist yet. Statements are idempotent.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow(
		"apply schema",
		"error", err,
	)

	return err
}
