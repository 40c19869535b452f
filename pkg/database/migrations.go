package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes adds the partial unique indexes that ent's
// schema DSL cannot express. The statements are idempotent and mirror
// 20260301000001_init_schema.up.sql, so schemas provisioned by golang-migrate
// and schemas provisioned by ent's Schema.Create in tests end up identical.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Only one open session may exist per (exam, participant). Ended sessions
	// keep their rows, so uniqueness is scoped to ended_at IS NULL. The
	// session service relies on this index to settle concurrent starts.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS promptsession_exam_id_participant_id_open
		ON prompt_sessions (exam_id, participant_id)
		WHERE ended_at IS NULL`)
	if err != nil {
		return fmt.Errorf("failed to create open-session index: %w", err)
	}

	return nil
}
