// Package database wires the schema-per-test harness to the application's
// database client, so service tests get a fully migrated *database.Client
// with one call.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/pkg/database"
	"github.com/examkit/proctor/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a *database.Client on a schema of its own, with ent
// auto-migration and the partial unique indexes applied. The pool and the
// schema are removed via t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	client, drv := openClient(t, util.NewTestSchema(t))
	migrateSchema(t, client, drv)
	return client
}

// openClient builds a *database.Client over its own connection pool on the
// schema. The pool closes via t.Cleanup before the schema is dropped.
func openClient(t *testing.T, schema *util.TestSchema) (*database.Client, *entsql.Driver) {
	t.Helper()

	db := schema.OpenPool(t)
	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))
	return database.NewClientFromEnt(entClient, db), drv
}

// migrateSchema applies ent auto-migration plus the partial unique indexes
// the ent schema definitions cannot express. Production applies the embedded
// SQL migrations instead.
func migrateSchema(t *testing.T, client *database.Client, drv *entsql.Driver) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, client.Schema.Create(ctx))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
}
