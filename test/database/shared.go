package database

import (
	"testing"

	"github.com/examkit/proctor/pkg/database"
	"github.com/examkit/proctor/test/util"
)

// SharedTestDB hands out independent database clients that all target one
// migrated schema, the way separate service pods share one PostgreSQL
// database. Tests use it when the behavior under test needs real cross-pool
// contention, such as the open-session unique index under concurrent writers.
type SharedTestDB struct {
	schema *util.TestSchema
}

// NewSharedTestDB provisions a schema and migrates it once. Clients created
// through NewClient skip migration and only open their own pool.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	schema := util.NewTestSchema(t)
	client, drv := openClient(t, schema)
	migrateSchema(t, client, drv)
	return &SharedTestDB{schema: schema}
}

// NewClient opens an independent connection pool on the shared schema.
// Closing one client does not affect the others; every pool closes via
// t.Cleanup before the schema is dropped.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	client, _ := openClient(t, s.schema)
	return client
}
