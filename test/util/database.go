// Package util provisions isolated PostgreSQL schemas for tests. One
// database is shared by every test in the binary, either the CI-provided
// instance or a testcontainer started on first use; each test works inside a
// private schema addressed through search_path.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// TestSchema is one isolated schema inside the shared test database.
type TestSchema struct {
	// Name is the generated schema name, safe as a PostgreSQL identifier.
	Name string
	// ConnStr carries search_path=Name, so every connection opened from it
	// resolves unqualified table names inside the schema.
	ConnStr string
}

// NewTestSchema creates a uniquely named schema in the shared database and
// schedules it for removal when the test finishes. Cleanups registered after
// this one (connection pools, clients) run first, so the drop always sees a
// quiesced schema.
func NewTestSchema(t *testing.T) *TestSchema {
	t.Helper()
	ctx := context.Background()

	base := baseConnString(t)
	name := schemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	defer func() { _ = admin.Close() }()

	_, err = admin.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA %s", name))
	require.NoError(t, err)
	t.Logf("created test schema %s", name)

	t.Cleanup(func() {
		drop, err := stdsql.Open("pgx", base)
		if err != nil {
			t.Logf("schema %s not dropped: %v", name, err)
			return
		}
		defer func() { _ = drop.Close() }()
		if _, err := drop.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", name)); err != nil {
			t.Logf("schema %s not dropped: %v", name, err)
		}
	})

	return &TestSchema{Name: name, ConnStr: withSearchPath(base, name)}
}

// OpenPool opens a connection pool bound to the schema, sized like the
// production defaults, and closes it when the test finishes.
func (s *TestSchema) OpenPool(t *testing.T) *stdsql.DB {
	t.Helper()

	db, err := stdsql.Open("pgx", s.ConnStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// baseConnString returns the DSN of the shared database without any
// search_path. In CI it comes from CI_DATABASE_URL; locally the first caller
// starts one PostgreSQL container for the whole test binary, reaped when the
// process exits.
func baseConnString(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		t.Log("using external PostgreSQL from CI_DATABASE_URL")
		return url
	}

	shared.once.Do(func() {
		ctx := context.Background()
		t.Log("starting shared PostgreSQL testcontainer")

		container, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		if err != nil {
			shared.err = fmt.Errorf("failed to start postgres container: %w", err)
			return
		}

		shared.connStr, shared.err = container.ConnectionString(ctx, "sslmode=disable")
	})

	require.NoError(t, shared.err, "shared test database unavailable")
	return shared.connStr
}

// schemaName derives a PostgreSQL-safe schema name from the test name plus a
// random suffix, truncated well under the 63 byte identifier limit.
func schemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// withSearchPath appends search_path to a connection string, respecting any
// parameters already present.
func withSearchPath(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}
