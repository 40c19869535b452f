package database

import (
	"context"
	stdsql "database/sql"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/examkit/proctor/ent"
	"github.com/examkit/proctor/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client over an isolated schema from the shared test
// database. test/database.NewTestClient does the same for service tests, but
// importing it from here would cycle, so the few lines are repeated.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	db := util.NewTestSchema(t).OpenPool(t)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := NewClientFromEnt(ent.NewClient(ent.Driver(drv)), db)

	require.NoError(t, client.Schema.Create(ctx))
	require.NoError(t, CreatePartialUniqueIndexes(ctx, drv))
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestOpenSessionUniqueness(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	first, err := client.PromptSession.Create().
		SetExamID(7).
		SetParticipantID(42).
		SetSpecID(10).
		Save(ctx)
	require.NoError(t, err)

	// Second open session for the same (exam, participant) must be rejected
	// by the partial unique index.
	_, err = client.PromptSession.Create().
		SetExamID(7).
		SetParticipantID(42).
		SetSpecID(10).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Closing the first session frees the slot.
	_, err = first.Update().SetEndedAt(time.Now()).Save(ctx)
	require.NoError(t, err)

	_, err = client.PromptSession.Create().
		SetExamID(7).
		SetParticipantID(42).
		SetSpecID(10).
		Save(ctx)
	require.NoError(t, err)

	// A different participant never contends.
	_, err = client.PromptSession.Create().
		SetExamID(7).
		SetParticipantID(43).
		SetSpecID(10).
		Save(ctx)
	require.NoError(t, err)
}

func TestTurnRoleUniqueness(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	session, err := client.PromptSession.Create().
		SetExamID(1).
		SetParticipantID(1).
		SetSpecID(10).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PromptMessage.Create().
		SetSessionID(session.ID).
		SetTurn(1).
		SetRole("user").
		SetContent("hello").
		Save(ctx)
	require.NoError(t, err)

	// Same (session, turn, role) must conflict.
	_, err = client.PromptMessage.Create().
		SetSessionID(session.ID).
		SetTurn(1).
		SetRole("user").
		SetContent("duplicate").
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Same turn with the other role is fine.
	_, err = client.PromptMessage.Create().
		SetSessionID(session.ID).
		SetTurn(1).
		SetRole("ai").
		SetContent("hi there").
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg Config) {
				assert.Empty(t, cfg.URL)
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "proctor", cfg.User)
				assert.Equal(t, "proctor", cfg.Database)
				assert.Equal(t, 10, cfg.MaxOpenConns)
				assert.Equal(t, 5, cfg.MaxIdleConns)
				assert.Contains(t, cfg.DSN(), "host=localhost")
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Contains(t, cfg.DSN(), "sslmode=require")
			},
		},
		{
			name: "DATABASE_URL wins over discrete fields",
			envVars: map[string]string{
				"DATABASE_URL": "postgres://app:pw@db:5432/exams?sslmode=require",
				"DB_HOST":      "ignored.example.com",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "postgres://app:pw@db:5432/exams?sslmode=require", cfg.DSN())
			},
		},
		{
			name:        "invalid DB_PORT",
			envVars:     map[string]string{"DB_PORT": "invalid"},
			errContains: "invalid DB_PORT",
		},
		{
			name:        "invalid DB_MAX_OPEN_CONNS",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "many"},
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestClientHealth_ReportsPoolPressure(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.Equal(t, "healthy", health.Status)
	assert.Less(t, health.ResponseTime, time.Second, "local ping should answer well under a second")
	assert.GreaterOrEqual(t, health.OpenConnections, health.InUse)
	assert.Equal(t, 10, health.MaxOpenConns)
}

func TestClientHealth_UnreachableDatabase(t *testing.T) {
	db, err := stdsql.Open("pgx", "host=127.0.0.1 port=1 user=none dbname=none sslmode=disable")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	bad := &Client{db: db}

	health, err := bad.Health(context.Background())
	require.Error(t, err)
	require.NotNil(t, health)
	assert.Equal(t, "unhealthy", health.Status)
	assert.Zero(t, health.OpenConnections)
}
