package helper

import (
	"net/url"
	"testing"

	"forest/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "localhost"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "forest"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "forest"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	parsed, err := url.Parse(connectionString(cfg))
	require.NoError(t, err)

	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "localhost:5432", parsed.Host)
	assert.Equal(t, "/test_forest", parsed.Path)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestAutoMigrateDisabled(t *testing.T) {
	assert.NoError(t, AutoMigrate(&config.Config{}))
}
