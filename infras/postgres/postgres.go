package postgres

//nolint:revive
import (
	"net"
	"net/url"
	"time"

	"forest/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

// Connection holds the read replica and the primary. Writes and transactions go to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint describes one postgres server.
type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
	Timezone string
}

// DSN renders the endpoint as a lib/pq URL with escaped credentials.
func (e Endpoint) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(e.Username, e.Password),
		Host:   net.JoinHostPort(e.Host, e.Port),
		Path:   e.Database,
	}

	query := url.Values{}
	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String()
}

// Endpoints returns the read and write endpoints, with the database prefix applied.
func Endpoints(cfg *config.Config) (read, write Endpoint) {
	pg := cfg.DB.Postgres

	read = Endpoint{
		Name:     "read",
		Host:     pg.Read.Host,
		Port:     pg.Read.Port,
		Username: pg.Read.Username,
		Password: pg.Read.Password,
		Database: pg.Prefix + pg.Read.Name,
		SSLMode:  pg.Read.SSLMode,
		Timezone: pg.Read.Timezone,
	}

	write = Endpoint{
		Name:     "write",
		Host:     pg.Write.Host,
		Port:     pg.Write.Port,
		Username: pg.Write.Username,
		Password: pg.Write.Password,
		Database: pg.Prefix + pg.Write.Name,
		SSLMode:  pg.Write.SSLMode,
		Timezone: pg.Write.Timezone,
	}

	return read, write
}

// New opens both connections and exits the process when either stays unreachable after the configured retries.
func New(cfg *config.Config) *Connection {
	read, write := Endpoints(cfg)
	retries, wait := cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second

	conn := &Connection{}

	for _, target := range []struct {
		endpoint Endpoint
		db       **sqlx.DB
	}{{read, &conn.Read}, {write, &conn.Write}} {
		db, err := Connect(target.endpoint, retries, wait)
		if err != nil {
			log.Fatal().Err(err).Str("name", target.endpoint.Name).Msg("Failed connecting to database")
		}

		*target.db = db
	}

	return conn
}

// Connect dials endpoint up to retries times, sleeping wait between attempts.
func Connect(endpoint Endpoint, retries int, wait time.Duration) (*sqlx.DB, error) {
	logger := log.With().
		Str("name", endpoint.Name).
		Str("host", endpoint.Host).
		Str("port", endpoint.Port).
		Str("dbName", endpoint.Database).
		Logger()

	var err error

	for attempt := 1; attempt <= max(retries, 1); attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect("postgres", endpoint.DSN())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			logger.Info().Msg("Connected to database")

			return db, nil
		}

		logger.Error().Err(err).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	return nil, errors.Wrapf(err, "connect %s database", endpoint.Name)
}

// Close closes both pools.
func (c *Connection) Close() error {
	var errs []error

	for _, db := range []*sqlx.DB{c.Read, c.Write} {
		if db == nil {
			continue
		}

		if err := db.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Errorf("close database: %v", errs)
	}

	return nil
}
