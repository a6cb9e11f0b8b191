package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"choreboard/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection holds the read replica and the primary.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// Ping checks both pools.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("ping read database: %w", err)
	}

	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("ping write database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	return errors.Join(c.Read.Close(), c.Write.Close())
}

type endpoint struct {
	name, username, password, host, port, dbName, sslMode string
}

func dbName(config config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(endpoint{
		name:     "write",
		username: write.Username,
		password: write.Password,
		host:     write.Host,
		port:     write.Port,
		dbName:   dbName(config, write.Name),
		sslMode:  write.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(endpoint{
		name:     "read",
		username: read.Username,
		password: read.Password,
		host:     read.Host,
		port:     read.Port,
		dbName:   dbName(config, read.Name),
		sslMode:  read.SSLMode,
	}, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime)
}

// DSN renders the connection URL for e.
func (e endpoint) DSN() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(e.username, e.password),
		Host:   net.JoinHostPort(e.host, e.port),
		Path:   e.dbName,
	}

	if e.sslMode != "" {
		dsn.RawQuery = url.Values{"sslmode": {e.sslMode}}.Encode()
	}

	return dsn.String()
}

// CreatePostgresConnection connects with a constant backoff, giving up after maxRetry attempts.
func CreatePostgresConnection(e endpoint, maxRetry, waitTime int) *sqlx.DB {
	backoff := retry.WithMaxRetries(uint64(max(maxRetry-1, 0)), retry.NewConstant(time.Duration(max(waitTime, 1))*time.Second))

	attempt := 0

	db, err := retry.DoValue(context.Background(), backoff, func(ctx context.Context) (*sqlx.DB, error) {
		attempt++

		sqlDB, err := sqlx.ConnectContext(ctx, "postgres", e.DSN())
		if err != nil {
			log.Error().
				Err(err).
				Str("name", e.name).
				Str("host", e.host).
				Str("dbName", e.dbName).
				Int("attempt", attempt).
				Msg("Failed connecting to database, retrying")

			return nil, retry.RetryableError(err)
		}

		return sqlDB, nil
	})
	if err != nil {
		log.Fatal().Err(err).Str("name", e.name).Msg("Giving up connecting to database")

		return nil
	}

	db.SetMaxIdleConns(postgresMaxIdleConnection)
	db.SetMaxOpenConns(postgresMaxOpenConnection)
	db.SetConnMaxLifetime(postgresConnMaxLifetime)

	log.Info().
		Str("name", e.name).
		Str("host", e.host).
		Str("port", e.port).
		Str("dbName", e.dbName).
		Msg("Connected to database")

	return db
}
