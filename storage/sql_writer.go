package storage

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"

	"bikeshare-explorer/models"
	"bikeshare-explorer/utils"
)

// Dialect captures the differences between the supported SQL databases.
type Dialect struct {
	Driver string
	schema string
	dollar bool
}

var (
	Postgres = Dialect{
		Driver: "postgres",
		dollar: true,
		schema: `
			CREATE TABLE IF NOT EXISTS session_summaries (
				id            SERIAL PRIMARY KEY,
				created_at    TIMESTAMPTZ      NOT NULL,
				city          VARCHAR(64)      NOT NULL,
				month         VARCHAR(16)      NOT NULL,
				day           VARCHAR(16)      NOT NULL,
				rows          INTEGER          NOT NULL,
				total_seconds DOUBLE PRECISION NOT NULL,
				mean_seconds  DOUBLE PRECISION,
				popular_hour  INTEGER,
				popular_start TEXT             NOT NULL DEFAULT '',
				popular_end   TEXT             NOT NULL DEFAULT ''
			)`,
	}

	MySQL = Dialect{
		Driver: "mysql",
		schema: "CREATE TABLE IF NOT EXISTS session_summaries (" +
			"id BIGINT AUTO_INCREMENT PRIMARY KEY, " +
			"created_at DATETIME NOT NULL, " +
			"city VARCHAR(64) NOT NULL, " +
			"month VARCHAR(16) NOT NULL, " +
			"day VARCHAR(16) NOT NULL, " +
			"`rows` INT NOT NULL, " +
			"total_seconds DOUBLE NOT NULL, " +
			"mean_seconds DOUBLE NULL, " +
			"popular_hour INT NULL, " +
			"popular_start VARCHAR(255) NOT NULL DEFAULT '', " +
			"popular_end VARCHAR(255) NOT NULL DEFAULT '')",
	}
)

// DialectFor returns the dialect for a driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case Postgres.Driver:
		return Postgres, nil
	case MySQL.Driver:
		return MySQL, nil
	}
	return Dialect{}, fmt.Errorf("sql: unsupported driver %q", driver)
}

// Placeholders renders n bind parameters for the dialect.
func (d Dialect) Placeholders(n int) string {
	ps := make([]string, n)
	for i := range ps {
		if d.dollar {
			ps[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ps[i] = "?"
		}
	}
	return strings.Join(ps, ",")
}

func (d Dialect) insertQuery() string {
	rows := "rows"
	if !d.dollar {
		rows = "`rows`"
	}
	return fmt.Sprintf(`INSERT INTO session_summaries
		(created_at, city, month, day, %s, total_seconds, mean_seconds, popular_hour, popular_start, popular_end)
		VALUES (%s)`, rows, d.Placeholders(10))
}

// SQLWriter persists session summaries to Postgres or MySQL.
type SQLWriter struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLWriter opens a connection, waits for the database with retry, runs
// the schema migration and returns a ready-to-use SQLWriter.
func NewSQLWriter(dialect Dialect, dsn string, retry *utils.RetryConfig) (*SQLWriter, error) {
	db, err := sql.Open(dialect.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql: open: %w", err)
	}

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	return newSQLWriter(db, dialect, retry)
}

// newSQLWriter pings db and creates the summary table. db is closed on error.
func newSQLWriter(db *sql.DB, dialect Dialect, retry *utils.RetryConfig) (*SQLWriter, error) {
	if err := retry.Do("archive-ping", db.Ping); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sql: %w", err)
	}

	sw := &SQLWriter{db: db, dialect: dialect}
	if err := sw.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sql: migrate: %w", err)
	}
	return sw, nil
}

func (sw *SQLWriter) migrate() error {
	_, err := sw.db.Exec(sw.dialect.schema)
	return err
}

// Write inserts one summary row.
func (sw *SQLWriter) Write(s models.SessionSummary) error {
	mean := sql.NullFloat64{Float64: s.MeanSeconds, Valid: !math.IsNaN(s.MeanSeconds)}

	var hour sql.NullInt64
	if s.PopularHour != nil {
		hour = sql.NullInt64{Int64: int64(*s.PopularHour), Valid: true}
	}

	_, err := sw.db.Exec(sw.dialect.insertQuery(),
		s.CreatedAt, s.City, s.Month, s.Day, s.Rows,
		s.TotalSeconds, mean, hour, s.PopularStart, s.PopularEnd)
	if err != nil {
		return fmt.Errorf("sql: insert summary: %w", err)
	}
	return nil
}

func (sw *SQLWriter) Close() error {
	return sw.db.Close()
}
