package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"time-tracker/api/core"
)

type dialect string

const (
	dialectPostgres dialect = "postgres"
	dialectSQLite   dialect = "sqlite"
)

func init() {
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

type DB struct {
	log     *slog.Logger
	conn    *sqlx.DB
	dialect dialect
}

// New connects to address. postgres:// and postgresql:// use pgx;
// sqlite://<path>, sqlite://:memory: and file: use the pure-Go sqlite driver.
func New(log *slog.Logger, address string) (*DB, error) {
	driverName, dsn, d, err := parseAddress(address)
	if err != nil {
		return nil, err
	}

	conn, err := sqlx.Connect(driverName, dsn)
	if err != nil {
		log.Error("connection problem", "driver", driverName, "error", err)
		return nil, err
	}

	if d == dialectSQLite {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
	}

	return &DB{log: log, conn: conn, dialect: d}, nil
}

func parseAddress(address string) (driverName, dsn string, d dialect, err error) {
	switch {
	case strings.HasPrefix(address, "postgres://"), strings.HasPrefix(address, "postgresql://"):
		return "pgx", address, dialectPostgres, nil
	case strings.HasPrefix(address, "sqlite://"):
		dsn = strings.TrimPrefix(address, "sqlite://")
	case strings.HasPrefix(address, "file:"):
		dsn = address
	default:
		return "", "", "", fmt.Errorf("unsupported db address %q: want postgres://, sqlite:// or file:", address)
	}

	if dsn == "" {
		return "", "", "", fmt.Errorf("empty sqlite path in %q", address)
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return "sqlite", dsn + sep + "_time_format=sqlite", dialectSQLite, nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) Ping(ctx context.Context) error {
	if err := db.conn.PingContext(ctx); err != nil {
		return mapErr("ping", err)
	}
	return nil
}

const entryColumns = `id, category, minutes, COALESCE(description, '') AS description, timestamp`

func (db *DB) CreateEntry(ctx context.Context, e core.Entry) (core.Entry, error) {
	q := db.conn.Rebind(`
		INSERT INTO time_entry (category, minutes, description, timestamp)
		VALUES (?, ?, NULLIF(?, ''), ?)
		RETURNING id;
	`)

	e.Timestamp = e.Timestamp.UTC()
	if err := db.conn.QueryRowxContext(ctx, q, e.Category, e.Minutes, e.Description, e.Timestamp).Scan(&e.ID); err != nil {
		return core.Entry{}, mapErr("insert entry", err)
	}
	return e, nil
}

func (db *DB) GetEntry(ctx context.Context, id int64) (core.Entry, error) {
	q := db.conn.Rebind(`SELECT ` + entryColumns + ` FROM time_entry WHERE id = ?`)

	var e core.Entry
	if err := db.conn.GetContext(ctx, &e, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return core.Entry{}, core.ErrNotFound
		}
		return core.Entry{}, mapErr("get entry", err)
	}
	return e, nil
}

func (db *DB) ListEntries(ctx context.Context, f core.ListEntriesFilter) ([]core.Entry, error) {
	var (
		sb   strings.Builder
		args []any
	)

	sb.WriteString(`SELECT ` + entryColumns + ` FROM time_entry`)

	if f.Search != "" {
		pattern := likePattern(f.Search)
		sb.WriteString(` WHERE LOWER(category) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\'`)
		args = append(args, pattern, pattern)
	}

	sb.WriteString(` ORDER BY timestamp DESC, id DESC`)

	out := []core.Entry{}
	if err := db.conn.SelectContext(ctx, &out, db.conn.Rebind(sb.String()), args...); err != nil {
		return nil, mapErr("list entries", err)
	}
	return out, nil
}

func (db *DB) UpdateEntry(ctx context.Context, id int64, u core.EntryUpdate) (core.Entry, error) {
	q := db.conn.Rebind(`
		UPDATE time_entry
		SET category = ?,
		    minutes = ?,
		    description = NULLIF(?, '')
		WHERE id = ?;
	`)

	res, err := db.conn.ExecContext(ctx, q, u.Category, u.Minutes, u.Description, id)
	if err != nil {
		return core.Entry{}, mapErr("update entry", err)
	}
	aff, _ := res.RowsAffected()
	if aff == 0 {
		return core.Entry{}, core.ErrNotFound
	}
	return db.GetEntry(ctx, id)
}

func (db *DB) DeleteAllEntries(ctx context.Context) (int64, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM time_entry`)
	if err != nil {
		return 0, mapErr("delete entries", err)
	}
	aff, err := res.RowsAffected()
	if err != nil {
		return 0, mapErr("delete entries", err)
	}
	return aff, nil
}

func (db *DB) SumMinutesByCategory(ctx context.Context, since time.Time) (map[string]int64, error) {
	q := db.conn.Rebind(`
		SELECT category, COALESCE(SUM(minutes), 0) AS total
		FROM time_entry
		WHERE timestamp >= ?
		GROUP BY category;
	`)

	var rows []struct {
		Category string `db:"category"`
		Total    int64  `db:"total"`
	}
	if err := db.conn.SelectContext(ctx, &rows, q, since.UTC()); err != nil {
		return nil, mapErr("sum minutes", err)
	}

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Category] = r.Total
	}
	return out, nil
}

// likePattern lowercases q and escapes LIKE wildcards so q matches literally.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.ToLower(q)) + "%"
}

func mapErr(op string, err error) error {
	switch {
	case isBadInput(err):
		return fmt.Errorf("%s: %w: %v", op, core.ErrBadArguments, err)
	case isUnavailable(err):
		return fmt.Errorf("%s: %w: %v", op, core.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// pg helpers

func isBadInput(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case "22001", // string_data_right_truncation
		"22003", // numeric_value_out_of_range
		"22P02", // invalid_text_representation
		"23502", // not_null_violation
		"23514": // check_violation
		return true
	}
	return false
}

func isUnavailable(err error) bool {
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr) ||
		pgconn.Timeout(err) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}
