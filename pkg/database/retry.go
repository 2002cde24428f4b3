package database

import (
	"context"
	"database/sql/driver"
	"math/rand"
	"strings"
	"time"
)

const (
	retryBaseDelay = 50 * time.Millisecond
	retryMaxDelay  = 2 * time.Second
)

// sessionConnector prepares every new connection with a fixed list of
// statements and wraps it so that SQLITE_BUSY errors are retried.
type sessionConnector struct {
	connector  driver.Connector
	maxRetries int
	pragmas    []string
}

func newSessionConnector(connector driver.Connector, maxRetries int, pragmas ...string) *sessionConnector {
	return &sessionConnector{connector: connector, maxRetries: maxRetries, pragmas: pragmas}
}

func (sc *sessionConnector) Connect(ctx context.Context) (driver.Conn, error) {
	conn, err := sc.connector.Connect(ctx)
	if err != nil {
		return nil, err
	}
	for _, stmt := range sc.pragmas {
		if err := execOnConn(ctx, conn, stmt); err != nil {
			conn.Close()
			return nil, err
		}
	}
	return &retryConn{conn: conn, maxRetries: sc.maxRetries}, nil
}

func (sc *sessionConnector) Driver() driver.Driver {
	return sc.connector.Driver()
}

func execOnConn(ctx context.Context, conn driver.Conn, query string) error {
	if execer, ok := conn.(driver.ExecerContext); ok {
		_, err := execer.ExecContext(ctx, query, nil)
		return err
	}
	stmt, err := conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()
	_, err = stmt.Exec(nil) //nolint:staticcheck // deprecated but the only option without ExecerContext
	return err
}

// isBusyError reports whether err is a SQLite BUSY or LOCKED error. Both
// mattn/go-sqlite3 and modernc.org/sqlite phrase these the same way.
func isBusyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"database is locked",
		"database table is locked",
		"SQLITE_BUSY",
		"SQLITE_LOCKED",
		"(5)",
		"(6)",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// retryWithBackoff runs fn until it succeeds, fails with a non-busy error, or
// maxRetries retries have been spent. Delays grow exponentially with jitter.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	_, err := retryValue(ctx, maxRetries, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

func retryValue[T any](ctx context.Context, maxRetries int, fn func() (T, error)) (T, error) {
	var (
		v   T
		err error
	)
	for attempt := 0; ; attempt++ {
		v, err = fn()
		if err == nil || !isBusyError(err) || attempt >= maxRetries {
			return v, err
		}

		delay := retryBaseDelay << attempt
		delay += time.Duration(rand.Int63n(int64(delay/4) + 1))
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}

		select {
		case <-ctx.Done():
			return v, ctx.Err()
		case <-time.After(delay):
		}
	}
}

// retryConn retries the entry points where SQLite reports lock contention:
// starting transactions and running statements.
type retryConn struct {
	conn       driver.Conn
	maxRetries int
}

func (c *retryConn) Prepare(query string) (driver.Stmt, error) {
	return c.PrepareContext(context.Background(), query)
}

func (c *retryConn) PrepareContext(ctx context.Context, query string) (driver.Stmt, error) {
	return retryValue(ctx, c.maxRetries, func() (driver.Stmt, error) {
		if p, ok := c.conn.(driver.ConnPrepareContext); ok {
			return p.PrepareContext(ctx, query)
		}
		return c.conn.Prepare(query)
	})
}

func (c *retryConn) Close() error {
	return c.conn.Close()
}

func (c *retryConn) Begin() (driver.Tx, error) {
	return c.BeginTx(context.Background(), driver.TxOptions{})
}

func (c *retryConn) BeginTx(ctx context.Context, opts driver.TxOptions) (driver.Tx, error) {
	return retryValue(ctx, c.maxRetries, func() (driver.Tx, error) {
		if b, ok := c.conn.(driver.ConnBeginTx); ok {
			return b.BeginTx(ctx, opts)
		}
		return c.conn.Begin() //nolint:staticcheck // fallback for drivers without BeginTx
	})
}

func (c *retryConn) ExecContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Result, error) {
	execer, ok := c.conn.(driver.ExecerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	return retryValue(ctx, c.maxRetries, func() (driver.Result, error) {
		return execer.ExecContext(ctx, query, args)
	})
}

func (c *retryConn) QueryContext(ctx context.Context, query string, args []driver.NamedValue) (driver.Rows, error) {
	queryer, ok := c.conn.(driver.QueryerContext)
	if !ok {
		return nil, driver.ErrSkip
	}
	return retryValue(ctx, c.maxRetries, func() (driver.Rows, error) {
		return queryer.QueryContext(ctx, query, args)
	})
}

func (c *retryConn) Ping(ctx context.Context) error {
	if pinger, ok := c.conn.(driver.Pinger); ok {
		return pinger.Ping(ctx)
	}
	return nil
}

func (c *retryConn) ResetSession(ctx context.Context) error {
	if resetter, ok := c.conn.(driver.SessionResetter); ok {
		return resetter.ResetSession(ctx)
	}
	return nil
}

func (c *retryConn) IsValid() bool {
	if validator, ok := c.conn.(driver.Validator); ok {
		return validator.IsValid()
	}
	return true
}

// CheckNamedValue lets the underlying driver convert argument types it
// supports natively.
func (c *retryConn) CheckNamedValue(nv *driver.NamedValue) error {
	if checker, ok := c.conn.(driver.NamedValueChecker); ok {
		return checker.CheckNamedValue(nv)
	}
	return driver.ErrSkip
}
