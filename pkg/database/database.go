package database

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/fyyurapp/fyyur/pkg/config"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type key int

const ctxKey key = 0

// WithLogging enables SQL logging for queries run with the returned context
// when the database was opened with DatabaseDebug.
func WithLogging(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey, true)
}

// newQueryLogger builds the sink debug SQL logging writes to.
var newQueryLogger = func() func(query string, data logger.Data) {
	log := logger.NewWithLevel("debug")
	return func(query string, data logger.Data) {
		log.Debug(query, data)
	}
}

type logQueryHook struct {
	log func(query string, data logger.Data)
}

func (*logQueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (qh *logQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	enabled, ok := ctx.Value(ctxKey).(bool)
	if !ok || !enabled {
		return
	}

	data := logger.Data{"duration_ms": time.Since(event.StartTime).Milliseconds()}
	if event.Err != nil {
		data["error"] = event.Err.Error()
	}
	qh.log(event.Query, data)
}

func New(cfg *config.Config) (*bun.DB, error) {
	connector, err := openConnector(sqliteshim.Driver(), cfg.DatabaseFilePath)
	if err != nil {
		return nil, err
	}

	// Pragmas are per connection in SQLite, so they're applied every time the
	// pool opens a new one.
	sqldb := sql.OpenDB(newSessionConnector(connector, cfg.DatabaseMaxRetries,
		"PRAGMA foreign_keys = ON",
		fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.DatabaseBusyTimeout.Milliseconds()),
	))
	// A single writer connection serializes every statement, which keeps
	// SQLITE_BUSY out of the request path and lets :memory: databases work.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if cfg.DatabaseDebug {
		db.AddQueryHook(&logQueryHook{log: newQueryLogger()})
	}

	for i := 0; i < cfg.DatabaseConnectRetryCount; i++ {
		_, err = db.Exec("SELECT 1")
		if err != nil {
			time.Sleep(cfg.DatabaseConnectRetryDelay)
			continue
		}
		break
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// WAL mode allows concurrent reads during writes. It's a no-op for
	// in-memory databases.
	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, errors.Wrap(err, "failed to enable WAL mode")
	}

	return db, nil
}

// openConnector prefers the driver's own connector and otherwise opens
// connections by DSN, the way sql.Open does for plain drivers.
func openConnector(drv driver.Driver, dsn string) (driver.Connector, error) {
	if drvCtx, ok := drv.(driver.DriverContext); ok {
		connector, err := drvCtx.OpenConnector(dsn)
		return connector, errors.WithStack(err)
	}
	return &dsnConnector{dsn: dsn, driver: drv}, nil
}

type dsnConnector struct {
	dsn    string
	driver driver.Driver
}

func (dc *dsnConnector) Connect(_ context.Context) (driver.Conn, error) {
	return dc.driver.Open(dc.dsn)
}

func (dc *dsnConnector) Driver() driver.Driver {
	return dc.driver
}
