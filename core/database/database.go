package database

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a connection to the HR store and verifies it with a ping.
// The returned handle is meant to live for a single extraction; release it with Close.
// Every failure wraps ErrConnection.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	dialector, err := dialectorFor(cfg, timeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	// Keep GORM quiet; the extractor logs through zap
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnection, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get sql.DB: %w", ErrConnection, err)
	}

	// One query per pass, no need for a large pool
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxLifetime(time.Duration(timeout) * time.Second * 10)

	pingCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("%w: failed to ping database: %w", ErrConnection, err)
	}

	return db, nil
}

// Close releases the pool behind a gorm handle. A nil handle is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dialectorFor builds the driver-specific DSN. Credentials are URL encoded so
// special characters in passwords survive DSN parsing.
func dialectorFor(cfg Config, timeout int) (gorm.Dialector, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "mysql":
		userInfo := url.UserPassword(cfg.User, cfg.Password).String()
		dsn := fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
			userInfo, cfg.Host, cfg.Port, cfg.Name, timeout, timeout, timeout)
		return mysql.Open(dsn), nil
	case "postgres":
		sslMode := cfg.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		u := url.URL{
			Scheme: "postgres",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   hostPort(cfg.Host, cfg.Port),
			Path:   "/" + cfg.Name,
			RawQuery: url.Values{
				"sslmode":         {sslMode},
				"connect_timeout": {strconv.Itoa(timeout)},
			}.Encode(),
		}
		return postgres.Open(u.String()), nil
	case "sqlserver":
		u := url.URL{
			Scheme: "sqlserver",
			User:   url.UserPassword(cfg.User, cfg.Password),
			Host:   hostPort(cfg.Host, cfg.Port),
			RawQuery: url.Values{
				"database":           {cfg.Name},
				"connection timeout": {strconv.Itoa(timeout)},
			}.Encode(),
		}
		return sqlserver.Open(u.String()), nil
	case "sqlite":
		return sqlite.Open(cfg.Name), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func hostPort(host string, port int) string {
	if port <= 0 {
		return host
	}
	return fmt.Sprintf("%s:%d", host, port)
}
