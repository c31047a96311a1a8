package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         "mysql",
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "hris",
			TimeoutSeconds: 1,
		}

		db, err := Connect(context.Background(), cfg)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConnection))
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(context.Background(), Config{Driver: "oracle", Name: "hris"})
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrConnection))
		assert.Contains(t, err.Error(), "unsupported database driver: oracle")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(context.Background(), Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		require.NotNil(t, db)

		assert.NoError(t, db.Exec("CREATE TABLE employees (employee_id TEXT)").Error)
		assert.NoError(t, Close(db))
	})
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}

func TestDialectorFor(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{"mysql", "mysql"},
		{"", "mysql"},
		{"postgres", "postgres"},
		{"sqlserver", "sqlserver"},
		{"sqlite", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := dialectorFor(Config{Driver: tt.driver, Host: "db", Port: 1433, User: "svc", Password: "p@ss word", Name: "hris"}, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}
