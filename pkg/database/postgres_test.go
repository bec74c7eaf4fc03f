package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "tryon",
		Password: "secret",
		DBName:   "catalog",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=tryon password=secret dbname=catalog sslmode=disable",
		cfg.DSN(),
	)
}
