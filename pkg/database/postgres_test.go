package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/udaan-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "udaan", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=udaan sslmode=disable", dsn)
}

func TestIsUndefinedTable(t *testing.T) {
	missing := &pq.Error{Code: "42P01", Message: `relation "scholarships" does not exist`}
	assert.True(t, IsUndefinedTable(missing))
	assert.True(t, IsUndefinedTable(fmt.Errorf("list scholarships: %w", missing)))
	assert.False(t, IsUndefinedTable(&pq.Error{Code: "23505"}))
	assert.False(t, IsUndefinedTable(errors.New("connection refused")))
	assert.False(t, IsUndefinedTable(nil))
}
