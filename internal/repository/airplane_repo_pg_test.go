package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewAirplaneRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewAirplaneRepository(pool)
	assert.NotNil(t, repo)
}
