package db

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbearia-web/internal/config"
)

func TestNewRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := NewRedis("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedis_InvalidURL(t *testing.T) {
	_, err := NewRedis("http://not-redis")
	assert.Error(t, err)
}

func TestNewDB_DisabledWithoutURL(t *testing.T) {
	db, err := NewDB(&config.Config{})
	require.NoError(t, err)
	assert.Nil(t, db)
	assert.NoError(t, Close(nil))
}
