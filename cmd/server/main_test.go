package main

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/paging-service/internal/config"
	"github.com/maxviazov/paging-service/internal/model"
)

func TestOpenStorage_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "memory"}}
	st, err := openStorage(context.Background(), cfg, zerolog.New(io.Discard))
	require.NoError(t, err)
	defer st.close()

	require.NoError(t, st.pinger.Ping(context.Background()))
	err = st.tx.WithinTx(context.Background(), func(ctx context.Context) error {
		_, err := st.items.Create(ctx, model.Item{Name: "first"})
		return err
	})
	require.NoError(t, err)

	n, err := st.items.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestConfigPath(t *testing.T) {
	t.Setenv("APP_CONFIG", "")
	assert.Equal(t, "config.yaml", configPath())
	t.Setenv("APP_CONFIG", "/etc/paging/config.yaml")
	assert.Equal(t, "/etc/paging/config.yaml", configPath())
}
