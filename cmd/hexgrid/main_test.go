package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/internal/store"
)

func TestPrintLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printLayout(&buf, grid.New(2, 2, 0)))
	want := strings.Join([]string{
		"(0,0) value=0 pos=(0.0000,0.0000) adjacent=(0,1) (1,0)",
		"(0,1) value=0 pos=(0.0000,1.7321) adjacent=(0,0) (1,0) (1,1)",
		"(1,0) value=0 pos=(1.5000,0.8660) adjacent=(0,0) (0,1) (1,1)",
		"(1,1) value=0 pos=(1.5000,2.5981) adjacent=(0,1) (1,0)",
	}, "\n") + "\n"
	require.Equal(t, want, buf.String())
}

func TestRunWithoutRedis(t *testing.T) {
	cfg, err := config.Parse([]byte("grid:\n  height: 3\n  width: 2\n  default: 4\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), cfg, &buf, zaptest.NewLogger(t)))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		require.Contains(t, l, "value=4")
	}
}

type mapKV map[string]string

func (m mapKV) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := m[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m mapKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	m[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (m mapKV) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(m, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestRoundTrip(t *testing.T) {
	logger := zaptest.NewLogger(t)
	kv := mapKV{}
	s := store.NewRedis[int](kv, "hexgrid:", logger)

	g := grid.New(3, 3, 1)
	g.Set(1, 2, 5)
	require.NoError(t, roundTrip(context.Background(), s, "arena", g, logger))
	require.Contains(t, kv, "hexgrid:arena")
}
