package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/gravitas-015/hexgrid/grid"
	"github.com/gravitas-015/hexgrid/hex"
	"github.com/gravitas-015/hexgrid/internal/config"
	"github.com/gravitas-015/hexgrid/internal/log"
	"github.com/gravitas-015/hexgrid/internal/store"
)

func main() {
	// Load configuration
	configPath := os.Getenv("HEXGRID_CONFIG")
	if configPath == "" {
		configPath = "./configs/hexgrid.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := log.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("configuration loaded", zap.String("path", configPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("hexgrid failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

// run builds the configured grid, prints its layout, and round-trips it
// through Redis when an address is configured.
func run(ctx context.Context, cfg *config.Config, out io.Writer, logger *zap.Logger) error {
	g := grid.New(cfg.Grid.Height, cfg.Grid.Width, cfg.Grid.Default)
	logger.Info("grid built",
		zap.String("name", cfg.Grid.Name),
		zap.Int("height", g.Height()),
		zap.Int("width", g.Width()),
	)

	if err := printLayout(out, g); err != nil {
		return err
	}

	if cfg.Redis.Address == "" {
		logger.Debug("redis address not set, skipping snapshot")
		return nil
	}

	client, err := store.Dial(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer client.Close()
	logger.Info("connected to Redis", zap.String("address", cfg.Redis.Address))

	return roundTrip(ctx, store.NewRedis[int](client, cfg.Redis.KeyPrefix, logger), cfg.Grid.Name, g, logger)
}

// roundTrip saves g and reads it back, failing if anything changed.
func roundTrip(ctx context.Context, s *store.Store[int], name string, g *grid.Grid[int], logger *zap.Logger) error {
	if err := s.Save(ctx, name, g); err != nil {
		return err
	}
	back, err := s.Load(ctx, name)
	if err != nil {
		return err
	}
	if back.Height() != g.Height() || back.Width() != g.Width() {
		return fmt.Errorf("snapshot %q came back as %dx%d, want %dx%d",
			name, back.Height(), back.Width(), g.Height(), g.Width())
	}
	var mismatch error
	g.Each(func(x, y int, v int) bool {
		if got, _ := back.Get(x, y); got != v {
			mismatch = fmt.Errorf("snapshot %q tile (%d,%d) = %d, want %d", name, x, y, got, v)
			return false
		}
		return true
	})
	if mismatch != nil {
		return mismatch
	}
	logger.Info("snapshot verified", zap.String("name", name), zap.Int("tiles", back.Len()))
	return nil
}

// printLayout writes one line per tile: coordinate, value, plane position
// and neighbors in sorted order.
func printLayout[T any](w io.Writer, g *grid.Grid[T]) error {
	var (
		err error
		buf = make([]hex.Offset, 0, 6)
	)
	g.Each(func(x, y int, v T) bool {
		buf = g.AppendAdjacent(buf[:0], x, y)
		sort.Slice(buf, func(i, j int) bool {
			if buf[i].X != buf[j].X {
				return buf[i].X < buf[j].X
			}
			return buf[i].Y < buf[j].Y
		})
		names := make([]string, len(buf))
		for i, n := range buf {
			names[i] = fmt.Sprintf("(%d,%d)", n.X, n.Y)
		}
		p := hex.Position(x, y)
		_, err = fmt.Fprintf(w, "(%d,%d) value=%v pos=(%.4f,%.4f) adjacent=%s\n",
			x, y, v, p.X, p.Y, strings.Join(names, " "))
		return err == nil
	})
	return err
}
