// Package main provides the aventura binary: a single-player text adventure
// played in the terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/cory-johannsen/aventura/internal/config"
	"github.com/cory-johannsen/aventura/internal/console"
	"github.com/cory-johannsen/aventura/internal/game/command"
	"github.com/cory-johannsen/aventura/internal/game/dice"
	"github.com/cory-johannsen/aventura/internal/game/loop"
	"github.com/cory-johannsen/aventura/internal/game/session"
	"github.com/cory-johannsen/aventura/internal/game/world"
	"github.com/cory-johannsen/aventura/internal/observability"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file; empty uses defaults and AVENTURA_* env vars")
	mapPath := flag.String("map", "", "path to the map document (overrides game.map_path)")
	seed := flag.Int64("seed", 0, "seed for monster rolls (overrides game.seed); 0 keeps the configured value")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *mapPath != "" {
		cfg.Game.MapPath = *mapPath
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	roller := dice.NewLoggedRoller(dice.NewSource(cfg.Game.Seed), logger)

	m, err := world.LoadMapFromFile(cfg.Game.MapPath, roller)
	if err != nil {
		logger.Fatal("loading map", zap.String("path", cfg.Game.MapPath), zap.Error(err))
	}

	maxItems := m.MaxItems
	if cfg.Game.MaxItemsOverride > 0 {
		maxItems = cfg.Game.MaxItemsOverride
	}

	sess, err := session.New(m.Graph, maxItems)
	if err != nil {
		logger.Fatal("creating session", zap.Error(err))
	}
	logger = observability.SessionLogger(logger, sess.ID, cfg.Game.MapPath)
	logger.Info("map loaded",
		zap.Int("rooms", m.Graph.RoomCount()),
		zap.Int("max_items", maxItems),
		zap.Int64("seed", cfg.Game.Seed),
	)

	if unreachable := m.Graph.Unreachable(); len(unreachable) > 0 {
		logger.Warn("map has unreachable rooms", zap.Strings("rooms", unreachable))
	}
	if !m.Graph.ExitReachable() {
		logger.Warn("victory room cannot be reached from the start room",
			zap.String("exit", m.Graph.ExitRoomID()))
	}

	interp := command.NewInterpreter(sess, command.DefaultRegistry(), logger)
	renderer := console.NewRenderer(os.Stdout, cfg.Game.Color)
	input := console.NewLineReader(os.Stdin, os.Stdout)
	defer input.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	driver := loop.NewDriver(sess, interp, renderer, input, loop.Options{ClearScreen: cfg.Game.ClearScreen}, logger)
	outcome, err := driver.Run(ctx)
	if err != nil {
		logger.Error("session aborted", zap.Error(err))
		return
	}
	logger.Info("session finished", zap.Stringer("outcome", outcome))
}
