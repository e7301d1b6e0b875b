package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/viper"

	"launch/game"
	"launch/internal/config"
	"launch/internal/logging"
)

func main() {
	cfgErr := config.Load(".")

	logger, err := logging.New(os.Stderr, config.LogLevel())
	if err != nil {
		logger.Warn().Err(err).Msg("bad log level")
	}

	var notFound viper.ConfigFileNotFoundError
	switch {
	case cfgErr == nil:
		logger.Info().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	case errors.As(cfgErr, &notFound):
		logger.Warn().Msg("no config file, using defaults")
	default:
		logger.Fatal().Err(cfgErr).Msg("failed to load config")
	}

	cfg, err := config.Game()
	if err != nil {
		logger.Fatal().Err(err).Msg("config rejected")
	}

	g := game.NewGame(cfg,
		game.WithLogger(logger),
		game.WithRand(game.NewRand(config.Seed())),
	)

	ebiten.SetWindowSize(cfg.ScreenWidth(), cfg.ScreenHeight())
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
