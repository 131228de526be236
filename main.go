package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rocketboost/assets"
	"github.com/milk9111/rocketboost/config"
	"github.com/milk9111/rocketboost/ecs/component"
	"github.com/milk9111/rocketboost/logging"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug keys and prefab hot reload")
	level := flag.Int("level", 0, "scene index to start on")
	configDir := flag.String("config", ".", "directory containing rocketboost.yaml")
	logLevel := flag.String("log-level", "", "trace, debug, info, warn or error")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fatal := logging.New("info", os.Stderr)
		fatal.Fatal().Err(err).Msg("config")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			config.Set("debug", *debug)
		case "level":
			config.Set("startLevel", *level)
		case "log-level":
			config.Set("logLevel", *logLevel)
		}
	})

	settings, err := config.Current()
	if err != nil {
		fatal := logging.New("info", os.Stderr)
		fatal.Fatal().Err(err).Msg("config")
	}
	log := logging.New(settings.LogLevel, os.Stderr)
	if file := config.ConfigFile(); file != "" {
		log.Info().Str("file", file).Msg("config loaded")
	}

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("rocketboost")

	game, err := NewGame(settings, log, func(cue string) (component.ClipPlayer, error) {
		return assets.LoadAudioPlayer(cue)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Error().Err(err).Msg("run game")
		game.Close()
		os.Exit(1)
	}
}
