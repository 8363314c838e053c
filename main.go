package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"caneat/asset"
	"caneat/audio"
	"caneat/config"
	"caneat/game"
	"caneat/game/manager"
	"caneat/game/types"
	"caneat/input"
	"caneat/ui"
	"caneat/ui/scene"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const musicKey = "music"

type options struct {
	configPath string
	logLevel   string
	size       int
	seed       uint64
}

// parseFlags reads the command line. Values from -config are applied first so
// explicit flags still win.
func parseFlags(args []string) (options, config.GameConfig, error) {
	var opts options
	cfg := config.Default()

	bind := func(c *config.GameConfig) *flag.FlagSet {
		fs := flag.NewFlagSet("caneat", flag.ContinueOnError)
		fs.StringVar(&opts.configPath, "config", opts.configPath, "JSON settings file")
		fs.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
		fs.IntVar(&opts.size, "size", 800, "Initial window size in pixels")
		fs.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 = time based)")
		config.BindFlags(fs, c)
		return fs
	}

	if err := bind(&cfg).Parse(args); err != nil {
		return opts, cfg, err
	}
	if opts.configPath != "" {
		fileCfg, err := config.Load(opts.configPath)
		if err != nil {
			return opts, cfg, err
		}
		if err := bind(&fileCfg).Parse(args); err != nil {
			return opts, cfg, err
		}
		cfg = fileCfg
	}
	return opts, cfg, cfg.Validate()
}

func main() {
	opts, cfg, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "caneat",
	})

	seed := opts.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("Starting", "speed", cfg.Speed, "font", cfg.FontName(), "music", cfg.MusicOn, "seed", seed)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(opts.size), int32(opts.size), "CanEat For Ever")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	loader := asset.NewLoader(logger)
	defer loader.Close()

	player := audio.NewMusicPlayer(logger)
	if err := player.Initialize(); err != nil {
		logger.Warn("Audio unavailable, playing silently", "error", err)
	}
	defer player.Cleanup()

	g := game.NewGame(logger, seed)
	loop := game.NewLoop(g, cfg.Speed)
	defer loop.Close()

	renderer := ui.NewRenderer(loader, logger)
	defer renderer.Unload()
	renderer.Apply(cfg)

	musicRef := ""
	requestMusic := func() {
		if cfg.MusicURL == musicRef {
			return
		}
		musicRef = cfg.MusicURL
		if musicRef != "" {
			loader.Request(musicKey, musicRef)
		}
	}
	requestMusic()

	state := g.State()
	state.AddListener(manager.ListenerFuncs{
		Score: func(score int) {
			logger.Debug("Score", "round", state.RoundID(), "score", score)
		},
		Status: func(status types.GameStatus) {
			player.Sync(cfg.MusicOn, status)
		},
	})

	controls := ui.NewControls(input.NewAdapter(g))

	for !rl.WindowShouldClose() {
		now := time.Now()

		for _, res := range loader.Poll() {
			if res.Key != musicKey {
				renderer.Accept(res)
				continue
			}
			if res.Err != nil || res.Ref != cfg.MusicURL {
				continue
			}
			if err := player.Load(res.Ref, res.Data); err != nil {
				logger.Warn("Music unavailable", "error", err)
			}
		}

		cmd := controls.Poll(state.IsPlaying())
		if cmd.Start {
			state.Restart()
		}
		if cmd.SpeedUp || cmd.SpeedDown {
			step := config.SpeedStep
			if cmd.SpeedUp {
				step = -step
			}
			if next := config.ClampSpeed(cfg.Speed + step); next != cfg.Speed {
				cfg.Speed = next
				loop.SetSpeed(cfg.Speed, now)
				logger.Info("Speed changed", "speed", cfg.Speed)
			}
		}
		if cmd.Reload && opts.configPath != "" {
			next, err := config.Load(opts.configPath)
			if err == nil {
				err = next.Validate()
			}
			if err != nil {
				logger.Warn("Settings not reloaded", "error", err)
			} else {
				cfg = next
				renderer.Apply(cfg)
				requestMusic()
				loop.SetSpeed(cfg.Speed, now)
				player.Sync(cfg.MusicOn, state.Status())
				logger.Info("Settings reloaded", "path", opts.configPath, "speed", cfg.Speed)
			}
		}
		if cmd.ToggleMusic {
			cfg.MusicOn = !cfg.MusicOn
			player.Sync(cfg.MusicOn, state.Status())
			logger.Info("Music toggled", "on", cfg.MusicOn)
		}

		loop.Update(now)

		snap := g.Snapshot()
		renderer.Draw(snap, scene.BuildHUD(snap.Status, snap.Score, state.GetHighScore(), cfg.Speed, cfg.MusicOn))
	}

	logger.Info("Session finished", "best", state.GetHighScore(), "rounds", len(state.GetScoreHistory()))
}
