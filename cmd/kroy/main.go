package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/milk9111/kroy/prefabs"
	"github.com/milk9111/kroy/save"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "kroy:", err)
		os.Exit(1)
	}
}

func run() error {
	opts := gameOptions{collision: save.CollisionReject}

	tuningPath := flag.String("tuning", "", "tuning yaml on disk (default: embedded prefabs/tuning.yaml)")
	ticks := flag.Int("ticks", 0, "stop after this many ticks (0 = until the route is done)")
	realtime := flag.Bool("realtime", false, "pace ticks at the tuning tick rate")
	watch := flag.Bool("watch", false, "reload tuning and pickup scripts when they change on disk")
	load := flag.Bool("load", false, "restore power-ups from the save file before the first tick")
	saveOnExit := flag.Bool("save", false, "write the save file when the run ends")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.StringVar(&opts.savePath, "savefile", "kroy-save.yaml", "save file path")
	flag.Var(&opts.collision, "collision", "duplicate save id policy: reject, first or last")
	flag.Uint64Var(&opts.seed, "seed", 0, "seed for randomized power-ups (0 = random)")
	flag.Parse()

	// watching without pacing would spin
	if *watch {
		*realtime = true
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	spec, err := loadTuning(*tuningPath)
	if err != nil {
		return err
	}

	game, err := NewGame(spec, opts, logger)
	if err != nil {
		return err
	}
	if *load {
		game.RequestLoad()
	}

	var watcher *prefabs.Watcher
	if *watch {
		dirs := []string{filepath.Join("prefabs", "scripts")}
		if *tuningPath != "" {
			dirs = append(dirs, filepath.Dir(*tuningPath))
		} else {
			dirs = append(dirs, "prefabs")
		}
		watcher, err = prefabs.NewWatcher(dirs...)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer watcher.Close()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	var tick <-chan time.Time
	if *realtime {
		ticker := time.NewTicker(time.Second / time.Duration(spec.TickRate))
		defer ticker.Stop()
		tick = ticker.C
	}

loop:
	for n := 0; *ticks == 0 || n < *ticks; n++ {
		if *ticks == 0 && game.Done() && !*watch {
			break
		}
		if tick != nil {
			select {
			case <-tick:
			case <-interrupt:
				break loop
			}
		} else {
			select {
			case <-interrupt:
				break loop
			default:
			}
		}

		if watcher != nil {
			drainWatcher(game, watcher, *tuningPath, logger)
		}
		if err := game.Update(); err != nil {
			return err
		}
	}

	if *saveOnExit {
		game.RequestSave()
		if err := game.Update(); err != nil {
			return err
		}
	}

	frames, pickups, remaining := game.Summary()
	logger.Info("run finished", "ticks", frames, "pickups", pickups, "remaining", remaining)
	return nil
}

func loadTuning(path string) (prefabs.TuningSpec, error) {
	if path == "" {
		return prefabs.LoadTuningSpec()
	}
	return prefabs.LoadTuningSpecFile(path)
}

func drainWatcher(game *Game, w *prefabs.Watcher, tuningPath string, logger *slog.Logger) {
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Ext(name) == ".tengo" {
				game.ReloadHook()
				continue
			}
			spec, err := loadTuning(tuningPath)
			if err != nil {
				logger.Warn("tuning reload failed", "file", name, "error", err)
				continue
			}
			if err := game.Retune(spec); err != nil {
				logger.Warn("tuning reload failed", "file", name, "error", err)
			}
		case err, ok := <-w.Errors:
			if ok {
				logger.Warn("watcher error", "error", err)
			}
			return
		default:
			return
		}
	}
}
