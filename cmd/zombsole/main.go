package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MaicoLeberle/zombsole/internal/actor"
	"github.com/MaicoLeberle/zombsole/internal/config"
	"github.com/MaicoLeberle/zombsole/internal/data"
	"github.com/MaicoLeberle/zombsole/internal/scripting"
	"github.com/MaicoLeberle/zombsole/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/zombsole.toml"
	if p := os.Getenv("ZOMBSOLE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load data and scripts
	weapons, err := data.LoadWeaponTable(cfg.Paths.Weapons)
	if err != nil {
		return fmt.Errorf("load weapons: %w", err)
	}
	log.Info("weapon catalog loaded", zap.Int("weapons", weapons.Count()))

	scenario, err := data.LoadScenario(cfg.Paths.Scenario)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	log.Info("scenario loaded", zap.Int("groups", scenario.Count()))

	eng, err := scripting.NewEngine(cfg.Paths.Scripts, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer eng.Close()

	// 4. Build the world and spawn the scenario
	w := world.New(world.Config{
		Width:  cfg.Game.Width,
		Height: cfg.Game.Height,
		Debug:  cfg.Game.Debug,
		Seed:   cfg.Game.Seed,
		Log:    log,
	})

	fixed, random, err := buildThings(scenario, weapons, eng)
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	for _, t := range fixed {
		if err := w.SpawnThing(t); err != nil {
			return fmt.Errorf("spawn %s: %w", t.Name, err)
		}
	}
	if err := w.SpawnInRandom(random, nil, true); err != nil {
		return fmt.Errorf("random spawn: %w", err)
	}
	log.Info("world ready",
		zap.Int("width", cfg.Game.Width),
		zap.Int("height", cfg.Game.Height),
		zap.Int("things", len(w.Things())),
		zap.Int64("seed", cfg.Game.Seed),
	)

	// 5. Turn loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Game.TickRate)
	defer ticker.Stop()

	logged := 0
	for {
		select {
		case <-ticker.C:
			if err := w.Step(); err != nil {
				return fmt.Errorf("step at tick %d: %w", w.Tick(), err)
			}
			logged = logNewEvents(w, log, logged)
			if cfg.Game.Turns > 0 && w.Tick()+1 >= cfg.Game.Turns {
				log.Info("simulation finished", zap.Int("turns", w.Tick()+1))
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("received shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// buildThings turns scenario specs into things, split into fixed-position and
// randomly placed groups.
func buildThings(sc *data.Scenario, weapons *data.WeaponTable, eng *scripting.Engine) (fixed, random []*world.Thing, err error) {
	for _, spec := range sc.Things {
		count := spec.Count
		if count == 0 {
			count = 1
		}

		var weapon *world.Weapon
		if spec.Weapon != "" {
			ws := weapons.Get(spec.Weapon)
			if ws == nil {
				return nil, nil, fmt.Errorf("%s: unknown weapon %q", spec.Name, spec.Weapon)
			}
			weapon = world.NewWeapon(ws.Name, ws.MaxRange, ws.DamageMin, ws.DamageMax)
		}

		act, err := actor.Resolve(spec.Strategy, eng)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", spec.Name, err)
		}

		for i := 0; i < count; i++ {
			name := spec.Name
			if count > 1 {
				name = fmt.Sprintf("%s %d", spec.Name, i+1)
			}

			var t *world.Thing
			if weapon != nil && act != nil {
				t, err = world.NewFightingThing(name, spec.Icon, spec.Color, spec.Life, weapon, act)
			} else {
				t, err = world.NewThing(name, spec.Icon, spec.Color, spec.Life)
				if err == nil {
					t.Weapon = weapon
					t.Actor = act
				}
			}
			if err != nil {
				return nil, nil, err
			}
			if spec.MaxLife > 0 {
				t.MaxLife = spec.MaxLife
			}

			if spec.CorpseIcon != "" {
				corpse, err := world.NewThing(name+" corpse", spec.CorpseIcon, spec.CorpseColor, 0)
				if err != nil {
					return nil, nil, err
				}
				t.DeadDecoration = corpse
			}

			if spec.Random || count > 1 {
				random = append(random, t)
			} else {
				t.Position = world.Position{X: spec.X, Y: spec.Y}
				fixed = append(fixed, t)
			}
		}
	}
	return fixed, random, nil
}

// logNewEvents logs every event appended since the last call and returns the
// new high-water mark.
func logNewEvents(w *world.World, log *zap.Logger, from int) int {
	events := w.Events()
	for _, ev := range events[from:] {
		log.Info(ev.Message,
			zap.Int("tick", ev.Tick),
			zap.String("thing", ev.Thing.Name),
			zap.Int("life", ev.Thing.Life),
		)
	}
	return len(events)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
