package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/reefgo/server/internal/config"
	"github.com/reefgo/server/internal/core/event"
	coresys "github.com/reefgo/server/internal/core/system"
	"github.com/reefgo/server/internal/data"
	"github.com/reefgo/server/internal/persist"
	"github.com/reefgo/server/internal/scripting"
	"github.com/reefgo/server/internal/system"
	"github.com/reefgo/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string, serverID int) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m              Reef  v0.1.0                 \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      headless ecosystem simulation        \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s \033[90m(id: %d)\033[0m\n\n", serverName, serverID)
}

func printStat(label string, count int) {
	fmt.Printf("  %s \033[90m....\033[0m \033[32m%d\033[0m\n", label, count)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main server logic ─────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/server.toml"
	if p := os.Getenv("REEF_CONFIG"); p != "" {
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

	printBanner(cfg.Server.Name, cfg.Server.ID)

	// 3. Optional PostgreSQL for snapshots
	var snapshots *persist.SnapshotRepo
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			cancel()
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool); err != nil {
			cancel()
			return fmt.Errorf("migrations: %w", err)
		}
		cancel()
		snapshots = persist.NewSnapshotRepo(db)
		printOK("PostgreSQL connected, migrations applied")
	}

	// 4. Load data tables
	speciesTable, err := data.LoadSpeciesTable(filepath.Join(cfg.Simulation.DataDir, "species_list.yaml"))
	if err != nil {
		return fmt.Errorf("load species table: %w", err)
	}
	printStat("species templates", speciesTable.Count())

	spawnTable, err := data.LoadSpawnTable(filepath.Join(cfg.Simulation.DataDir, "spawn_list.yaml"))
	if err != nil {
		return fmt.Errorf("load spawn table: %w", err)
	}
	printStat("spawn entries", spawnTable.Count())

	// 5. Lua behavior engine
	luaEngine, err := scripting.NewEngine(cfg.Simulation.ScriptsDir, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	printOK("Lua behavior scripts loaded")

	// 6. World state and event bus
	worldState := world.NewState(cfg.Simulation.GridWidth, cfg.Simulation.GridHeight)
	bus := event.NewBus()

	// 7. System catalog
	deps := &system.Deps{
		Log:       log,
		World:     worldState,
		Species:   speciesTable,
		Spawns:    spawnTable,
		Lua:       luaEngine,
		Snapshots: snapshots,
		Bus:       bus,
		Sim:       cfg.Simulation,
	}
	catalog, err := system.BuildCatalog(deps)
	if err != nil {
		return fmt.Errorf("system catalog: %w", err)
	}
	printStat("systems catalogued", catalog.Len())

	// 8. Compose the runtime
	loop := &gameLoop{cfg: cfg, log: log}
	builder := coresys.NewBuilder(catalog, log).AttachTo(loop)
	if err := configureBuilder(builder, cfg.Runtime); err != nil {
		return fmt.Errorf("runtime config: %w", err)
	}
	rt, err := builder.Build()
	if err != nil {
		return fmt.Errorf("compose runtime: %w", err)
	}
	defer rt.Close()

	for p := coresys.PhaseInitialize; p <= coresys.PhasePresent; p++ {
		if g := rt.Group(p); g != nil {
			printStat(fmt.Sprintf("%s systems", p), g.Len())
		}
	}

	// 9. Run the frame loop
	printReady(fmt.Sprintf("simulation loop started (tick: %s)", cfg.Simulation.TickRate))
	fmt.Println()
	return loop.run()
}

// configureBuilder maps the runtime config section onto builder calls.
// An empty section means engine defaults: all phases, all built-ins.
func configureBuilder(b *coresys.Builder, rc config.RuntimeConfig) error {
	if len(rc.Phases) == 0 && len(rc.Categories) == 0 {
		b.Defaults()
	} else {
		for _, name := range rc.Phases {
			p, err := phaseByName(name)
			if err != nil {
				return err
			}
			b.SelectPhase(p)
		}
		for _, c := range rc.Categories {
			b.IncludeCategory(c)
		}
	}
	for _, name := range rc.ExcludeSystems {
		b.ExcludeName(name)
	}
	return nil
}

func phaseByName(name string) (coresys.Phase, error) {
	switch name {
	case "initialize":
		return coresys.PhaseInitialize, nil
	case "simulate":
		return coresys.PhaseSimulate, nil
	case "present":
		return coresys.PhasePresent, nil
	default:
		return 0, fmt.Errorf("unknown phase %q", name)
	}
}

// gameLoop is the external per-frame driver. The composition engine hands it
// the finished runtime via Attach; run ticks Initialize once, then Simulate
// and Present at the configured rate until a shutdown signal arrives.
type gameLoop struct {
	cfg *config.Config
	log *zap.Logger
	rt  *coresys.Runtime
}

func (l *gameLoop) Attach(rt *coresys.Runtime) { l.rt = rt }

func (l *gameLoop) run() error {
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	dt := l.cfg.Simulation.TickRate
	l.rt.TickPhase(coresys.PhaseInitialize, dt)

	ticker := time.NewTicker(dt)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.rt.TickPhase(coresys.PhaseSimulate, dt)
			l.rt.TickPhase(coresys.PhasePresent, dt)
		case sig := <-shutdownCh:
			l.log.Info("shutdown signal received", zap.String("signal", sig.String()))
			return nil
		}
	}
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
