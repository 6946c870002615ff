package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for species behavior hooks.
// Single-goroutine access only (simulation loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all behavior scripts from the
// given directory. Missing directories are skipped so hosts without scripts
// still boot.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}

	for _, sub := range []string{"core", "behavior"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// BehaviorContext holds pre-packed data for one creature's decision.
type BehaviorContext struct {
	X          int
	Y          int
	Energy     int
	MaxEnergy  int
	Age        int
	Population int
	Tick       int64
}

// Decision is returned by a Lua behavior hook.
type Decision struct {
	DX   int
	DY   int
	Rest bool // skip upkeep movement this tick
}

// HasHook reports whether the named behavior function is defined.
func (e *Engine) HasHook(name string) bool {
	return e.vm.GetGlobal(name) != lua.LNil
}

// Decide calls the named Lua behavior hook. On any script failure the
// creature stays put — a broken script must not kill the simulation.
func (e *Engine) Decide(hook string, ctx BehaviorContext) Decision {
	fn := e.vm.GetGlobal(hook)
	if fn == lua.LNil {
		return Decision{}
	}

	t := e.vm.NewTable()
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	t.RawSetString("energy", lua.LNumber(ctx.Energy))
	t.RawSetString("max_energy", lua.LNumber(ctx.MaxEnergy))
	t.RawSetString("age", lua.LNumber(ctx.Age))
	t.RawSetString("population", lua.LNumber(ctx.Population))
	t.RawSetString("tick", lua.LNumber(ctx.Tick))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua behavior hook error", zap.String("hook", hook), zap.Error(err))
		return Decision{}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua behavior hook returned non-table", zap.String("hook", hook))
		return Decision{}
	}
	return Decision{
		DX:   int(lua.LVAsNumber(rt.RawGetString("dx"))),
		DY:   int(lua.LVAsNumber(rt.RawGetString("dy"))),
		Rest: rt.RawGetString("rest") == lua.LTrue,
	}
}
