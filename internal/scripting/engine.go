package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM holding scripted actor strategies.
// Single-goroutine access only (turn loop). Each strategy is a global Lua
// function taking a context table and returning nil (idle) or an action
// table.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every .lua file in the given
// directory. A missing directory is not an error: the engine simply holds no
// strategies.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}
	return e, nil
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

// Close shuts the VM down.
func (e *Engine) Close() {
	e.vm.Close()
}

// HasStrategy reports whether a global Lua function with the given name is
// defined.
func (e *Engine) HasStrategy(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// ThingEntry is one visible thing passed into a strategy's context table.
type ThingEntry struct {
	Name  string
	Icon  string
	X, Y  int
	Life  int
	Armed bool
	Self  bool
}

// StepContext holds pre-packed data for one strategy decision.
type StepContext struct {
	Name        string
	Life        int
	MaxLife     int
	X, Y        int
	WeaponName  string // empty = unarmed
	WeaponRange float64
	Things      []ThingEntry
}

// StepResult is a strategy's parsed decision. Targets come back by position;
// the caller substitutes the live thing standing there.
type StepResult struct {
	Idle      bool
	Action    string
	X, Y      int // move destination, or target position when HasTarget
	HasTarget bool
	Status    string
}

// NextStep calls the named Lua strategy function with the given context.
// A malformed return value is an error: the world logs it against the actor
// and, in debug mode, aborts the step.
func (e *Engine) NextStep(fn string, ctx StepContext) (StepResult, error) {
	f := e.vm.GetGlobal(fn)
	if f == lua.LNil {
		return StepResult{}, fmt.Errorf("lua strategy %q not found", fn)
	}

	t := e.vm.NewTable()
	t.RawSetString("name", lua.LString(ctx.Name))
	t.RawSetString("life", lua.LNumber(ctx.Life))
	t.RawSetString("max_life", lua.LNumber(ctx.MaxLife))
	t.RawSetString("x", lua.LNumber(ctx.X))
	t.RawSetString("y", lua.LNumber(ctx.Y))
	if ctx.WeaponName != "" {
		w := e.vm.NewTable()
		w.RawSetString("name", lua.LString(ctx.WeaponName))
		w.RawSetString("max_range", lua.LNumber(ctx.WeaponRange))
		t.RawSetString("weapon", w)
	}

	thingsTbl := e.vm.NewTable()
	for i, th := range ctx.Things {
		row := e.vm.NewTable()
		row.RawSetString("name", lua.LString(th.Name))
		row.RawSetString("icon", lua.LString(th.Icon))
		row.RawSetString("x", lua.LNumber(th.X))
		row.RawSetString("y", lua.LNumber(th.Y))
		row.RawSetString("life", lua.LNumber(th.Life))
		row.RawSetString("armed", lua.LBool(th.Armed))
		row.RawSetString("is_self", lua.LBool(th.Self))
		thingsTbl.RawSetInt(i+1, row)
	}
	t.RawSetString("things", thingsTbl)

	if err := e.vm.CallByParam(lua.P{
		Fn:      f,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return StepResult{}, fmt.Errorf("lua %s: %w", fn, err)
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	if result == lua.LNil {
		return StepResult{Idle: true}, nil
	}
	rt, ok := result.(*lua.LTable)
	if !ok {
		return StepResult{}, fmt.Errorf("invalid next_step result: %s", result.Type())
	}

	out := StepResult{
		Action: lua.LVAsString(rt.RawGetString("action")),
		Status: lua.LVAsString(rt.RawGetString("status")),
	}
	if out.Action == "" {
		return StepResult{}, fmt.Errorf("invalid next_step result: missing action")
	}

	if tgt, ok := rt.RawGetString("target").(*lua.LTable); ok {
		out.HasTarget = true
		out.X = int(lua.LVAsNumber(tgt.RawGetString("x")))
		out.Y = int(lua.LVAsNumber(tgt.RawGetString("y")))
	} else {
		out.X = int(lua.LVAsNumber(rt.RawGetString("x")))
		out.Y = int(lua.LVAsNumber(rt.RawGetString("y")))
	}
	return out, nil
}
