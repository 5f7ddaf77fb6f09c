package scripting

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// RegisterModules registers the engine.log, engine.dice and engine.element
// tables into L and reinstalls print as a debug logger.
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	L.SetField(engine, "log", m.logModule(L))
	L.SetField(engine, "dice", m.diceModule(L))
	L.SetField(engine, "element", elementModule(L))
	L.SetGlobal("engine", engine)
	L.SetGlobal("print", L.NewFunction(m.luaPrint))
}

func (m *Manager) luaPrint(L *lua.LState) int {
	parts := make([]string, L.GetTop())
	for i := range parts {
		parts[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	m.logger.Debug(strings.Join(parts, "\t"), zap.String("source", "lua print"))
	return 0
}

func (m *Manager) logModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": m.logger.Debug,
		"info":  m.logger.Info,
		"warn":  m.logger.Warn,
		"error": m.logger.Error,
	}
	for name, logFn := range levels {
		L.SetField(mod, name, L.NewFunction(func(L *lua.LState) int {
			logFn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	return mod
}

// diceModule exposes roll(expr) returning {total, dice, modifier}, or nil and
// an error message for a malformed expression, and intn(n).
func (m *Manager) diceModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "roll", L.NewFunction(func(L *lua.LState) int {
		res, err := m.roller.RollExpr(L.CheckString(1))
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(err.Error()))
			return 2
		}
		t := L.NewTable()
		dice := L.NewTable()
		for _, d := range res.Dice {
			dice.Append(lua.LNumber(d))
		}
		L.SetField(t, "total", lua.LNumber(res.Total()))
		L.SetField(t, "dice", dice)
		L.SetField(t, "modifier", lua.LNumber(res.Modifier()))
		L.Push(t)
		return 1
	}))
	L.SetField(mod, "intn", L.NewFunction(func(L *lua.LState) int {
		n := L.CheckInt(1)
		if n <= 0 {
			L.ArgError(1, "n must be positive")
			return 0
		}
		L.Push(lua.LNumber(m.roller.Source().Intn(n)))
		return 1
	}))
	return mod
}

// elementModule exposes multiplier(attacker, defender) and spells().
func elementModule(L *lua.LState) *lua.LTable {
	mod := L.NewTable()
	L.SetField(mod, "multiplier", L.NewFunction(func(L *lua.LState) int {
		a, err := element.Parse(L.CheckString(1))
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		d, err := element.Parse(L.CheckString(2))
		if err != nil {
			L.ArgError(2, err.Error())
			return 0
		}
		L.Push(lua.LNumber(element.Multiplier(a, d)))
		return 1
	}))
	L.SetField(mod, "spells", L.NewFunction(func(L *lua.LState) int {
		t := L.NewTable()
		for _, e := range element.Spells() {
			t.Append(lua.LString(strings.ToLower(e.String())))
		}
		L.Push(t)
		return 1
	}))
	return mod
}
