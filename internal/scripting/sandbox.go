// Package scripting provides a sandboxed GopherLua execution environment for
// enemy decision scripts. It knows nothing of combatants; the ai package
// passes plain values into hooks and reads a string back.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultInstructionLimit is the maximum number of Lua opcodes allowed per
// script load or hook call when no override is configured.
const DefaultInstructionLimit = 100_000

// blockedGlobals are removed from every VM. print is blocked because stdout
// belongs to the game console; the manager reinstalls it as a logger.
var blockedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require", "print"}

// opBudget is a context that cancels itself once Done has been polled
// limit times. GopherLua polls Done once per opcode.
type opBudget struct {
	context.Context
	cancel context.CancelFunc
	left   atomic.Int64
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) <= 0 {
		b.cancel()
	}
	return b.Context.Done()
}

// SetInstructionLimit arms L with a fresh budget of limit opcodes. A script
// that exhausts it fails with a context cancellation error.
//
// Precondition: limit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the returned cancel releases the budget.
func SetInstructionLimit(L *lua.LState, limit int) context.CancelFunc {
	if limit <= 0 {
		limit = DefaultInstructionLimit
	}
	base, cancel := context.WithCancel(context.Background())
	b := &opBudget{Context: base, cancel: cancel}
	b.left.Store(int64(limit))
	L.SetContext(b)
	return cancel
}

// NewSandboxedState creates an LState with only the base, table, string and
// math libraries, blockedGlobals removed and an armed instruction budget.
//
// Precondition: instLimit >= 0; 0 uses DefaultInstructionLimit.
// Postcondition: the caller owns the LState and must Close it.
func NewSandboxedState(instLimit int) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	for _, name := range blockedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	SetInstructionLimit(L, instLimit)
	return L
}
