package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/arena/internal/game/dice"
)

// globalSetID is the reserved key for shared scripts loaded via LoadGlobal.
// CallHook falls back to this VM when no set VM is found.
const globalSetID = "__global__"

type vm struct {
	L     *lua.LState
	limit int
}

// Manager owns one sandboxed LState per script set and exposes hook dispatch.
// All methods are safe for concurrent use; hook calls are serialized.
type Manager struct {
	mu     sync.Mutex
	vms    map[string]*vm
	roller *dice.Roller
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: roller and logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no VMs.
func NewManager(roller *dice.Roller, logger *zap.Logger) *Manager {
	if roller == nil {
		panic("scripting.NewManager: roller must not be nil")
	}
	if logger == nil {
		panic("scripting.NewManager: logger must not be nil")
	}
	return &Manager{
		vms:    make(map[string]*vm),
		roller: roller,
		logger: logger,
	}
}

// LoadSet creates a sandboxed VM for setID, registers the engine.* modules,
// then executes every *.lua file in scriptDir in lexicographic order. Loading
// a set that already exists replaces it.
//
// Precondition: setID must be non-empty; scriptDir must be a readable directory.
// Postcondition: the set VM is registered; returns error on Lua load failure.
func (m *Manager) LoadSet(setID, scriptDir string, instLimit int) error {
	if setID == "" {
		return fmt.Errorf("scripting: set id must not be empty")
	}
	return m.loadInto(setID, scriptDir, instLimit)
}

// LoadGlobal creates the "__global__" VM used as the CallHook fallback for
// every set.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.loadInto(globalSetID, scriptDir, instLimit)
}

func (m *Manager) loadInto(key, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, key, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	L := NewSandboxedState(instLimit)
	m.RegisterModules(L)
	for _, path := range luaFiles {
		cancel := SetInstructionLimit(L, instLimit)
		err := L.DoFile(path)
		cancel()
		if err != nil {
			L.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.vms[key]; ok {
		old.L.Close()
	}
	m.vms[key] = &vm{L: L, limit: instLimit}
	m.mu.Unlock()

	m.logger.Info("scripting: loaded script set",
		zap.String("set", key),
		zap.Int("files", len(luaFiles)),
	)
	return nil
}

// SetIDs returns the loaded set IDs in sorted order, including "__global__"
// when loaded.
func (m *Manager) SetIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.vms))
	for id := range m.vms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CallHook calls the named Lua global function in setID's VM. If the set has
// no VM, the __global__ VM is tried as a fallback. Returns (LNil, nil) if the
// hook is not defined or no VM exists. Lua runtime errors, including an
// exhausted instruction budget, are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(setID, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.vms[setID]
	if !ok {
		v = m.vms[globalSetID]
	}
	if v == nil {
		m.logger.Info("scripting: no VM for set",
			zap.String("set", setID),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	fn := v.L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	cancel := SetInstructionLimit(v.L, v.limit)
	defer cancel()
	if err := v.L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("set", setID),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := v.L.Get(-1)
	v.L.Pop(1)
	return ret, nil
}

// Close closes every VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, v := range m.vms {
		v.L.Close()
		delete(m.vms, id)
	}
}
