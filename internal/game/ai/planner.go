package ai

import (
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/cory-johannsen/arena/internal/game/element"
)

// ScriptCaller is the interface required by Scripted to evaluate Lua hooks.
type ScriptCaller interface {
	// CallHook calls a named Lua function in the given script set's VM.
	// Returns (LNil, nil) if the function is not defined.
	CallHook(setID, hook string, args ...lua.LValue) (lua.LValue, error)
}

// Scripted delegates the decision to a Lua hook. The hook receives the
// enemy's name, hp, max_hp, mp, max_mp, strength, the target's hp and element
// name, whether a signature is affordable, and the enemy's hp percentage. It returns one of
// "attack", "spell:<element>" or "signature".
//
// Invariant: caller and Fallback must not be nil.
type Scripted struct {
	caller   ScriptCaller
	setID    string
	hook     string
	Fallback Policy
}

// NewScripted constructs a Scripted policy that falls back to Standard.
//
// Precondition: caller must not be nil; hook must be non-empty.
func NewScripted(caller ScriptCaller, setID, hook string) *Scripted {
	if caller == nil {
		panic("ai.NewScripted: caller must not be nil")
	}
	return &Scripted{caller: caller, setID: setID, hook: hook, Fallback: Standard{}}
}

// Decide implements Policy. Lua errors, nil results, unknown answers and an
// unaffordable signature use the Fallback policy.
func (s *Scripted) Decide(state State, src Source) Decision {
	canSignature := state.Signature != nil && state.Self.MP >= state.Signature.Cost
	ret, err := s.caller.CallHook(s.setID, s.hook,
		lua.LString(state.Self.Name),
		lua.LNumber(state.Self.HP),
		lua.LNumber(state.Self.MaxHP),
		lua.LNumber(state.Self.MP),
		lua.LNumber(state.Self.MaxMP),
		lua.LNumber(state.Self.Strength),
		lua.LNumber(state.Target.HP),
		lua.LString(strings.ToLower(state.Target.Element.String())),
		lua.LBool(canSignature),
		lua.LNumber(state.Self.HPPercent()),
	)
	if err != nil || ret == nil || ret == lua.LNil {
		return s.Fallback.Decide(state, src)
	}
	d, ok := ParseDecision(ret.String())
	if !ok {
		return s.Fallback.Decide(state, src)
	}
	if d.Action == ActionSignature && !canSignature {
		return s.Fallback.Decide(state, src)
	}
	return d
}

// ParseDecision parses "attack", "signature" or "spell:<element>".
//
// Postcondition: Returns (decision, true) for a well-formed answer naming a castable element.
func ParseDecision(s string) (Decision, bool) {
	verb, arg, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ":")
	switch verb {
	case "attack":
		return Attack, true
	case "signature":
		return Decision{Action: ActionSignature}, true
	case "spell":
		e, err := element.Parse(arg)
		if err != nil || e == element.None {
			return Decision{}, false
		}
		return Decision{Action: ActionSpell, Element: e}, true
	default:
		return Decision{}, false
	}
}
