package ai

import (
	"fmt"
	"strings"
)

// Policy names understood by Registry.PolicyFor.
const (
	PolicyStandard  = "standard"
	PolicySignature = "signature"
	// PolicyScriptPrefix selects a Lua hook: "script:<hook>".
	PolicyScriptPrefix = "script:"
)

// Registry indexes Policies by name.
//
// Invariant: each name is registered at most once.
type Registry struct {
	policies map[string]Policy
	caller   ScriptCaller
	setID    string
}

// NewRegistry returns a Registry holding the built-in standard and signature
// policies. caller may be nil, in which case "script:" policies are unavailable.
func NewRegistry(caller ScriptCaller, setID string) *Registry {
	r := &Registry{
		policies: make(map[string]Policy),
		caller:   caller,
		setID:    setID,
	}
	for name, p := range map[string]Policy{PolicyStandard: Standard{}, PolicySignature: SignatureFirst{}} {
		_ = r.Register(name, p)
	}
	return r
}

// Register stores p under name.
//
// Postcondition: returns error on name collision.
func (r *Registry) Register(name string, p Policy) error {
	if _, exists := r.policies[name]; exists {
		return fmt.Errorf("ai.Registry: policy %q already registered", name)
	}
	r.policies[name] = p
	return nil
}

// PolicyFor returns the Policy registered under name. Names of the form
// "script:<hook>" build a Scripted policy on first use. An empty name is "standard".
func (r *Registry) PolicyFor(name string) (Policy, error) {
	if name == "" {
		name = PolicyStandard
	}
	if p, ok := r.policies[name]; ok {
		return p, nil
	}
	if hook, ok := strings.CutPrefix(name, PolicyScriptPrefix); ok {
		if hook == "" {
			return nil, fmt.Errorf("ai.Registry: policy %q names no hook", name)
		}
		if r.caller == nil {
			return nil, fmt.Errorf("ai.Registry: policy %q requires scripting, which is disabled", name)
		}
		p := NewScripted(r.caller, r.setID, hook)
		r.policies[name] = p
		return p, nil
	}
	return nil, fmt.Errorf("ai.Registry: unknown policy %q", name)
}
