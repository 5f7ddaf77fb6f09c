package npc

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// Spawn describes one roster entry: which template, under which name and element.
type Spawn struct {
	Template string          `yaml:"template"`
	Name     string          `yaml:"name"`
	Element  element.Element `yaml:"element"`
	// Policy overrides the template's policy when non-empty.
	Policy string `yaml:"policy"`
}

// Registry indexes templates by ID and spawns instances from them.
type Registry struct {
	templates map[string]*Template
	policies  *ai.Registry
	roller    *dice.Roller
}

// NewRegistry creates a Registry seeded with DefaultTemplates.
//
// Precondition: policies and roller must be non-nil.
func NewRegistry(policies *ai.Registry, roller *dice.Roller) *Registry {
	r := &Registry{
		templates: make(map[string]*Template),
		policies:  policies,
		roller:    roller,
	}
	for _, t := range DefaultTemplates() {
		r.templates[t.ID] = t
	}
	return r
}

// Add stores tmpl, replacing any template with the same ID.
//
// Postcondition: returns an error if tmpl is invalid.
func (r *Registry) Add(tmpl *Template) error {
	if tmpl == nil {
		return fmt.Errorf("npc.Registry.Add: tmpl must not be nil")
	}
	if err := tmpl.Validate(); err != nil {
		return err
	}
	r.templates[tmpl.ID] = tmpl
	return nil
}

// Template returns the template with the given ID.
func (r *Registry) Template(id string) (*Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// IDs returns every registered template ID in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Spawn creates a live instance for s. A template with a SpeedRoll rolls it
// once for this instance.
//
// Postcondition: Returns an error if the template or policy is unknown.
func (r *Registry) Spawn(s Spawn) (*Instance, error) {
	tmpl, ok := r.templates[s.Template]
	if !ok {
		return nil, fmt.Errorf("npc.Registry.Spawn: unknown template %q", s.Template)
	}
	name := s.Policy
	if name == "" {
		name = tmpl.Policy
	}
	policy, err := r.policies.PolicyFor(name)
	if err != nil {
		return nil, fmt.Errorf("npc.Registry.Spawn %q: %w", s.Template, err)
	}
	speed := tmpl.Speed
	if tmpl.SpeedRoll != "" {
		res, err := r.roller.RollExpr(tmpl.SpeedRoll)
		if err != nil {
			return nil, fmt.Errorf("npc.Registry.Spawn %q: %w", s.Template, err)
		}
		speed = max(0, res.Total())
	}
	return NewInstance(tmpl, s.Name, s.Element, speed, policy), nil
}

// SpawnAll spawns every entry in order.
//
// Postcondition: Returns all instances or the first error.
func (r *Registry) SpawnAll(spawns []Spawn) ([]*Instance, error) {
	out := make([]*Instance, 0, len(spawns))
	for _, s := range spawns {
		inst, err := r.Spawn(s)
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
	return out, nil
}
