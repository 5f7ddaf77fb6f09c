// Package npc provides enemy templates and live enemy instances.
package npc

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/ai"
	"github.com/cory-johannsen/arena/internal/game/dice"
	"github.com/cory-johannsen/arena/internal/game/element"
)

// Built-in template IDs.
const (
	TemplateEnemy      = "enemy"
	TemplateCrony      = "crony"
	TemplateDragonKing = "dragon_king"
)

// Template defines a reusable enemy stat block loaded from YAML.
type Template struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Element     element.Element `yaml:"element"`
	Level       int             `yaml:"level"`
	MaxHP       int             `yaml:"max_hp"`
	MaxMP       int             `yaml:"max_mp"`
	Strength    int             `yaml:"strength"`
	Defense     int             `yaml:"defense"`
	Speed       int             `yaml:"speed"`
	// SpeedRoll is a dice expression (e.g. "1d10+4") rolled once per instance.
	// When set it replaces Speed.
	SpeedRoll string `yaml:"speed_roll"`
	ExpReward int    `yaml:"exp_reward"`
	// Policy names an ai.Registry policy; empty means "standard".
	Policy    string        `yaml:"policy"`
	Signature *ai.Signature `yaml:"signature"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, Level >= 1,
// MaxHP >= 1, every other stat is non-negative, SpeedRoll (if set) parses, and
// Signature (if set) is named with a positive damage percentage.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	if t.Level < 1 {
		return fmt.Errorf("npc template %q: level must be >= 1", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("npc template %q: max_hp must be >= 1", t.ID)
	}
	if t.MaxMP < 0 || t.Strength < 0 || t.Defense < 0 || t.Speed < 0 || t.ExpReward < 0 {
		return fmt.Errorf("npc template %q: stats must not be negative", t.ID)
	}
	if t.SpeedRoll != "" {
		if _, err := dice.Parse(t.SpeedRoll); err != nil {
			return fmt.Errorf("npc template %q: speed_roll: %w", t.ID, err)
		}
	}
	if sig := t.Signature; sig != nil {
		if sig.Name == "" {
			return fmt.Errorf("npc template %q: signature name must not be empty", t.ID)
		}
		if sig.Cost < 0 || sig.DamagePct < 1 {
			return fmt.Errorf("npc template %q: signature %q needs cost >= 0 and damage_pct >= 1", t.ID, sig.Name)
		}
	}
	return nil
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
// A missing level defaults to 1.
//
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if tmpl.Level == 0 {
		tmpl.Level = 1
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// DefaultTemplates returns the built-in enemy, crony and Dragon King blocks.
func DefaultTemplates() []*Template {
	return []*Template{
		{
			ID:        TemplateEnemy,
			Name:      "Enemy",
			Level:     1,
			MaxHP:     80,
			MaxMP:     50,
			Strength:  15,
			Defense:   5,
			SpeedRoll: "1d10+4",
			ExpReward: 50,
			Policy:    ai.PolicyStandard,
		},
		{
			ID:        TemplateCrony,
			Name:      "Crony",
			Level:     1,
			MaxHP:     90,
			MaxMP:     40,
			Strength:  18,
			Defense:   6,
			Speed:     10,
			ExpReward: 70,
			Policy:    ai.PolicyStandard,
		},
		{
			ID:        TemplateDragonKing,
			Name:      "Dragon King",
			Element:   element.Fire,
			Level:     1,
			MaxHP:     150,
			MaxMP:     150,
			Strength:  35,
			Defense:   15,
			Speed:     20,
			ExpReward: 100,
			Policy:    ai.PolicySignature,
			Signature: &ai.Signature{Name: "Inferno", Element: element.Fire, Cost: 30, DamagePct: 120},
		},
	}
}
