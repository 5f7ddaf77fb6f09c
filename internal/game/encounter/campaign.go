package encounter

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/arena/internal/game/element"
	"github.com/cory-johannsen/arena/internal/game/npc"
)

// Phase is one encounter of a campaign: a named roster of enemy spawns.
type Phase struct {
	Name    string      `yaml:"name"`
	Enemies []npc.Spawn `yaml:"enemies"`
}

// Campaign is the ordered list of phases the player fights through.
type Campaign struct {
	Phases []Phase `yaml:"phases"`
}

// Validate checks that the campaign has at least one phase and that every
// phase is named and has at least one enemy with a template.
func (c *Campaign) Validate() error {
	var errs []string
	if len(c.Phases) == 0 {
		errs = append(errs, "campaign must have at least one phase")
	}
	for i, ph := range c.Phases {
		if ph.Name == "" {
			errs = append(errs, fmt.Sprintf("phase %d: name must not be empty", i+1))
		}
		if len(ph.Enemies) == 0 {
			errs = append(errs, fmt.Sprintf("phase %d: must list at least one enemy", i+1))
		}
		for j, s := range ph.Enemies {
			if s.Template == "" {
				errs = append(errs, fmt.Sprintf("phase %d enemy %d: template must not be empty", i+1, j+1))
			}
		}
	}
	if len(errs) > 0 {
		return errors.New("campaign: " + strings.Join(errs, "; "))
	}
	return nil
}

// DefaultCampaign returns the regular phase (Goblin, Orc, Harpy) followed by
// the final phase (Dragon King, Golem, Wraith).
func DefaultCampaign() *Campaign {
	return &Campaign{
		Phases: []Phase{
			{
				Name: "regular",
				Enemies: []npc.Spawn{
					{Template: npc.TemplateEnemy, Name: "Goblin", Element: element.Earth},
					{Template: npc.TemplateEnemy, Name: "Orc", Element: element.Water},
					{Template: npc.TemplateEnemy, Name: "Harpy", Element: element.Air},
				},
			},
			{
				Name: "final",
				Enemies: []npc.Spawn{
					{Template: npc.TemplateDragonKing},
					{Template: npc.TemplateCrony, Name: "Golem", Element: element.Earth},
					{Template: npc.TemplateCrony, Name: "Wraith", Element: element.Air},
				},
			},
		},
	}
}

// LoadCampaignFromBytes parses and validates a campaign from YAML.
func LoadCampaignFromBytes(data []byte) (*Campaign, error) {
	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing campaign YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCampaign reads the campaign file at path.
func LoadCampaign(path string) (*Campaign, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading campaign %q: %w", path, err)
	}
	c, err := LoadCampaignFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return c, nil
}
