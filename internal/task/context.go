package task

import "strings"

// Context carries the world/agent state a planner may consult. Every field is
// optional; planners degrade gracefully when parts are missing.
type Context struct {
	Inventory any `json:"inventory,omitempty"`

	NPC         *NPCState    `json:"npc,omitempty"`
	Environment *Environment `json:"environment,omitempty"`

	Biome      string `json:"biome,omitempty"`
	Weather    string `json:"weather,omitempty"`
	Dimension  string `json:"dimension,omitempty"`
	TimeOfDay  *int   `json:"timeOfDay,omitempty"`
	LightLevel *int   `json:"lightLevel,omitempty"`

	Position *Vec3 `json:"position,omitempty"`

	HungerState    *HungerState `json:"hungerState,omitempty"`
	IsThunderstorm bool         `json:"isThunderstorm,omitempty"`
}

// Items returns the canonical inventory view; nil-safe.
func (c *Context) Items() []Item {
	if c == nil {
		return nil
	}
	return ExtractInventory(c.Inventory)
}

// BiomeName prefers the explicit biome field, then the environment block.
func (c *Context) BiomeName() string {
	if c == nil {
		return ""
	}
	if b := strings.TrimSpace(c.Biome); b != "" {
		return b
	}
	if c.Environment != nil {
		return strings.TrimSpace(c.Environment.Biome)
	}
	return ""
}

// WeatherName prefers the explicit weather field, then the environment block.
func (c *Context) WeatherName() string {
	if c == nil {
		return ""
	}
	if w := strings.TrimSpace(c.Weather); w != "" {
		return w
	}
	if c.Environment != nil {
		return strings.TrimSpace(c.Environment.Weather)
	}
	return ""
}

// DimensionName prefers the explicit dimension field, then the environment block.
// Empty means "unknown", which planners treat as the Overworld.
func (c *Context) DimensionName() string {
	if c == nil {
		return ""
	}
	if d := strings.TrimSpace(c.Dimension); d != "" {
		return d
	}
	if c.Environment != nil {
		return strings.TrimSpace(c.Environment.Dimension)
	}
	return ""
}

// Hostiles lists nearby entities flagged hostile.
func (c *Context) Hostiles() []Entity {
	if c == nil || c.Environment == nil {
		return nil
	}
	var out []Entity
	for _, e := range c.Environment.Entities {
		if e.Hostile {
			out = append(out, e)
		}
	}
	return out
}

type NPCState struct {
	Name              string   `json:"name,omitempty"`
	Health            *float64 `json:"health,omitempty"`
	PersonalityTraits []string `json:"personalityTraits,omitempty"`
}

type Environment struct {
	Biome     string   `json:"biome,omitempty"`
	Weather   string   `json:"weather,omitempty"`
	Dimension string   `json:"dimension,omitempty"`
	Entities  []Entity `json:"entities,omitempty"`
	Hazards   []string `json:"hazards,omitempty"`
}

type Entity struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	Position *Vec3    `json:"position,omitempty"`
	Distance *float64 `json:"distance,omitempty"`
	Hostile  bool     `json:"hostile,omitempty"`
}

type HungerState struct {
	Hunger     int     `json:"hunger"`
	Saturation float64 `json:"saturation"`
}
