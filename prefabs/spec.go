// Package prefabs loads the embedded YAML specs and tengo scripts that
// describe the scene. Files on disk under prefabs/ override the embedded
// copies so they can be tweaked without a rebuild.
package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/cityfolio/grid"
	"github.com/milk9111/cityfolio/tileset"
)

// LoadSpec loads and unmarshals one YAML spec file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CitySpec describes the grid, the route, the day cycle, and the palette.
type CitySpec struct {
	Name    string      `yaml:"name"`
	Grid    GridSpec    `yaml:"grid"`
	Route   RouteSpec   `yaml:"route"`
	Day     DaySpec     `yaml:"day"`
	Palette PaletteSpec `yaml:"palette"`
}

type GridSpec struct {
	Size       int     `yaml:"size"`
	TileWidth  int     `yaml:"tile_width"`
	TileHeight int     `yaml:"tile_height"`
	ParkChance float64 `yaml:"park_chance"`
}

type RouteSpec struct {
	Start               grid.Cell   `yaml:"start"`
	End                 grid.Cell   `yaml:"end"`
	Waypoints           []grid.Cell `yaml:"waypoints"`
	CheckpointFractions []float64   `yaml:"checkpoint_fractions"`
}

type DaySpec struct {
	TicksPerDay int `yaml:"ticks_per_day"`
}

type PaletteSpec struct {
	Grass       *YAMLColor `yaml:"grass"`
	Road        *YAMLColor `yaml:"road"`
	Residential *YAMLColor `yaml:"residential"`
	Commercial  *YAMLColor `yaml:"commercial"`
	Industrial  *YAMLColor `yaml:"industrial"`
	Park        *YAMLColor `yaml:"park"`
	Highlight   *YAMLColor `yaml:"highlight"`
	Blocked     *YAMLColor `yaml:"blocked"`
	RiderBody   *YAMLColor `yaml:"rider_body"`
	RiderTrim   *YAMLColor `yaml:"rider_trim"`
}

// LoadCitySpec loads city.yaml and applies defaults.
func LoadCitySpec() (*CitySpec, error) {
	spec, err := LoadSpec[CitySpec]("city.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *CitySpec) validate() error {
	if s.Grid.Size <= 0 {
		s.Grid.Size = 15
	}
	if s.Grid.TileWidth <= 0 {
		s.Grid.TileWidth = 64
	}
	if s.Grid.TileHeight <= 0 {
		s.Grid.TileHeight = 32
	}
	if s.Day.TicksPerDay <= 0 {
		s.Day.TicksPerDay = 600
	}
	if len(s.Route.CheckpointFractions) == 0 {
		s.Route.CheckpointFractions = []float64{0.12, 0.3, 0.5, 0.7, 0.88}
	}
	cells := append([]grid.Cell{s.Route.Start, s.Route.End}, s.Route.Waypoints...)
	for _, c := range cells {
		if c.X < 0 || c.X >= s.Grid.Size || c.Y < 0 || c.Y >= s.Grid.Size {
			return fmt.Errorf("prefabs: city.yaml route cell %+v outside %d×%d grid", c, s.Grid.Size, s.Grid.Size)
		}
	}
	if s.Route.Start == s.Route.End {
		return fmt.Errorf("prefabs: city.yaml route start equals end")
	}
	return nil
}

// TilePalette resolves the palette spec into concrete colors, falling back
// to the built-in scheme wherever the YAML leaves a color out.
func (s *CitySpec) TilePalette() tileset.Palette {
	pick := func(c *YAMLColor, def color.Color) color.Color {
		if c == nil || c.Color == nil {
			return def
		}
		return c.Color
	}
	return tileset.Palette{
		Grass:       pick(s.Palette.Grass, color.NRGBA{R: 0x7b, G: 0xb6, B: 0x61, A: 0xff}),
		Road:        pick(s.Palette.Road, color.NRGBA{R: 0x8a, G: 0x85, B: 0x78, A: 0xff}),
		Residential: pick(s.Palette.Residential, color.NRGBA{R: 0xd9, G: 0x8e, B: 0x73, A: 0xff}),
		Commercial:  pick(s.Palette.Commercial, color.NRGBA{R: 0x5d, G: 0x8a, B: 0xa8, A: 0xff}),
		Industrial:  pick(s.Palette.Industrial, color.NRGBA{R: 0xa8, G: 0x9f, B: 0x5d, A: 0xff}),
		Park:        pick(s.Palette.Park, color.NRGBA{R: 0x3e, G: 0x7c, B: 0x3e, A: 0xff}),
		Highlight:   pick(s.Palette.Highlight, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66}),
		Blocked:     pick(s.Palette.Blocked, color.NRGBA{R: 0xd9, G: 0x3a, B: 0x3a, A: 0x66}),
		RiderBody:   pick(s.Palette.RiderBody, color.NRGBA{R: 0xe6, G: 0x4e, B: 0x2e, A: 0xff}),
		RiderTrim:   pick(s.Palette.RiderTrim, color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}),
	}
}

// RiderSpec tunes the cyclist.
type RiderSpec struct {
	Name  string  `yaml:"name"`
	Speed float64 `yaml:"speed"` // cells per second
}

// LoadRiderSpec loads rider.yaml.
func LoadRiderSpec() (*RiderSpec, error) {
	spec, err := LoadSpec[RiderSpec]("rider.yaml")
	if err != nil {
		return nil, err
	}
	if spec.Speed <= 0 {
		spec.Speed = 2.5
	}
	return &spec, nil
}

// CardSpec is one portfolio card shown while the rider pauses.
type CardSpec struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Link  string `yaml:"link"`
}

// BodyLines splits the card body for line-by-line layout.
func (c CardSpec) BodyLines() []string {
	return strings.Split(strings.TrimRight(c.Body, "\n"), "\n")
}

// PortfolioSpec is the checkpoint card deck plus the finish card.
type PortfolioSpec struct {
	Cards  []CardSpec `yaml:"cards"`
	Finish CardSpec   `yaml:"finish"`
}

// LoadPortfolioSpec loads portfolio.yaml.
func LoadPortfolioSpec() (*PortfolioSpec, error) {
	spec, err := LoadSpec[PortfolioSpec]("portfolio.yaml")
	if err != nil {
		return nil, err
	}
	if len(spec.Cards) == 0 {
		return nil, fmt.Errorf("prefabs: portfolio.yaml defines no cards")
	}
	return &spec, nil
}

// Card returns the card for a checkpoint ordinal, clamping past the deck end
// so extra checkpoints reuse the last card rather than crash.
func (p *PortfolioSpec) Card(ordinal int) CardSpec {
	if p == nil || len(p.Cards) == 0 {
		return CardSpec{}
	}
	if ordinal < 0 {
		ordinal = 0
	}
	if ordinal >= len(p.Cards) {
		ordinal = len(p.Cards) - 1
	}
	return p.Cards[ordinal]
}

// YAMLColor parses "#rrggbb" or "#rrggbbaa" scalars.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
