// Package assets loads the sprite sheet used to draw the runner.
//
// Every sprite has a size in world units, which the simulation uses for
// collision and despawn checks, and glyph art, which the renderer draws.
// Loading never fails outright: a sprite that cannot be used is replaced by a
// deterministic placeholder and the problem is recorded on the Sheet.
package assets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/puku-runner/internal/core"
)

//go:embed sprites.yaml
var defaultSheetYAML []byte

// Number of run animation frames and obstacle variants the game expects.
const (
	RunFrames        = 3
	ObstacleVariants = 6
)

// Sprite is one drawable image.
type Sprite struct {
	Name   string   `yaml:"name"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
	Color  string   `yaml:"color"`
	Art    []string `yaml:"art"`

	placeholder bool
}

// Tint returns the sprite's color.
func (s Sprite) Tint() core.Color {
	return core.ParseColor(s.Color)
}

// IsPlaceholder reports whether the sprite stands in for a broken one.
func (s Sprite) IsPlaceholder() bool {
	return s.placeholder
}

// ArtSize returns the art's width and height in cells.
func (s Sprite) ArtSize() (int, int) {
	w := 0
	for _, row := range s.Art {
		w = core.Max(w, len([]rune(row)))
	}
	return w, len(s.Art)
}

// validate reports why the sprite cannot be drawn or collided with.
func (s Sprite) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("size %.0fx%.0f must be positive", s.Width, s.Height)
	}
	if len(s.Art) == 0 {
		return fmt.Errorf("no art")
	}
	return nil
}

// Placeholder returns the stand-in sprite for the given name and world size.
// Its art is a magenta block of '?' roughly one cell per 10x18 world units.
func Placeholder(name string, width, height float64) Sprite {
	if width <= 0 {
		width = 50
	}
	if height <= 0 {
		height = 50
	}
	cols := core.Max(int(width/10), 1)
	rows := core.Max(int(height/18), 1)

	art := make([]string, rows)
	for i := range art {
		row := make([]rune, cols)
		for j := range row {
			row[j] = '?'
		}
		art[i] = string(row)
	}

	return Sprite{
		Name:        name,
		Width:       width,
		Height:      height,
		Color:       "magenta",
		Art:         art,
		placeholder: true,
	}
}

// CharacterSprites holds the character's animation frames.
type CharacterSprites struct {
	Run  []Sprite `yaml:"run"`
	Jump Sprite   `yaml:"jump"`
	Duck Sprite   `yaml:"duck"`
}

// CoinSprites holds one sprite per coin tier.
type CoinSprites struct {
	Ordinary Sprite `yaml:"ordinary"`
	Premium  Sprite `yaml:"premium"`
}

// Sheet is the complete set of sprites.
type Sheet struct {
	Character  CharacterSprites `yaml:"character"`
	Obstacles  []Sprite         `yaml:"obstacles"`
	Coins      CoinSprites      `yaml:"coins"`
	Airplane   Sprite           `yaml:"airplane"`
	Background Sprite           `yaml:"background"`
	Title      Sprite           `yaml:"title"`
	Ending     Sprite           `yaml:"ending"`

	// Problems lists every sprite that was replaced by a placeholder.
	Problems []string `yaml:"-"`
}

// Default returns the embedded sprite sheet.
func Default() *Sheet {
	sheet, err := Parse(defaultSheetYAML)
	if err != nil {
		sheet = &Sheet{}
		sheet.Problems = append(sheet.Problems, fmt.Sprintf("embedded sheet: %v", err))
		sheet.repair()
	}
	return sheet
}

// Load reads a sprite sheet from a YAML file.
// On error the embedded sheet is returned along with the error.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("assets: cannot read %s: %w", path, err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("assets: cannot parse %s: %w", path, err)
	}
	return sheet, nil
}

// Parse decodes a sprite sheet and replaces unusable sprites with placeholders.
func Parse(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, err
	}
	sheet.repair()
	return &sheet, nil
}

// repair substitutes placeholders so every slot the game uses is drawable.
func (s *Sheet) repair() {
	for len(s.Character.Run) < RunFrames {
		s.Character.Run = append(s.Character.Run, Sprite{})
	}
	for i := range s.Character.Run {
		s.fix(&s.Character.Run[i], fmt.Sprintf("run_%d", i+1), 120, 120)
	}
	s.fix(&s.Character.Jump, "jump", 120, 120)
	s.fix(&s.Character.Duck, "duck", 120, 60)

	for len(s.Obstacles) < ObstacleVariants {
		s.Obstacles = append(s.Obstacles, Sprite{})
	}
	for i := range s.Obstacles {
		s.fix(&s.Obstacles[i], fmt.Sprintf("obstacle_%d", i+1), 50, 80)
	}

	s.fix(&s.Coins.Ordinary, "coin", 30, 30)
	s.fix(&s.Coins.Premium, "coin2", 40, 40)
	s.fix(&s.Airplane, "airplane_banner", 300, 150)
	s.fix(&s.Background, "background", 800, 450)
	s.fix(&s.Title, "start_screen", 800, 450)
	s.fix(&s.Ending, "end_screen", 800, 450)
}

// fix replaces an invalid sprite in place.
func (s *Sheet) fix(sp *Sprite, name string, width, height float64) {
	if sp.Name == "" {
		sp.Name = name
	}
	err := sp.validate()
	if err == nil {
		return
	}
	s.Problems = append(s.Problems, fmt.Sprintf("%s: %v", sp.Name, err))

	w, h := sp.Width, sp.Height
	if w <= 0 {
		w = width
	}
	if h <= 0 {
		h = height
	}
	*sp = Placeholder(sp.Name, w, h)
}
