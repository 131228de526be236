// Package levels holds the embedded level files. Levels are ordered by file
// name; the position in that order is the scene index.
package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrLevelIndex = errors.New("levels: index out of range")

type Level struct {
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Spawn  Point   `json:"spawn"`
	Blocks []Block `json:"blocks"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Block is an axis-aligned solid. X and Y are the top-left corner in pixels.
// Tag is the collision category name; an empty tag is hostile.
type Block struct {
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	W         float64    `json:"w"`
	H         float64    `json:"h"`
	Tag       string     `json:"tag,omitempty"`
	Color     string     `json:"color,omitempty"`
	Oscillate *Oscillate `json:"oscillate,omitempty"`
}

// Oscillate moves a block back and forth along (MoveX, MoveY) once per Period
// seconds.
type Oscillate struct {
	MoveX  float64 `json:"move_x"`
	MoveY  float64 `json:"move_y"`
	Period float64 `json:"period"`
}

// Names returns the embedded level file names in scene order.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".json" {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func Count() int {
	return len(Names())
}

// Load returns the level at scene index i.
func Load(i int) (*Level, error) {
	names := Names()
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("%w: %d of %d", ErrLevelIndex, i, len(names))
	}
	return LoadLevelFromFS(names[i])
}

func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level %q: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %q: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return &lvl, nil
}

// Validate checks that the level has a playable area and a finish pad.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	finish := false
	for i, b := range l.Blocks {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("block %d: width and height must be positive", i)
		}
		if strings.EqualFold(strings.TrimSpace(b.Tag), "finish") {
			finish = true
		}
	}
	if !finish {
		return fmt.Errorf("no finish block")
	}
	return nil
}
