package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RocketFile is the prefab the level loader builds the player rocket from.
const RocketFile = "rocket.yaml"

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

type RocketSpec struct {
	Name           string          `yaml:"name"`
	RotationRate   float64         `yaml:"rotation_rate"`
	Thrust         float64         `yaml:"thrust"`
	LevelLoadDelay float64         `yaml:"level_load_delay"`
	Body           BodySpec        `yaml:"body"`
	Color          YAMLColor       `yaml:"color"`
	Clips          ClipsSpec       `yaml:"clips"`
	Audio          []AudioSpec     `yaml:"audio"`
	Particles      ParticlesSpec   `yaml:"particles"`
	Emitters       []EmitterSpec   `yaml:"emitters"`
	RenderLayer    RenderLayerSpec `yaml:"render_layer"`
}

func LoadRocketSpec() (RocketSpec, error) {
	spec, err := LoadSpec[RocketSpec](RocketFile)
	if err != nil {
		return spec, err
	}
	if err := spec.Validate(); err != nil {
		return spec, fmt.Errorf("prefabs: %s: %w", RocketFile, err)
	}
	return spec, nil
}

// Validate checks the contract the controller relies on: non-negative
// tunables and clip/emitter names that resolve to declared entries.
func (s RocketSpec) Validate() error {
	if s.RotationRate < 0 || s.Thrust < 0 || s.LevelLoadDelay < 0 {
		return fmt.Errorf("rotation_rate, thrust and level_load_delay must be non-negative")
	}
	if s.Body.Width <= 0 || s.Body.Height <= 0 {
		return fmt.Errorf("body width and height must be positive")
	}

	clips := make(map[string]bool, len(s.Audio))
	for _, a := range s.Audio {
		clips[a.Name] = true
	}
	for _, name := range []string{s.Clips.Thrust, s.Clips.Death, s.Clips.Success} {
		if !clips[name] {
			return fmt.Errorf("clip %q is not declared under audio", name)
		}
	}

	emitters := make(map[string]bool, len(s.Emitters))
	for _, e := range s.Emitters {
		emitters[e.Name] = true
	}
	for _, name := range []string{s.Particles.Engine, s.Particles.Death, s.Particles.Success} {
		if !emitters[name] {
			return fmt.Errorf("emitter %q is not declared under emitters", name)
		}
	}
	return nil
}

type BodySpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type ClipsSpec struct {
	Thrust  string `yaml:"thrust"`
	Death   string `yaml:"death"`
	Success string `yaml:"success"`
}

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Cue    string  `yaml:"cue"`
	Volume float64 `yaml:"volume"`
}

type ParticlesSpec struct {
	Engine  string `yaml:"engine"`
	Death   string `yaml:"death"`
	Success string `yaml:"success"`
}

type EmitterSpec struct {
	Name     string    `yaml:"name"`
	Loop     bool      `yaml:"loop"`
	Duration int       `yaml:"duration_frames"`
	Color    YAMLColor `yaml:"color"`
}

type RenderLayerSpec struct {
	Index int `yaml:"index"`
}

type YAMLColor struct {
	color.RGBA
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

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.RGBA = color.RGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
