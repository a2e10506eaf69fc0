package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	TuningFile   = "tuning.yaml"
	MessagesFile = "messages.yaml"
)

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

// TuningSpec is the designer-facing description of one run.
type TuningSpec struct {
	Name     string              `yaml:"name"`
	World    WorldSpec           `yaml:"world"`
	Run      RunSpec             `yaml:"run"`
	Player   PlayerSpec          `yaml:"player"`
	Speed    SpeedSpec           `yaml:"speed"`
	Spawn    SpawnSpec           `yaml:"spawn"`
	Kinds    map[string]KindSpec `yaml:"kinds"`
	Magnet   MagnetSpec          `yaml:"magnet"`
	PowerUps PowerUpsSpec        `yaml:"power_ups"`
	Toast    ToastSpec           `yaml:"toast"`
}

func LoadTuningSpec(filename string) (*TuningSpec, error) {
	if filename == "" {
		filename = TuningFile
	}
	spec, err := LoadSpec[TuningSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type WorldSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Floor  float64 `yaml:"floor"`
}

type RunSpec struct {
	LengthSteps int `yaml:"length_steps"`
	NominalTPS  int `yaml:"nominal_tps"`
}

type PlayerSpec struct {
	X            float64    `yaml:"x"`
	Y            float64    `yaml:"y"`
	Width        float64    `yaml:"width"`
	Height       float64    `yaml:"height"`
	Gravity      float64    `yaml:"gravity"`
	JumpVelocity float64    `yaml:"jump_velocity"`
	Color        *YAMLColor `yaml:"color"`
}

type SpeedSpec struct {
	Initial   float64 `yaml:"initial"`
	RampEvery int     `yaml:"ramp_every"`
	RampStep  float64 `yaml:"ramp_step"`
	Script    string  `yaml:"script"`
}

type SpawnSpec struct {
	BaseInterval   int        `yaml:"base_interval"`
	AirborneBase   float64    `yaml:"airborne_base"`
	AirborneRange  float64    `yaml:"airborne_range"`
	ElevatedHeight float64    `yaml:"elevated_height"`
	Bands          []BandSpec `yaml:"bands"`
}

// BandSpec is one row of the cumulative spawn table.
type BandSpec struct {
	Kind  string  `yaml:"kind"`
	Upper float64 `yaml:"upper"`
}

type KindSpec struct {
	Width     float64    `yaml:"width"`
	Height    float64    `yaml:"height"`
	Points    int        `yaml:"points"`
	Color     *YAMLColor `yaml:"color"`
	Placement string     `yaml:"placement"`
}

type MagnetSpec struct {
	Window     float64 `yaml:"window"`
	Pull       float64 `yaml:"pull"`
	ExtraSpeed float64 `yaml:"extra_speed"`
}

type PowerUpsSpec struct {
	MultiplierSteps int `yaml:"multiplier_steps"`
	Multiplier      int `yaml:"multiplier"`
	AttractorSteps  int `yaml:"attractor_steps"`
}

type ToastSpec struct {
	EverySteps int `yaml:"every_steps"`
	DisplayMS  int `yaml:"display_ms"`
}

// MessageCatalog holds every piece of copy shown during and after a run.
type MessageCatalog struct {
	Toasts     []string      `yaml:"toasts"`
	InfoPoints []MessageSpec `yaml:"info_points"`
	Services   []ServiceSpec `yaml:"services"`
}

type MessageSpec struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

type ServiceSpec struct {
	Interest string `yaml:"interest"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
}

func LoadMessageCatalog() (*MessageCatalog, error) {
	spec, err := LoadSpec[MessageCatalog](MessagesFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Service returns the catalog entry for an interest, falling back to the
// last entry.
func (c *MessageCatalog) Service(interest string) (ServiceSpec, bool) {
	if c == nil || len(c.Services) == 0 {
		return ServiceSpec{}, false
	}
	for _, s := range c.Services {
		if s.Interest == interest {
			return s, true
		}
	}
	return c.Services[len(c.Services)-1], false
}

type YAMLColor struct {
	color.Color
}

// NRGBA returns the color as non-premultiplied RGBA. A nil receiver yields
// the fallback.
func (c *YAMLColor) NRGBA(fallback color.NRGBA) color.NRGBA {
	if c == nil || c.Color == nil {
		return fallback
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

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
