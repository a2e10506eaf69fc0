package ecs

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/milk9111/proteinrun/common"
	"github.com/milk9111/proteinrun/ecs/component"
	"github.com/milk9111/proteinrun/prefabs"
)

// Config is the validated tuning of one run.
type Config struct {
	WorldWidth  float64
	WorldHeight float64
	Floor       float64

	RunSteps   int
	NominalTPS int

	PlayerX      float64
	PlayerY      float64
	PlayerWidth  float64
	PlayerHeight float64
	PlayerColor  color.NRGBA
	Gravity      float64
	JumpVelocity float64

	InitialSpeed float64
	RampEvery    int
	RampStep     float64
	SpeedScript  string

	BaseInterval   int
	AirborneBase   float64
	AirborneRange  float64
	ElevatedHeight float64
	SpawnTable     component.SpawnTable
	Kinds          map[component.Kind]component.KindSpec

	MagnetWindow     float64
	MagnetPull       float64
	MagnetExtraSpeed float64

	MultiplierSteps int
	Multiplier      int
	AttractorSteps  int

	ToastEvery    int
	ToastDuration time.Duration
	Toasts        []string
	InfoMessages  []component.InfoMessage
}

func DefaultConfig() Config {
	return Config{
		WorldWidth:  800,
		WorldHeight: 500,
		Floor:       500,

		RunSteps:   2700,
		NominalTPS: 60,

		PlayerX:      50,
		PlayerY:      200,
		PlayerWidth:  30,
		PlayerHeight: 30,
		PlayerColor:  color.NRGBA{R: 0x00, G: 0xf0, B: 0xff, A: 0xff},
		Gravity:      0.6,
		JumpVelocity: -12,

		InitialSpeed: 5,
		RampEvery:    500,
		RampStep:     0.5,

		BaseInterval:   90,
		AirborneBase:   100,
		AirborneRange:  80,
		ElevatedHeight: 120,
		SpawnTable: component.SpawnTable{
			{Upper: 0.05, Kind: component.KindInfo},
			{Upper: 0.32, Kind: component.KindPeptide},
			{Upper: 0.52, Kind: component.KindProtein},
			{Upper: 0.60, Kind: component.KindMassSpec},
			{Upper: 0.75, Kind: component.KindContaminant},
			{Upper: 0.90, Kind: component.KindNoise},
			{Upper: 0.95, Kind: component.KindBoost},
			{Upper: 1.00, Kind: component.KindLockOn},
		},
		Kinds: map[component.Kind]component.KindSpec{
			component.KindInfo:        {Width: 25, Height: 25, Color: hex(0xff0099), Placement: component.PlacementElevated},
			component.KindPeptide:     {Width: 24, Height: 24, Points: 3, Color: hex(0x7000ff), Placement: component.PlacementAirborne},
			component.KindProtein:     {Width: 20, Height: 20, Points: 5, Color: hex(0x00f0ff), Placement: component.PlacementAirborne},
			component.KindMassSpec:    {Width: 16, Height: 16, Points: 10, Color: hex(0xffcc00), Placement: component.PlacementAirborne},
			component.KindContaminant: {Width: 30, Height: 30, Points: -3, Color: hex(0xff0000), Placement: component.PlacementGround},
			component.KindNoise:       {Width: 25, Height: 25, Points: -5, Color: hex(0x555555), Placement: component.PlacementGround},
			component.KindBoost:       {Width: 25, Height: 25, Color: hex(0x00ff00), Placement: component.PlacementElevated},
			component.KindLockOn:      {Width: 25, Height: 25, Color: hex(0x00ff00), Placement: component.PlacementElevated},
		},

		MagnetWindow:     300,
		MagnetPull:       0.1,
		MagnetExtraSpeed: 2,

		MultiplierSteps: 300,
		Multiplier:      2,
		AttractorSteps:  180,

		ToastEvery:    600,
		ToastDuration: 2500 * time.Millisecond,
		Toasts: []string{
			"Did you know? Mass spec can identify thousands of proteins in one run.",
			"Tip: contaminants skew your results. Avoid them!",
		},
		InfoMessages: []component.InfoMessage{
			{Title: "Sample prep", Body: "Clean samples mean cleaner spectra."},
		},
	}
}

func hex(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Validate reports the first configuration problem found.
func (c Config) Validate() error {
	if c.WorldWidth <= 0 || c.WorldHeight <= 0 || c.Floor <= 0 {
		return fmt.Errorf("ecs: world %gx%g floor %g: %w", c.WorldWidth, c.WorldHeight, c.Floor, ErrWorld)
	}
	if c.PlayerWidth <= 0 || c.PlayerHeight <= 0 || c.PlayerHeight > c.Floor {
		return fmt.Errorf("ecs: player %gx%g: %w", c.PlayerWidth, c.PlayerHeight, ErrWorld)
	}
	if c.RunSteps <= 0 {
		return fmt.Errorf("ecs: run length %d: %w", c.RunSteps, ErrRunLength)
	}
	if c.BaseInterval <= 0 {
		return fmt.Errorf("ecs: base interval %d: %w", c.BaseInterval, ErrSpawnInterval)
	}
	if c.InitialSpeed <= 0 || math.IsNaN(c.InitialSpeed) || math.IsInf(c.InitialSpeed, 0) {
		return fmt.Errorf("ecs: initial speed %g: %w", c.InitialSpeed, ErrSpawnInterval)
	}
	if c.RampEvery <= 0 {
		return fmt.Errorf("ecs: ramp every %d: %w", c.RampEvery, ErrSpeedCurve)
	}
	if err := c.validateSpawnTable(); err != nil {
		return err
	}
	for _, kind := range component.Kinds() {
		spec, ok := c.Kinds[kind]
		if !ok {
			return fmt.Errorf("ecs: kind %s missing: %w", kind, ErrKindSpec)
		}
		if spec.Width <= 0 || spec.Height <= 0 {
			return fmt.Errorf("ecs: kind %s size %gx%g: %w", kind, spec.Width, spec.Height, ErrKindSpec)
		}
	}
	if c.MultiplierSteps <= 0 || c.AttractorSteps <= 0 || c.Multiplier < 1 {
		return fmt.Errorf("ecs: power-up durations %d/%d multiplier %d: %w",
			c.MultiplierSteps, c.AttractorSteps, c.Multiplier, ErrKindSpec)
	}
	if c.ToastEvery <= 0 || len(c.Toasts) == 0 {
		return fmt.Errorf("ecs: toasts every %d (%d messages): %w", c.ToastEvery, len(c.Toasts), ErrCatalog)
	}
	if len(c.InfoMessages) == 0 {
		return fmt.Errorf("ecs: info messages: %w", ErrCatalog)
	}
	return nil
}

// validateSpawnTable checks that the bands are strictly increasing and
// partition [0,1) exactly.
func (c Config) validateSpawnTable() error {
	if len(c.SpawnTable) == 0 {
		return fmt.Errorf("ecs: spawn table empty: %w", ErrSpawnTable)
	}
	prev := 0.0
	for i, band := range c.SpawnTable {
		if !band.Kind.Valid() {
			return fmt.Errorf("ecs: spawn band %d kind %d: %w", i, band.Kind, ErrSpawnTable)
		}
		if band.Upper <= prev || band.Upper > 1 {
			return fmt.Errorf("ecs: spawn band %d upper %g after %g: %w", i, band.Upper, prev, ErrSpawnTable)
		}
		prev = band.Upper
	}
	if prev != 1 {
		return fmt.Errorf("ecs: spawn table ends at %g: %w", prev, ErrSpawnTable)
	}
	return nil
}

// ConfigFromSpec builds a validated config from the YAML tuning and message
// catalog. Missing optional fields keep their defaults.
func ConfigFromSpec(spec *prefabs.TuningSpec, catalog *prefabs.MessageCatalog) (Config, error) {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg, cfg.Validate()
	}

	if spec.World.Width != 0 {
		cfg.WorldWidth = spec.World.Width
	}
	if spec.World.Height != 0 {
		cfg.WorldHeight = spec.World.Height
	}
	if spec.World.Floor != 0 {
		cfg.Floor = spec.World.Floor
	}
	cfg.RunSteps = spec.Run.LengthSteps
	if spec.Run.NominalTPS > 0 {
		cfg.NominalTPS = spec.Run.NominalTPS
	}

	p := spec.Player
	cfg.PlayerX, cfg.PlayerY = p.X, p.Y
	cfg.PlayerWidth, cfg.PlayerHeight = p.Width, p.Height
	cfg.PlayerColor = p.Color.NRGBA(cfg.PlayerColor)
	cfg.Gravity, cfg.JumpVelocity = p.Gravity, p.JumpVelocity

	cfg.InitialSpeed = spec.Speed.Initial
	cfg.RampEvery = spec.Speed.RampEvery
	cfg.RampStep = spec.Speed.RampStep
	cfg.SpeedScript = spec.Speed.Script

	cfg.BaseInterval = spec.Spawn.BaseInterval
	cfg.AirborneBase = spec.Spawn.AirborneBase
	cfg.AirborneRange = spec.Spawn.AirborneRange
	cfg.ElevatedHeight = spec.Spawn.ElevatedHeight

	cfg.SpawnTable = make(component.SpawnTable, 0, len(spec.Spawn.Bands))
	for _, band := range spec.Spawn.Bands {
		kind, ok := component.ParseKind(band.Kind)
		if !ok {
			return Config{}, fmt.Errorf("ecs: spawn band kind %q: %w", band.Kind, ErrSpawnTable)
		}
		cfg.SpawnTable = append(cfg.SpawnTable, component.Band{Upper: band.Upper, Kind: kind})
	}

	kinds := make(map[component.Kind]component.KindSpec, len(spec.Kinds))
	for name, ks := range spec.Kinds {
		kind, ok := component.ParseKind(name)
		if !ok {
			return Config{}, fmt.Errorf("ecs: kind %q: %w", name, ErrKindSpec)
		}
		placement, ok := component.ParsePlacement(ks.Placement)
		if !ok {
			return Config{}, fmt.Errorf("ecs: kind %s placement %q: %w", name, ks.Placement, ErrKindSpec)
		}
		fallback := cfg.Kinds[kind].Color
		kinds[kind] = component.KindSpec{
			Width:     ks.Width,
			Height:    ks.Height,
			Points:    ks.Points,
			Color:     ks.Color.NRGBA(fallback),
			Placement: placement,
		}
	}
	cfg.Kinds = kinds

	cfg.MagnetWindow = spec.Magnet.Window
	cfg.MagnetPull = spec.Magnet.Pull
	cfg.MagnetExtraSpeed = spec.Magnet.ExtraSpeed

	cfg.MultiplierSteps = spec.PowerUps.MultiplierSteps
	cfg.Multiplier = spec.PowerUps.Multiplier
	cfg.AttractorSteps = spec.PowerUps.AttractorSteps

	cfg.ToastEvery = spec.Toast.EverySteps
	cfg.ToastDuration = time.Duration(spec.Toast.DisplayMS) * time.Millisecond

	if catalog != nil {
		cfg.Toasts = append([]string(nil), catalog.Toasts...)
		cfg.InfoMessages = make([]component.InfoMessage, 0, len(catalog.InfoPoints))
		for _, m := range catalog.InfoPoints {
			cfg.InfoMessages = append(cfg.InfoMessages, component.InfoMessage{Title: m.Title, Body: m.Body})
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SpawnInterval is the spawn cadence at the given speed, between one step
// and MaxSpawnInterval.
func (c Config) SpawnInterval(speed float64) int {
	if speed <= 0 || c.InitialSpeed <= 0 {
		return max(1, c.BaseInterval)
	}
	v := math.Floor(float64(c.BaseInterval) / (speed / c.InitialSpeed))
	return int(common.Clamp(v, 1, MaxSpawnInterval))
}

// MaxSpawnInterval caps the cadence of a vanishingly slow run.
const MaxSpawnInterval = math.MaxInt32
