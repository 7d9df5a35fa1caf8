package prefabs

import (
	"fmt"
	"os"

	"github.com/milk9111/kroy/powerup"
	"gopkg.in/yaml.v3"
)

// TuningFile is the embedded tuning spec shipped with the game.
const TuningFile = "tuning.yaml"

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return decodeSpec[T](filename, data)
}

// LoadSpecFile reads a spec from an explicit path instead of the prefab
// search path.
func LoadSpecFile[T any](path string) (T, error) {
	var zero T
	data, err := os.ReadFile(path)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", path, err)
	}
	return decodeSpec[T](path, data)
}

func decodeSpec[T any](name string, data []byte) (T, error) {
	var zero T
	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return spec, nil
}

type TuningSpec struct {
	TickRate      int         `yaml:"tick_rate"`
	DespawnFrames int         `yaml:"despawn_frames"`
	PickupScript  string      `yaml:"pickup_script"`
	PowerUp       PowerUpSpec `yaml:"powerup"`
	Truck         TruckSpec   `yaml:"truck"`
	Spawns        []SpawnSpec `yaml:"spawns"`
}

type PowerUpSpec struct {
	Radius float64 `yaml:"radius"`
	Health int     `yaml:"health"`
}

func (s PowerUpSpec) Config() powerup.Config {
	return powerup.Config{Radius: s.Radius, Health: s.Health}
}

type TruckSpec struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	MaxWater   float64 `yaml:"max_water"`
	MaxHealth  int     `yaml:"max_health"`
	DamageStep float64 `yaml:"damage_step"`
	SpeedStep  float64 `yaml:"speed_step"`
	MaxBoost   float64 `yaml:"max_boost"`
}

// SpawnSpec places one power-up. Without a variant the catalog picks one.
type SpawnSpec struct {
	X       float64       `yaml:"x"`
	Y       float64       `yaml:"y"`
	Variant *powerup.Kind `yaml:"variant,omitempty"`
}

func LoadTuningSpec() (TuningSpec, error) {
	spec, err := LoadSpec[TuningSpec](TuningFile)
	if err != nil {
		return TuningSpec{}, err
	}
	return spec.withDefaults(), nil
}

func LoadTuningSpecFile(path string) (TuningSpec, error) {
	spec, err := LoadSpecFile[TuningSpec](path)
	if err != nil {
		return TuningSpec{}, err
	}
	return spec.withDefaults(), nil
}

func (s TuningSpec) withDefaults() TuningSpec {
	if s.TickRate <= 0 {
		s.TickRate = 60
	}
	if s.DespawnFrames < 0 {
		s.DespawnFrames = 0
	}
	if s.Truck.MaxWater <= 0 {
		s.Truck.MaxWater = 100
	}
	if s.Truck.MaxHealth <= 0 {
		s.Truck.MaxHealth = 100
	}
	if s.Truck.MaxBoost <= 0 {
		s.Truck.MaxBoost = 3
	}
	return s
}
