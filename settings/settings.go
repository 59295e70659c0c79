package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/locomotion/input"
	"github.com/oomph-ac/locomotion/locomotion"
	"github.com/oomph-ac/locomotion/oerror"
	"github.com/oomph-ac/locomotion/physics"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything a designer can tune for the movement controller and the simulation
// driving it.
type Settings struct {
	Movement   Movement   `toml:"movement" yaml:"movement"`
	Simulation Simulation `toml:"simulation" yaml:"simulation"`
	Debug      Debug      `toml:"debug" yaml:"debug"`
}

// Movement are the tunable constants of a single character.
type Movement struct {
	Speed float32 `toml:"speed" yaml:"speed"`

	JumpForce        float32 `toml:"jump_force" yaml:"jump_force"`
	JumpCooldown     float32 `toml:"jump_cooldown" yaml:"jump_cooldown"`
	JumpReadyOnSpawn bool    `toml:"jump_ready_on_spawn" yaml:"jump_ready_on_spawn"`
	AirMultiplier    float32 `toml:"air_multiplier" yaml:"air_multiplier"`
	AirDrag          float32 `toml:"air_drag" yaml:"air_drag"`

	SlideMultiplier float32 `toml:"slide_multiplier" yaml:"slide_multiplier"`
	SlideDrag       float32 `toml:"slide_drag" yaml:"slide_drag"`

	GroundDrag   float32  `toml:"ground_drag" yaml:"ground_drag"`
	Height       float32  `toml:"height" yaml:"height"`
	GroundLayers []string `toml:"ground_layers" yaml:"ground_layers"`

	Keys Keys `toml:"keys" yaml:"keys"`
}

// Keys are the key bindings read by the controller.
type Keys struct {
	Move  string `toml:"move" yaml:"move"`
	Jump  string `toml:"jump" yaml:"jump"`
	Slide string `toml:"slide" yaml:"slide"`
}

// Simulation configures the host loop.
type Simulation struct {
	// FixedTimestep is the physics step in seconds.
	FixedTimestep float32 `toml:"fixed_timestep" yaml:"fixed_timestep"`
	// FrameRate is the number of Update calls per second when running in real time.
	FrameRate int `toml:"frame_rate" yaml:"frame_rate"`
	// MaxStepsPerFrame caps the physics steps run for a single long frame.
	MaxStepsPerFrame int     `toml:"max_steps_per_frame" yaml:"max_steps_per_frame"`
	Gravity          float32 `toml:"gravity" yaml:"gravity"`
	Mass             float32 `toml:"mass" yaml:"mass"`
	Width            float32 `toml:"width" yaml:"width"`
}

// Debug selects the controller debug modes written to the log.
type Debug struct {
	Level string   `toml:"level" yaml:"level"`
	Modes []string `toml:"modes" yaml:"modes"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Movement.Speed = 20
	s.Movement.JumpForce = 12
	s.Movement.JumpCooldown = 0.25
	s.Movement.JumpReadyOnSpawn = true
	s.Movement.AirMultiplier = 0.4
	s.Movement.AirDrag = 0
	s.Movement.SlideMultiplier = 1.5
	s.Movement.SlideDrag = 0.3
	s.Movement.GroundDrag = 6
	s.Movement.Height = 2
	s.Movement.GroundLayers = []string{"ground"}

	bindings := input.DefaultBindings()
	s.Movement.Keys = Keys{Move: string(bindings.Move), Jump: string(bindings.Jump), Slide: string(bindings.Slide)}

	s.Simulation.FixedTimestep = 0.02
	s.Simulation.FrameRate = 60
	s.Simulation.MaxStepsPerFrame = 8
	s.Simulation.Gravity = 9.81
	s.Simulation.Mass = 1
	s.Simulation.Width = 1

	s.Debug.Level = "info"
	return s
}

// Bindings returns the key bindings as input bindings.
func (s Settings) Bindings() input.Bindings {
	return input.Bindings{
		Move:  input.Key(s.Movement.Keys.Move),
		Jump:  input.Key(s.Movement.Keys.Jump),
		Slide: input.Key(s.Movement.Keys.Slide),
	}
}

// Opts resolves the movement settings into controller options. Ground layer names are resolved
// against the layer registry passed.
func (s Settings) Opts(layers *physics.Layers) (locomotion.Opts, error) {
	mask, err := layers.Mask(s.Movement.GroundLayers...)
	if err != nil {
		return locomotion.Opts{}, oerror.New("invalid ground layers: %v", err)
	}
	m := s.Movement
	return locomotion.Opts{
		MovementSpeed:    m.Speed,
		JumpForce:        m.JumpForce,
		JumpCooldown:     m.JumpCooldown,
		JumpReadyOnSpawn: m.JumpReadyOnSpawn,
		AirMultiplier:    m.AirMultiplier,
		AirDrag:          m.AirDrag,
		SlideMultiplier:  m.SlideMultiplier,
		SlideDrag:        m.SlideDrag,
		GroundDrag:       m.GroundDrag,
		Height:           m.Height,
		GroundMask:       mask,
		Keys:             s.Bindings(),
	}, nil
}

// Validate checks the settings that are not covered by locomotion.Opts validation.
func (s Settings) Validate() error {
	var errs []error
	if len(s.Movement.GroundLayers) == 0 {
		errs = append(errs, oerror.New("movement.ground_layers must name at least one layer"))
	}
	if s.Simulation.FixedTimestep <= 0 {
		errs = append(errs, oerror.New("simulation.fixed_timestep must be greater than zero"))
	}
	if s.Simulation.FrameRate <= 0 {
		errs = append(errs, oerror.New("simulation.frame_rate must be greater than zero"))
	}
	if s.Simulation.MaxStepsPerFrame <= 0 {
		errs = append(errs, oerror.New("simulation.max_steps_per_frame must be greater than zero"))
	}
	if s.Simulation.Mass <= 0 {
		errs = append(errs, oerror.New("simulation.mass must be greater than zero"))
	}
	if s.Simulation.Width <= 0 {
		errs = append(errs, oerror.New("simulation.width must be greater than zero"))
	}
	for _, m := range s.Debug.Modes {
		if _, ok := locomotion.ParseDebugMode(m); !ok {
			errs = append(errs, oerror.New("unknown debug mode %q", m))
		}
	}
	return errors.Join(errs...)
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}
	data, err := encode(path, DefaultSettings())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %v", err)
	}
	return nil
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Fields missing from the file keep their default values.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, &settings)
	} else {
		err = toml.Unmarshal(data, &settings)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	return settings, nil
}

func encode(path string, s Settings) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(s)
	}
	return toml.Marshal(s)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
