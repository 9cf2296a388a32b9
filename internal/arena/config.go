package arena

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/parley-go/parley/internal/dice"
)

// FighterConfig describes one combatant
type FighterConfig struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	HP     int    `json:"hp" yaml:"hp" toml:"hp"`
	Guard  int    `json:"guard" yaml:"guard" toml:"guard"`
	Attack string `json:"attack" yaml:"attack" toml:"attack"`
}

// Fighter converts the config entry into a combatant
func (fc FighterConfig) Fighter() (Fighter, error) {
	attack, err := dice.ParseNotation(fc.Attack)
	if err != nil {
		return Fighter{}, err
	}
	return Fighter{
		Name:   fc.Name,
		HP:     fc.HP,
		Guard:  fc.Guard,
		Attack: attack,
	}, nil
}

// Config holds runtime parameters for the arena
type Config struct {
	Seed      int64         `json:"seed" yaml:"seed" toml:"seed"`
	Fights    int           `json:"fights" yaml:"fights" toml:"fights"`
	MaxRounds int           `json:"max_rounds" yaml:"max_rounds" toml:"max_rounds"`
	Red       FighterConfig `json:"red" yaml:"red" toml:"red"`
	Blue      FighterConfig `json:"blue" yaml:"blue" toml:"blue"`
}

// DefaultConfig returns a runnable two fighter setup
func DefaultConfig() Config {
	return Config{
		Seed:      1,
		Fights:    10,
		MaxRounds: DefaultMaxRounds,
		Red:       FighterConfig{Name: "Brynja", HP: 30, Guard: 12, Attack: "1d8+2"},
		Blue:      FighterConfig{Name: "Kato", HP: 28, Guard: 13, Attack: "2d4+2"},
	}
}

// Load builds the arena configuration. A non-empty path selects a config
// file by extension (.yaml, .yml, .json, .toml) whose values overlay
// DefaultConfig, so partial files work. ARENA_SEED, ARENA_FIGHTS, and
// ARENA_MAX_ROUNDS override either source.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return cfg, err
			}
		case ".json":
			if err := json.Unmarshal(b, &cfg); err != nil {
				return cfg, err
			}
		case ".toml":
			if err := toml.Unmarshal(b, &cfg); err != nil {
				return cfg, err
			}
		default:
			return cfg, fmt.Errorf("unsupported config extension: %s", ext)
		}
	}

	cfg.Seed = getEnvAsInt64OrDefault("ARENA_SEED", cfg.Seed)
	cfg.Fights = getEnvAsIntOrDefault("ARENA_FIGHTS", cfg.Fights)
	cfg.MaxRounds = getEnvAsIntOrDefault("ARENA_MAX_ROUNDS", cfg.MaxRounds)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations that cannot run
func (c Config) Validate() error {
	if c.Fights < 1 {
		return fmt.Errorf("fights must be positive, got %d", c.Fights)
	}
	if c.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be positive, got %d", c.MaxRounds)
	}
	for _, fc := range []FighterConfig{c.Red, c.Blue} {
		if fc.Name == "" {
			return fmt.Errorf("fighter name is required")
		}
		if fc.HP < 1 {
			return fmt.Errorf("fighter %s needs positive hp", fc.Name)
		}
		if _, err := dice.ParseNotation(fc.Attack); err != nil {
			return fmt.Errorf("fighter %s: %w", fc.Name, err)
		}
	}
	if c.Red.Name == c.Blue.Name {
		return fmt.Errorf("fighters need distinct names")
	}
	return nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
