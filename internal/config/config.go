package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var validate = validator.New()

// Config holds the game settings. Booleans must default to false: cleanenv applies env-default to zero values.
type Config struct {
	LogLevel   string   `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	BoardSize  int      `yaml:"board-size" env:"BOARD_SIZE" env-default:"3" validate:"min=3,max=26"`
	Rounds     int      `yaml:"rounds" env:"ROUNDS" env-default:"1" validate:"min=1"`
	NoColors   bool     `yaml:"no-colors" env:"NO_COLORS"`
	SkipPrompt bool     `yaml:"skip-name-prompt" env:"SKIP_NAME_PROMPT"`
	Players    []string `yaml:"players" env:"PLAYERS" validate:"max=2"`
}

// MustLoad - load all configurations from the config file, or from the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(statErr, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", statErr)
	}

	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
