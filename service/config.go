package service

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"notation/move"
	"notation/profile"
)

// Config is read from the environment.
type Config struct {
	Addr        string `env:"NOTATION_ADDR" envDefault:":8080"`
	Profile     string `env:"NOTATION_PROFILE" envDefault:"permissive"`
	ProfileFile string `env:"NOTATION_PROFILE_FILE"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Codec builds the codec the service runs with: the named builtin profile,
// or a profile of that name from the configured YAML file.
func (cfg Config) Codec() (*move.Codec, error) {
	if cfg.ProfileFile != "" {
		profiles, err := profile.LoadFile(cfg.ProfileFile)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			if p.Name() == cfg.Profile {
				return move.New(move.WithValidator(p)), nil
			}
		}
		return nil, fmt.Errorf("profile %q not found in %s", cfg.Profile, cfg.ProfileFile)
	}
	p, err := profile.Builtin(cfg.Profile)
	if err != nil {
		return nil, err
	}
	return move.New(move.WithValidator(p)), nil
}
