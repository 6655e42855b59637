package config

import (
	"os"
	"strconv"

	"github.com/chronobio/thermograph/window"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Listen        string  `yaml:"listen"`
	CSVPath       string  `yaml:"csv_path"`
	DBPath        string  `yaml:"db_path"`
	WindowMinutes float64 `yaml:"window_minutes"`
	DefaultCohort string  `yaml:"default_cohort"`
	GinMode       string  `yaml:"gin_mode"`
}

func Default() Config {
	return Config{
		Listen:        "0.0.0.0:8000",
		CSVPath:       "mouse_data.csv",
		DBPath:        "thermograph.db",
		WindowMinutes: window.DefaultMinutes,
		DefaultCohort: "both",
	}
}

// Load reads the YAML config file and applies environment overrides. A
// missing file is not an error; defaults are used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, errors.Wrap(err, "read config")
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrap(err, "parse config")
		}
	}

	applyEnv(&cfg)

	if cfg.WindowMinutes <= 0 {
		return cfg, errors.New("window_minutes must be positive")
	}
	if _, err := window.ParseCohort(cfg.DefaultCohort); err != nil {
		return cfg, errors.Wrap(err, "default_cohort")
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("THERMOGRAPH_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("THERMOGRAPH_CSV"); v != "" {
		cfg.CSVPath = v
	}
	if v := os.Getenv("THERMOGRAPH_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("THERMOGRAPH_COHORT"); v != "" {
		cfg.DefaultCohort = v
	}
	if v := os.Getenv("THERMOGRAPH_WINDOW_MINUTES"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.WindowMinutes = f
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.GinMode = v
	}
}
