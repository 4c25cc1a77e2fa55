package config

import (
	"errors"
	"fmt"
	"hirelens/internal/services/keywords"
	"hirelens/internal/services/search"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/config_local.yaml"

const (
	FormatTable = "table"
	FormatJSON  = "json"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Env         string              `yaml:"env" env:"HIRELENS_ENV" env-default:"local"`
	StoragePath string              `yaml:"storage_path" env:"HIRELENS_STORAGE_PATH" env-default:"./storage/hirelens.db"`
	ArchivePath string              `yaml:"archive_path" env:"HIRELENS_ARCHIVE_PATH"`
	Analysis    AnalysisConfig      `yaml:"analysis"`
	Loader      LoaderConfig        `yaml:"loader"`
	Report      ReportConfig        `yaml:"report"`
	Roles       map[string][]string `yaml:"roles"`
}

type AnalysisConfig struct {
	Role                 string `yaml:"role" env:"HIRELENS_ROLE" env-default:"Data Analyst"`
	Algorithm            string `yaml:"algorithm" env:"HIRELENS_ALGORITHM" env-default:"Brute Force"`
	OptionalKeywordsPath string `yaml:"optional_keywords_path" env:"HIRELENS_KEYWORDS_PATH"`
}

type LoaderConfig struct {
	Workers int  `yaml:"workers" env:"HIRELENS_WORKERS" env-default:"4"`
	NoCache bool `yaml:"no_cache" env:"HIRELENS_NO_CACHE"`
}

type ReportConfig struct {
	Format string `yaml:"format" env:"HIRELENS_FORMAT" env-default:"table"`
}

// MustLoad loads the config or panics.
// Priority of the config path: flag > env > default.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic("error loading config: " + err.Error())
	}
	return cfg
}

// Load reads the config file at configPath, or at CONFIG_PATH / the default
// path when configPath is empty. An explicitly given path must exist; when
// the fallback file is missing only env and defaults apply.
func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	explicit := configPath != ""
	if !explicit {
		configPath = fetchConfigPath()
	}

	var cfg Config
	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	} else if explicit || !os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file %s: %w", op, configPath, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}

// fetchConfigPath fetches config path from environment variable or default.
func fetchConfigPath() string {
	if res := os.Getenv("CONFIG_PATH"); res != "" {
		return res
	}
	return defaultConfigPath
}

// RoleSet returns the built-in roles merged with the configured ones.
func (c *Config) RoleSet() keywords.Roles {
	return keywords.DefaultRoles.Merge(c.Roles)
}

func (c *Config) Validate() error {
	if _, err := search.ParseAlgorithm(c.Analysis.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.RoleSet().Mandatory(c.Analysis.Role); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch c.Report.Format {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: unknown report format %q", ErrInvalidConfig, c.Report.Format)
	}
	if c.Loader.Workers < 1 {
		return fmt.Errorf("%w: loader.workers must be positive", ErrInvalidConfig)
	}
	return nil
}
