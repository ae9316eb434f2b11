package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/scalekit/internal/persistence"
	scaleerrors "github.com/alexisbeaulieu97/scalekit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// HomeEnv overrides the directory holding the config and state files.
const HomeEnv = "SCALEKIT_HOME"

// Dir returns the scalekit home directory, ~/.scalekit unless HomeEnv is set.
func Dir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".scalekit"), nil
}

// DefaultPath returns the location of config.yaml inside Dir.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path, or at DefaultPath when path is empty.
// A missing default file yields Default(); a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}

	cfg, err := ParseConfig(path)
	if err != nil {
		var parseErr *scaleerrors.ParseError
		if !explicit && errors.As(err, &parseErr) && errors.Is(parseErr.Err, os.ErrNotExist) {
			def := Default()
			if err := def.resolvePaths(); err != nil {
				return nil, err
			}
			return &def, nil
		}
		return nil, err
	}
	return cfg, nil
}

// ParseConfig loads a configuration file from disk on top of Default(),
// validates it, and returns the resulting model.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, scaleerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, scaleerrors.NewParseError(path, extractLine(err), err)
	}

	if err := cfg.resolvePaths(); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePaths fills an empty storage path with a file inside Dir and
// expands a leading ~ to the user's home directory.
func (c *Config) resolvePaths() error {
	if c.Storage.Path == "" && c.Storage.Driver != persistence.DriverMemory {
		dir, err := Dir()
		if err != nil {
			return err
		}
		name := "state.json"
		if c.Storage.Driver == persistence.DriverSQLite {
			name = "state.db"
		}
		c.Storage.Path = filepath.Join(dir, name)
		return nil
	}
	if c.Storage.Path != "~" && !strings.HasPrefix(c.Storage.Path, "~/") {
		return nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	c.Storage.Path = filepath.Join(home, strings.TrimPrefix(c.Storage.Path, "~"))
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
