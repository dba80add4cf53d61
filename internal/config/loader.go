package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMaze loads the maze configuration.
// Search order: customPath -> ~/.maze/configs/maze.yaml -> ./configs/maze.yaml -> embedded default
func LoadMaze(customPath string) (Maze, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Maze{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseMaze(data)
		if err != nil {
			return Maze{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("maze.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseMaze(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "maze.yaml")); err == nil {
		if cfg, err := ParseMaze(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseMaze(defaultMazeYAML)
	if err != nil {
		return DefaultMaze(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseMaze decodes YAML on top of DefaultMaze, so a file only needs the keys
// it changes. A file that lists barriers replaces the whole default list.
func ParseMaze(data []byte) (Maze, error) {
	cfg := DefaultMaze()
	cfg.Barriers = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Maze{}, err
	}
	if cfg.Barriers == nil {
		cfg.Barriers = defaultBarriers()
	}
	if err := cfg.Validate(); err != nil {
		return Maze{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".maze", "configs", filename)
}
