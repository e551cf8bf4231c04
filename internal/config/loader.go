package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tripgames/internal/core"
)

// load reads a game config. Values start from the hardcoded defaults and
// are overlaid by the first YAML source found.
// Search order: customPath -> ~/.tripgames/configs/<name>.yaml ->
// ./configs/<name>.yaml -> embedded default.
func load[T any](name, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	file := name + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = defaults()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", file)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tripgames", "configs", filename)
}

// LoadBreakout loads Breakout configuration and applies the preset.
func LoadBreakout(customPath string, d core.Difficulty) (BreakoutConfig, error) {
	cfg, err := load("breakout", customPath, defaultBreakoutYAML, DefaultBreakoutConfig)
	ApplyBreakoutPreset(&cfg, d)
	return cfg, err
}

// LoadRunner loads Runner configuration and applies the preset.
func LoadRunner(customPath string, d core.Difficulty) (RunnerConfig, error) {
	cfg, err := load("runner", customPath, defaultRunnerYAML, DefaultRunnerConfig)
	ApplyRunnerPreset(&cfg, d)
	return cfg, err
}

// LoadPutting loads Putting configuration and applies the preset.
func LoadPutting(customPath string, d core.Difficulty) (PuttingConfig, error) {
	cfg, err := load("putting", customPath, defaultPuttingYAML, DefaultPuttingConfig)
	ApplyPuttingPreset(&cfg, d)
	return cfg, err
}

// LoadConstellation loads Constellation configuration and applies the preset.
func LoadConstellation(customPath string, d core.Difficulty) (ConstellationConfig, error) {
	cfg, err := load("constellation", customPath, defaultConstellationYAML, DefaultConstellationConfig)
	ApplyConstellationPreset(&cfg, d)
	return cfg, err
}

// LoadCatch loads the catch game configuration and applies the preset.
func LoadCatch(customPath string, d core.Difficulty) (CatchConfig, error) {
	cfg, err := load("catch", customPath, defaultCatchYAML, DefaultCatchConfig)
	ApplyCatchPreset(&cfg, d)
	return cfg, err
}

// LoadMemory loads Memory configuration and applies the preset.
func LoadMemory(customPath string, d core.Difficulty) (MemoryConfig, error) {
	cfg, err := load("memory", customPath, defaultMemoryYAML, DefaultMemoryConfig)
	ApplyMemoryPreset(&cfg, d)
	return cfg, err
}
