package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"meshnodes/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/meshnodes"
	configFileName = "config.yaml"
)

var osUserHomeDir = os.UserHomeDir

func GetDefaultConfigPathOrPanic() string {
	homeDir, err := osUserHomeDir()
	if err != nil {
		panic(fmt.Errorf("could not determine user config directory: %w", err))
	}

	return filepath.Join(homeDir, userConfigDir)
}

// LoadConfig loads config.yaml from configPath over the defaults and validates
// the result. A missing file yields the defaults.
func LoadConfig(configPath string) (MeshnodesConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := GetDefaultConfig()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		logging.Info("ConfigLoader", "Error loading config.yaml from %s: %s", configFilePath, err)
		return MeshnodesConfig{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		// config malformed
		return MeshnodesConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}
	if err := Validate(config); err != nil {
		return MeshnodesConfig{}, fmt.Errorf("invalid config %s: %w", configFilePath, err)
	}
	logging.Debug("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
