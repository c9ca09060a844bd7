package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/relaywire/relay-go/internal/constants"
)

// FileConfig is the on-disk CLI configuration stored at ~/.relay/config.yml.
type FileConfig struct {
	Key    string `yaml:"key,omitempty"`
	API    string `yaml:"api,omitempty"`
	Output string `yaml:"output,omitempty"`
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	return filepath.Join(home, ".relay", "config.yml"), nil
}

// loadFileConfig reads the on-disk configuration. A missing file yields a
// zero-valued config rather than an error.
func loadFileConfig() (*FileConfig, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}

		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &config, nil
}

// saveFileConfig writes the configuration back to ~/.relay/config.yml,
// creating the directory if needed.
func saveFileConfig(config *FileConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
