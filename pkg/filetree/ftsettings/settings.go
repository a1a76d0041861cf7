package ftsettings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const UserDir = "~/.filetug"

const settingsFileName = "filetree-settings.yaml"

const DefaultStyle = "dracula"

var osUserHomeDir = os.UserHomeDir
var osReadFile = os.ReadFile
var osStat = os.Stat
var yamlUnmarshal = yaml.Unmarshal
var yamlMarshal = yaml.Marshal

// GetUserDir returns the expanded settings directory.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}

type Settings struct {
	ShowHidden  bool   `yaml:"show_hidden"`
	Highlight   bool   `yaml:"highlight"`
	Style       string `yaml:"style,omitempty"`
	MaxFileSize int64  `yaml:"max_file_size,omitempty"`
}

func Default() Settings {
	return Settings{Style: DefaultStyle}
}

// FilePath is where Load reads settings from.
func FilePath() (string, error) {
	dir, err := GetUserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFileName), nil
}

// Load reads the user settings. Defaults are returned alongside any error.
// On first run the defaults are written out so the user has a file to edit.
func Load() (Settings, error) {
	filePath, err := FilePath()
	if err != nil {
		return Default(), err
	}
	if _, err = osStat(filePath); os.IsNotExist(err) {
		settings := Default()
		if err = SaveFile(filePath, settings); err != nil {
			return settings, fmt.Errorf("failed to write default settings: %w", err)
		}
		return settings, nil
	}
	return LoadFile(filePath)
}

// LoadFile reads settings from filePath. A missing file is not an error.
func LoadFile(filePath string) (Settings, error) {
	settings := Default()
	data, err := osReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, err
	}
	if err = yamlUnmarshal(data, &settings); err != nil {
		return Default(), err
	}
	if settings.Style == "" {
		settings.Style = DefaultStyle
	}
	return settings, nil
}

func SaveFile(filePath string, settings Settings) error {
	data, err := yamlMarshal(settings)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0o644)
}
