package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/kennyg/cppkit/internal/companion"
)

// Following the XDG base directory layout:
// User config:  ~/.config/cppkit/config.yaml (or $XDG_CONFIG_HOME/cppkit/)
// Resources:    ~/.local/share/cppkit/resources (or $XDG_DATA_HOME/cppkit/)

const (
	// AppDir is the subdirectory name under the XDG config and data homes
	AppDir = "cppkit"
	// ConfigFileName is the name of the user config file
	ConfigFileName = "config.yaml"
	// ResourcesDirName is the directory holding the project setup files
	ResourcesDirName = "resources"
	// EnvPrefix prefixes every environment override, e.g. CPPKIT_AUTHOR
	EnvPrefix = "CPPKIT"
)

// ErrConfigExists is returned by WriteDefaults when the file is already there.
var ErrConfigExists = errors.New("config file already exists")

// Settings holds the user-tunable values.
type Settings struct {
	Author          string `yaml:"author" mapstructure:"author"`
	Email           string `yaml:"email" mapstructure:"email"`
	Copyright       string `yaml:"copyright" mapstructure:"copyright"`
	SourceExtension string `yaml:"source_extension" mapstructure:"source_extension"`
	// ResourcesDir, when set, is the first place setup looks for its files
	ResourcesDir string `yaml:"resources_dir" mapstructure:"resources_dir"`
	// Editor opens documents when Open is true
	Editor string `yaml:"editor" mapstructure:"editor"`
	Open   bool   `yaml:"open" mapstructure:"open"`
}

// Paths holds the various paths cppkit uses
type Paths struct {
	Home string

	// UserConfigDir is ~/.config/cppkit (or $XDG_CONFIG_HOME/cppkit)
	UserConfigDir string
	// ConfigFile is ~/.config/cppkit/config.yaml
	ConfigFile string

	// DataDir is ~/.local/share/cppkit (or $XDG_DATA_HOME/cppkit)
	DataDir string
	// ResourcesDir is DataDir/resources
	ResourcesDir string
}

// Default returns the settings used when no config file exists.
func Default() *Settings {
	banner := companion.DefaultBanner()

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}

	return &Settings{
		Author:          banner.Author,
		Email:           banner.Email,
		Copyright:       banner.Copyright,
		SourceExtension: companion.DefaultSourceExtension,
		Editor:          editor,
	}
}

// Banner returns the companion banner described by s.
func (s *Settings) Banner() companion.Banner {
	return companion.Banner{
		Copyright: s.Copyright,
		Author:    s.Author,
		Email:     s.Email,
	}
}

// GetPaths returns the standard paths for cppkit
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	userConfigDir := filepath.Join(configHome, AppDir)
	dataDir := filepath.Join(dataHome, AppDir)

	return &Paths{
		Home:          home,
		UserConfigDir: userConfigDir,
		ConfigFile:    filepath.Join(userConfigDir, ConfigFileName),
		DataDir:       dataDir,
		ResourcesDir:  filepath.Join(dataDir, ResourcesDirName),
	}, nil
}

// Load reads settings from defaults, the config file and CPPKIT_* variables,
// in increasing priority. An explicit path must exist; the default file is
// optional. The returned string names the file that was read, if any.
func Load(path string) (*Settings, string, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("author", defaults.Author)
	v.SetDefault("email", defaults.Email)
	v.SetDefault("copyright", defaults.Copyright)
	v.SetDefault("source_extension", defaults.SourceExtension)
	v.SetDefault("resources_dir", defaults.ResourcesDir)
	v.SetDefault("editor", defaults.Editor)
	v.SetDefault("open", defaults.Open)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		paths, err := GetPaths()
		if err != nil {
			return nil, "", err
		}
		v.SetConfigName("config")
		v.AddConfigPath(paths.UserConfigDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, "", fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, "", fmt.Errorf("decoding config: %w", err)
	}
	if s.SourceExtension == "" {
		s.SourceExtension = companion.DefaultSourceExtension
	}

	return &s, v.ConfigFileUsed(), nil
}

// Marshal renders s as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

const configHeader = `# cppkit configuration
#
# Every key can also be set from the environment, e.g. CPPKIT_AUTHOR.
# resources_dir, when set, is searched before the bundled resource locations.

`

// WriteDefaults writes the default settings to path, creating its directory.
// It never overwrites an existing file.
func WriteDefaults(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	content, err := Default().Marshal()
	if err != nil {
		return fmt.Errorf("encoding defaults: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(path, append([]byte(configHeader), content...), 0644)
}
