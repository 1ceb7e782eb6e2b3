package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/dosalias/internal/core/ports"
	"github.com/spf13/viper"
	"pkt.systems/pslog"
)

const (
	// AppDirName is the directory under the user config dir that holds the app's files.
	AppDirName       = "dosalias"
	settingsFilename = "settings.json"
	aliasFilename    = "alias.cmd"
	envPrefix        = "DOSALIAS"
)

// JSONStore keeps user preferences in a JSON file. Environment variables with
// the DOSALIAS_ prefix override file values on load.
type JSONStore struct {
	path     string
	defaults ports.Settings
	log      pslog.Logger
}

// DefaultAppDir returns the per-user application directory (%APPDATA%\dosalias on Windows).
func DefaultAppDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(base, AppDirName), nil
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings(appDir string) ports.Settings {
	return ports.Settings{
		AliasFile: filepath.Join(appDir, aliasFilename),
	}
}

// NewJSONStore creates a store for settings.json inside appDir.
func NewJSONStore(appDir string, logger pslog.Logger) (ports.SettingsStore, error) {
	if strings.TrimSpace(appDir) == "" {
		return nil, errors.New("application directory is required")
	}
	return &JSONStore{
		path:     filepath.Join(appDir, settingsFilename),
		defaults: DefaultSettings(appDir),
		log:      logger,
	}, nil
}

// Path implements the ports.SettingsStore interface.
func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault("alias_file", s.defaults.AliasFile)
	v.SetDefault("backup_dir", s.defaults.BackupDir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load implements the ports.SettingsStore interface.
// A missing or unreadable settings file yields the defaults.
func (s *JSONStore) Load() (ports.Settings, error) {
	v := s.newViper()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) && s.log != nil {
			s.log.Warn("settings file ignored", "path", s.path, "err", err)
		}
		// Keep defaults and env overrides.
		v = s.newViper()
	}

	var out ports.Settings
	if err := v.Unmarshal(&out); err != nil {
		return ports.Settings{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if strings.TrimSpace(out.AliasFile) == "" {
		out.AliasFile = s.defaults.AliasFile
	}
	return out, nil
}

// Save implements the ports.SettingsStore interface.
func (s *JSONStore) Save(settings ports.Settings) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir settings dir: %w", err)
	}
	v := viper.New()
	v.SetConfigType("json")
	v.Set("alias_file", settings.AliasFile)
	v.Set("backup_dir", settings.BackupDir)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if s.log != nil {
		s.log.Debug("settings saved", "path", s.path)
	}
	return nil
}
