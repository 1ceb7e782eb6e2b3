package ports

// Settings holds user preferences. They are unrelated to the alias data itself.
type Settings struct {
	AliasFile string `mapstructure:"alias_file"`
	BackupDir string `mapstructure:"backup_dir"`
}

// SettingsStore loads and saves user preferences.
type SettingsStore interface {
	Load() (Settings, error)
	Save(settings Settings) error
	Path() string
}
