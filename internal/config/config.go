// Package config provides configuration management for Pomodomate.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/pomodomate/internal/domain"
)

const defaultDataDir = "~/.pomodomate"

// Config holds all configuration for the Pomodomate application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds the durations used until the user saves their own settings.
type TimerConfig struct {
	WorkMinutes       int `mapstructure:"work_minutes"`
	ShortBreakMinutes int `mapstructure:"short_break_minutes"`
	LongBreakMinutes  int `mapstructure:"long_break_minutes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ThemeConfig holds theme customization settings.
type ThemeConfig struct {
	ColorWork       string `mapstructure:"color_work"`
	ColorShortBreak string `mapstructure:"color_short_break"`
	ColorLongBreak  string `mapstructure:"color_long_break"`
	ColorPaused     string `mapstructure:"color_paused"`
	ColorCoins      string `mapstructure:"color_coins"`
	ColorStreak     string `mapstructure:"color_streak"`
	ColorHelp       string `mapstructure:"color_help"`
	IconApp         string `mapstructure:"icon_app"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:       "#E5484D",
		ColorShortBreak: "#30A46C",
		ColorLongBreak:  "#F76B15",
		ColorPaused:     "#6B7280",
		ColorCoins:      "#FFC53D",
		ColorStreak:     "#F76B15",
		ColorHelp:       "#95A5A6",
		IconApp:         "🍅",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	defaults := domain.DefaultSettings()
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:       defaults.Work,
			ShortBreakMinutes: defaults.ShortBreak,
			LongBreakMinutes:  defaults.LongBreak,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Storage: StorageConfig{
			DataDir: expandHome(defaultDataDir),
		},
		Log: LogConfig{
			Level: "warn",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from the config file, creating it with defaults if needed.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from an explicit path.
func LoadFrom(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)

	// If config file doesn't exist, create it with defaults
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Storage.DataDir == "" {
		cfg.Storage.DataDir = defaultDataDir
	}
	cfg.Storage.DataDir = expandHome(cfg.Storage.DataDir)

	return &cfg, nil
}

// Save saves the configuration to the default config file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveTo(configPath, cfg)
}

// SaveTo writes the configuration to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	v.Set("timer.work_minutes", cfg.Timer.WorkMinutes)
	v.Set("timer.short_break_minutes", cfg.Timer.ShortBreakMinutes)
	v.Set("timer.long_break_minutes", cfg.Timer.LongBreakMinutes)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.file", cfg.Log.File)
	v.Set("theme.color_work", cfg.Theme.ColorWork)
	v.Set("theme.color_short_break", cfg.Theme.ColorShortBreak)
	v.Set("theme.color_long_break", cfg.Theme.ColorLongBreak)
	v.Set("theme.color_paused", cfg.Theme.ColorPaused)
	v.Set("theme.color_coins", cfg.Theme.ColorCoins)
	v.Set("theme.color_streak", cfg.Theme.ColorStreak)
	v.Set("theme.color_help", cfg.Theme.ColorHelp)
	v.Set("theme.icon_app", cfg.Theme.IconApp)

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomodomate", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "pomodomate.db")
}

// GetLogPath returns where the TUI writes its log.
func GetLogPath(cfg *Config) string {
	if cfg.Log.File != "" {
		return expandHome(cfg.Log.File)
	}
	return filepath.Join(cfg.Storage.DataDir, "pomodomate.log")
}

// DefaultSettings converts the timer section to domain settings, coercing
// out-of-range values the same way the settings form does.
func (c *Config) DefaultSettings() domain.Settings {
	return domain.Settings{
		Work:       c.Timer.WorkMinutes,
		ShortBreak: c.Timer.ShortBreakMinutes,
		LongBreak:  c.Timer.LongBreakMinutes,
	}.Normalize()
}

func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	defaults := domain.DefaultSettings()
	v.SetDefault("timer.work_minutes", defaults.Work)
	v.SetDefault("timer.short_break_minutes", defaults.ShortBreak)
	v.SetDefault("timer.long_break_minutes", defaults.LongBreak)
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("storage.data_dir", defaultDataDir)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.file", "")

	theme := DefaultThemeConfig()
	v.SetDefault("theme.color_work", theme.ColorWork)
	v.SetDefault("theme.color_short_break", theme.ColorShortBreak)
	v.SetDefault("theme.color_long_break", theme.ColorLongBreak)
	v.SetDefault("theme.color_paused", theme.ColorPaused)
	v.SetDefault("theme.color_coins", theme.ColorCoins)
	v.SetDefault("theme.color_streak", theme.ColorStreak)
	v.SetDefault("theme.color_help", theme.ColorHelp)
	v.SetDefault("theme.icon_app", theme.IconApp)
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
}
