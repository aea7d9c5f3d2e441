// Package config provides configuration management for panewm with Viper
// integration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0755
	filePerm = 0644
)

// Config represents the complete configuration for panewm.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" json:"logging"`
	Viewport ViewportConfig `mapstructure:"viewport" yaml:"viewport" json:"viewport"`
	Dock     DockConfig     `mapstructure:"dock" yaml:"dock" json:"dock"`
	Defaults DefaultsConfig `mapstructure:"defaults" yaml:"defaults" json:"defaults"`
	Demo     DemoConfig     `mapstructure:"demo" yaml:"demo" json:"demo"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// ViewportConfig holds the fallback containment bounds used when the host
// cannot report its own size yet.
type ViewportConfig struct {
	Width  int `mapstructure:"width" yaml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" json:"height"`
}

// DockConfig holds minimize-area settings. A zero width makes the dock
// follow the viewport width.
type DockConfig struct {
	Width     int `mapstructure:"width" yaml:"width" json:"width"`
	ItemWidth int `mapstructure:"item_width" yaml:"item_width" json:"item_width"`
}

// DefaultsConfig holds the capability set applied to panes registered
// without an explicit one.
type DefaultsConfig struct {
	Draggable   bool `mapstructure:"draggable" yaml:"draggable" json:"draggable"`
	Resizable   bool `mapstructure:"resizable" yaml:"resizable" json:"resizable"`
	Closable    bool `mapstructure:"closable" yaml:"closable" json:"closable"`
	Minimizable bool `mapstructure:"minimizable" yaml:"minimizable" json:"minimizable"`
}

// DemoConfig holds the panes the demo command spawns on startup.
type DemoConfig struct {
	Panes []DemoPane `mapstructure:"panes" yaml:"panes" json:"panes"`
}

// DemoPane describes one demo pane. Zero width/height fall back to the
// engine's default pane size.
type DemoPane struct {
	ID     string `mapstructure:"id" yaml:"id" json:"id"`
	Title  string `mapstructure:"title" yaml:"title" json:"title"`
	X      int    `mapstructure:"x" yaml:"x" json:"x"`
	Y      int    `mapstructure:"y" yaml:"y" json:"y"`
	Width  int    `mapstructure:"width" yaml:"width" json:"width"`
	Height int    `mapstructure:"height" yaml:"height" json:"height"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Viewport: ViewportConfig{
			Width:  1200,
			Height: 800,
		},
		Dock: DockConfig{
			Width:     0,
			ItemWidth: 100,
		},
		Defaults: DefaultsConfig{
			Draggable:   true,
			Resizable:   true,
			Closable:    true,
			Minimizable: true,
		},
		Demo: DemoConfig{
			Panes: []DemoPane{
				{ID: "notes", Title: "Notes", X: 4, Y: 2, Width: 40, Height: 12},
				{ID: "tasks", Title: "Tasks", X: 20, Y: 8, Width: 36, Height: 10},
				{ID: "scratch", Title: "Scratch", X: 38, Y: 4, Width: 30, Height: 9},
			},
		},
	}
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool

	// skipNextReload suppresses the watch callback for our own Save write.
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Supports yaml, json, toml automatically.
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	v.SetEnvPrefix("PANEWM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindings := map[string]string{
		"logging.level":   "LOGGING_LEVEL",
		"logging.format":  "LOGGING_FORMAT",
		"viewport.width":  "VIEWPORT_WIDTH",
		"viewport.height": "VIEWPORT_HEIGHT",
		"dock.width":      "DOCK_WIDTH",
		"dock.item_width": "DOCK_ITEM_WIDTH",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, "PANEWM_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
			// Re-read so viper tracks the file it just gained.
			if err := m.viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read created config file: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshalLocked()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshalLocked decodes and validates the current viper state.
func (m *Manager) unmarshalLocked() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	normalize(config)
	return config, nil
}

// normalize clamps out-of-range values back to their defaults.
func normalize(config *Config) {
	defaults := DefaultConfig()

	switch strings.ToLower(config.Logging.Format) {
	case "json", "console":
		config.Logging.Format = strings.ToLower(config.Logging.Format)
	default:
		config.Logging.Format = defaults.Logging.Format
	}

	if config.Viewport.Width <= 0 {
		config.Viewport.Width = defaults.Viewport.Width
	}
	if config.Viewport.Height <= 0 {
		config.Viewport.Height = defaults.Viewport.Height
	}
	if config.Dock.Width < 0 {
		config.Dock.Width = 0
	}
	if config.Dock.ItemWidth <= 0 {
		config.Dock.ItemWidth = defaults.Dock.ItemWidth
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification.
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads
// automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}

	m.viper.WatchConfig()
	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		m.mu.Lock()
		if m.skipNextReload {
			m.skipNextReload = false
			m.mu.Unlock()
			return
		}
		config, err := m.unmarshalLocked()
		if err != nil {
			m.mu.Unlock()
			return
		}
		m.config = config
		m.notifyCallbacksLocked()
	})

	m.watching = true
	return nil
}

// notifyCallbacksLocked copies callbacks and config, releases the lock,
// then notifies. Must be called with m.mu held for write; releases the
// lock before calling callbacks.
func (m *Manager) notifyCallbacksLocked() {
	config := m.config
	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when the
// configuration changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// Save writes the current configuration back to the config file. The next
// watch event is suppressed so the write does not bounce back as a reload.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if m.watching {
		m.skipNextReload = true
	}
	if err := os.WriteFile(configFile, data, filePerm); err != nil {
		m.skipNextReload = false
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Reset restores the built-in defaults and writes them to disk.
func (m *Manager) Reset() error {
	m.mu.Lock()
	m.config = DefaultConfig()
	m.mu.Unlock()
	return m.Save()
}

// setDefaults seeds viper with the built-in defaults.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("viewport.width", defaults.Viewport.Width)
	m.viper.SetDefault("viewport.height", defaults.Viewport.Height)

	m.viper.SetDefault("dock.width", defaults.Dock.Width)
	m.viper.SetDefault("dock.item_width", defaults.Dock.ItemWidth)

	m.viper.SetDefault("defaults.draggable", defaults.Defaults.Draggable)
	m.viper.SetDefault("defaults.resizable", defaults.Defaults.Resizable)
	m.viper.SetDefault("defaults.closable", defaults.Defaults.Closable)
	m.viper.SetDefault("defaults.minimizable", defaults.Defaults.Minimizable)

	m.viper.SetDefault("demo.panes", defaults.Demo.Panes)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	configData, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// Watch starts watching the global configuration for changes.
func Watch() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Watch()
}

// OnConfigChange registers a callback for global configuration changes.
func OnConfigChange(callback func(*Config)) {
	if globalManager == nil {
		return
	}
	globalManager.OnConfigChange(callback)
}

// Save writes the global configuration back to disk.
func Save() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Save()
}

// Reset restores the global configuration to the built-in defaults and
// writes them to disk.
func Reset() error {
	if globalManager == nil {
		return fmt.Errorf("configuration not initialized")
	}
	return globalManager.Reset()
}

// ConfigFilePath returns the config file in use by the global manager.
func ConfigFilePath() string {
	if globalManager == nil {
		return ""
	}
	return globalManager.GetConfigFile()
}
