package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"groupedit/internal/domain"
	"groupedit/internal/eventbus"
)

// Store drivers
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverREST   = "rest"
)

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	User       UserSettings   `toml:"user"`
	Store      StoreSettings  `toml:"store"`
	Policy     PolicySettings `toml:"policy"`
	Server     ServerSettings `toml:"server"`
	Log        LogSettings    `toml:"log"`
	UISettings UISettings     `toml:"ui"`
}

// UserSettings describes the acting user
type UserSettings struct {
	Login string `toml:"login"`
	Admin bool   `toml:"admin"`
}

// StoreSettings selects and configures the group store
type StoreSettings struct {
	Driver string `toml:"driver"` // memory, sqlite or rest
	DSN    string `toml:"dsn"`    // sqlite database file
	URL    string `toml:"url"`    // base URL of a groupedit server
}

// PolicySettings holds site-wide group settings reported on every record
type PolicySettings struct {
	AddToGroup domain.Policy `toml:"add_to_group"`
}

// ServerSettings configures `groupedit serve`
type ServerSettings struct {
	Addr string `toml:"addr"`
}

// LogSettings configures the log file
type LogSettings struct {
	File string `toml:"file"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelpFooter bool `toml:"show_help_footer"`
}

// Capabilities derives the acting user's capability flags
func (c *Config) Capabilities() domain.Capabilities {
	return domain.Capabilities{IsAdministrator: c.User.Admin}
}

// Validate checks values that would otherwise fail later
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the sqlite driver")
		}
	case DriverREST:
		if c.Store.URL == "" {
			return fmt.Errorf("store.url is required for the rest driver")
		}
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}
	if !c.Policy.AddToGroup.Valid() {
		return fmt.Errorf("unknown add_to_group policy: %q", c.Policy.AddToGroup)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the default config path
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "groupedit", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path keeps the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file Load reads from
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration file, falling back to defaults when it does
// not exist, then applies .env and environment overrides
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	// A missing .env file is fine
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path without overrides
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	}

	return nil
}

// applyEnv overrides config values from GROUPEDIT_* variables
func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("GROUPEDIT_ADMIN"); ok {
		admin, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GROUPEDIT_ADMIN: %w", err)
		}
		cfg.User.Admin = admin
	}
	if v := os.Getenv("GROUPEDIT_USER"); v != "" {
		cfg.User.Login = v
	}
	if v := os.Getenv("GROUPEDIT_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("GROUPEDIT_STORE_DSN"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("GROUPEDIT_STORE_URL"); v != "" {
		cfg.Store.URL = v
	}
	if v := os.Getenv("GROUPEDIT_ADD_TO_GROUP_POLICY"); v != "" {
		cfg.Policy.AddToGroup = domain.Policy(v)
	}
	if v := os.Getenv("GROUPEDIT_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GROUPEDIT_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		User: UserSettings{
			Login: os.Getenv("USER"),
		},
		Store: StoreSettings{
			Driver: DriverMemory,
		},
		Server: ServerSettings{
			Addr: ":8080",
		},
		Log: LogSettings{
			File: "groupedit.log",
		},
		UISettings: UISettings{
			ShowHelpFooter: true,
		},
	}
}
