package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DataSourceDatabase = "database"
	DataSourceYAML     = "yaml"
	DataSourceAPI      = "api"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	DataSource DataSourceConfig `mapstructure:"datasource"`
	Database   DatabaseConfig   `mapstructure:"database"`
	YAML       YAMLConfig       `mapstructure:"yaml"`
	API        APIConfig        `mapstructure:"api"`
	View       ViewConfig       `mapstructure:"view"`
	Outputs    OutputsConfig    `mapstructure:"outputs"`
}

type ServerConfig struct {
	Port                   int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                   CORSConfig `mapstructure:"cors"`
	ShutdownTimeoutSeconds int        `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataSourceConfig selects where categories and schedules are read from.
type DataSourceConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=database yaml api"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	Path            string            `mapstructure:"path"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
}

type YAMLConfig struct {
	CategoriesFile string `mapstructure:"categories_file"`
	SchedulesFile  string `mapstructure:"schedules_file"`
}

type APIConfig struct {
	BaseURL          string `mapstructure:"base_url" validate:"omitempty,url"`
	Token            string `mapstructure:"token"`
	TimeoutSeconds   int    `mapstructure:"timeout_seconds" validate:"min=1"`
	MaxRetryAttempts uint   `mapstructure:"max_retry_attempts"`
}

func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ViewConfig holds the display options used when a request does not name them.
type ViewConfig struct {
	ViewAs  string `mapstructure:"view_as" validate:"oneof=list table"`
	StartOn string `mapstructure:"start_on" validate:"omitempty,weekday"`
}

type OutputsConfig struct {
	PrintDirectory string `mapstructure:"print_directory"`
	// PrintTemplate replaces the embedded print layout when the file exists.
	PrintTemplate string `mapstructure:"print_template"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/weekly-scheduler")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("datasource.driver", DataSourceDatabase)
	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "weekly_scheduler")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.path", "weekly-scheduler.db")
	v.SetDefault("yaml.categories_file", filepath.Join("data", "categories.yml"))
	v.SetDefault("yaml.schedules_file", filepath.Join("data", "schedules.yml"))
	v.SetDefault("api.timeout_seconds", 10)
	v.SetDefault("api.max_retry_attempts", 3)
	v.SetDefault("view.view_as", "list")
	v.SetDefault("view.start_on", "Monday")
	v.SetDefault("outputs.print_directory", filepath.Join("outputs", "print"))

	// Secrets come from the environment only
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("api.token", "SCHEDULER_API_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind SCHEDULER_API_TOKEN environment variable: %w", err)
	}
	if err := v.BindEnv("api.base_url", "SCHEDULER_API_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind SCHEDULER_API_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}
	if err := loader.validateDataSource(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// validateDataSource checks the settings that only matter for the selected driver.
func (loader *ConfigLoader) validateDataSource(cfg Config) error {
	switch cfg.DataSource.Driver {
	case DataSourceYAML:
		files := []struct{ name, path string }{
			{"yaml.categories_file", cfg.YAML.CategoriesFile},
			{"yaml.schedules_file", cfg.YAML.SchedulesFile},
		}
		for _, f := range files {
			if err := loader.validator.Var(f.path, "file"); err != nil {
				return fmt.Errorf("%s must be an existing and readable file: %q", f.name, f.path)
			}
		}
	case DataSourceAPI:
		if cfg.API.BaseURL == "" {
			return fmt.Errorf("api.base_url is required when datasource.driver is %s", DataSourceAPI)
		}
	case DataSourceDatabase:
		if cfg.Database.Driver == DriverSQLite && cfg.Database.Path == "" {
			return fmt.Errorf("database.path is required for the %s driver", DriverSQLite)
		}
	}
	return nil
}
