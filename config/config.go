package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/icodeforyou/genability-go/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "GENABILITY"
	// Looked up in the working directory and ./config when no path is given.
	DefaultConfigName = "genability"
)

var ErrMissingCredentials = errors.New("appId and appKey must both be configured")

type AppConfigLogging struct {
	// Min log level for the console: "DEBUG", "INFO", "WARN", "ERROR", default: "INFO"
	ConsoleLevel *string `mapstructure:"console_level"`
	// Min log level for the log file, default: "DEBUG"
	FileLevel *string `mapstructure:"file_level"`
	// JSON log file, appended to. No file logging when unset.
	File *string `mapstructure:"file"`
}

func (l AppConfigLogging) GetConsoleLevel() slog.Level {
	return logging.LevelFromString(l.ConsoleLevel)
}

func (l AppConfigLogging) GetFileLevel() slog.Level {
	if l.FileLevel == nil {
		return slog.LevelDebug
	}
	return logging.LevelFromString(l.FileLevel)
}

func (l AppConfigLogging) GetFile() string {
	if l.File == nil {
		return ""
	}
	return *l.File
}

type AppConfig struct {
	AppID  string `mapstructure:"appid"`
	AppKey string `mapstructure:"appkey"`
	// Base URL of the REST API, default: https://api.genability.com/rest/
	RestAPIServer *string `mapstructure:"restapiserver"`
	// Per request timeout as a Go duration, e.g. "30s", default: 30s
	Timeout *string          `mapstructure:"timeout"`
	Logging AppConfigLogging `mapstructure:"logging"`
}

func (c AppConfig) GetRestAPIServer() string {
	if c.RestAPIServer == nil {
		return ""
	}
	return *c.RestAPIServer
}

func (c AppConfig) GetTimeout() time.Duration {
	if c.Timeout == nil {
		return 30 * time.Second
	}
	d, err := time.ParseDuration(*c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// Load reads the configuration from path, or from genability.properties in
// the working directory or ./config when path is empty. A .env file in the
// working directory is applied to the environment first, and GENABILITY_*
// variables override file values.
func Load(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("unable to load .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("properties")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range []string{"appid", "appkey", "restapiserver", "timeout",
		"logging.console_level", "logging.file_level", "logging.file"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("unable to bind env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	var c AppConfig
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config file: %w", err)
	}

	c.AppID = strings.TrimSpace(c.AppID)
	c.AppKey = strings.TrimSpace(c.AppKey)
	if c.AppID == "" || c.AppKey == "" {
		return nil, ErrMissingCredentials
	}
	if c.Timeout != nil {
		if _, err := time.ParseDuration(*c.Timeout); err != nil {
			return nil, fmt.Errorf("invalid timeout %q: %w", *c.Timeout, err)
		}
	}

	return &c, nil
}
