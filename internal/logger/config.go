package logger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultFilePath is where duel diagnostics land when file logging is on.
const DefaultFilePath = "logs/duel.log"

// Config holds logging configuration
type Config struct {
	Level          string
	ConsoleEnabled bool
	ConsoleFormat  string
	FileEnabled    bool
	FilePath       string
	FileFormat     string
	FileMaxSizeMB  int
	FileMaxBackups int
	FileMaxAgeDays int
}

// fileConfig mirrors Config with optional fields so an omitted key keeps
// its default instead of resetting it to the zero value.
type fileConfig struct {
	Level          string `yaml:"level"`
	ConsoleEnabled *bool  `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    *bool  `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

type loggingFile struct {
	Logging fileConfig `yaml:"logging"`
}

// DefaultConfig returns console-only text logging at INFO.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       DefaultFilePath,
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing file yields the defaults; a
// file that exists but cannot be parsed is an error.
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return config, fmt.Errorf("read logging config: %w", err)
		default:
			var lf loggingFile
			if err := yaml.Unmarshal(data, &lf); err != nil {
				return config, fmt.Errorf("parse logging config %s: %w", configPath, err)
			}
			config.merge(lf.Logging)
		}
	}

	config.applyEnv()
	return config, nil
}

func (c *Config) merge(f fileConfig) {
	if f.Level != "" {
		c.Level = f.Level
	}
	if f.ConsoleEnabled != nil {
		c.ConsoleEnabled = *f.ConsoleEnabled
	}
	if f.ConsoleFormat != "" {
		c.ConsoleFormat = f.ConsoleFormat
	}
	if f.FileEnabled != nil {
		c.FileEnabled = *f.FileEnabled
	}
	if f.FilePath != "" {
		c.FilePath = f.FilePath
	}
	if f.FileFormat != "" {
		c.FileFormat = f.FileFormat
	}
	if f.FileMaxSizeMB > 0 {
		c.FileMaxSizeMB = f.FileMaxSizeMB
	}
	if f.FileMaxBackups > 0 {
		c.FileMaxBackups = f.FileMaxBackups
	}
	if f.FileMaxAgeDays > 0 {
		c.FileMaxAgeDays = f.FileMaxAgeDays
	}
}

func (c *Config) applyEnv() {
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Level = logLevel
	}
	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		c.ConsoleFormat = consoleFormat
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			c.FileEnabled = enabled
		}
	}
	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		c.FilePath = filePath
	}
}
