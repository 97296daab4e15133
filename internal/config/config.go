// Package config loads winauto settings from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Norgate-AV/winauto/internal/logger"
	"github.com/Norgate-AV/winauto/internal/timeouts"
)

const envPrefix = "WINAUTO"

// Config holds the resolved settings
type Config struct {
	ExecuteTimeout time.Duration
	CharDelay      time.Duration
	FindTimeout    time.Duration
	FindInterval   time.Duration
	ClassNameMax   int
	Log            logger.LoggerOptions
}

// SetDefaults registers every key with its default value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("execute_timeout", timeouts.ExecuteTimeout)
	v.SetDefault("char_delay", timeouts.CharInputDelay)
	v.SetDefault("find_timeout", time.Duration(timeouts.DefaultFindTimeout))
	v.SetDefault("find_interval", timeouts.FindRetryInterval)
	v.SetDefault("class_name_max", timeouts.ClassNameMaxLength)
	v.SetDefault("log.dir", "")
	v.SetDefault("log.max_size", logger.DefaultLogMaxSize)
	v.SetDefault("log.max_backups", logger.DefaultLogMaxBackups)
	v.SetDefault("log.max_age", logger.DefaultLogMaxAge)
	v.SetDefault("log.compress", true)
}

// New returns a viper instance wired for winauto: defaults, WINAUTO_ env
// variables, and the config file at cfgFile or in the default directory.
func New(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(logger.DefaultDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and resolves the settings.
// A missing default config file is not an error; a missing explicit one is.
func Load(v *viper.Viper) (*Config, error) {
	if explicit := v.ConfigFileUsed(); explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return Resolve(v)
}

// Resolve builds a Config from the values currently held by v
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ExecuteTimeout: v.GetDuration("execute_timeout"),
		CharDelay:      v.GetDuration("char_delay"),
		FindTimeout:    v.GetDuration("find_timeout"),
		FindInterval:   v.GetDuration("find_interval"),
		ClassNameMax:   v.GetInt("class_name_max"),
		Log: logger.LoggerOptions{
			LogDir:     v.GetString("log.dir"),
			MaxSize:    v.GetInt("log.max_size"),
			MaxBackups: v.GetInt("log.max_backups"),
			MaxAge:     v.GetInt("log.max_age"),
			Compress:   v.GetBool("log.compress"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Log.LogDir != "" {
		cfg.Log.LogDir = filepath.Clean(cfg.Log.LogDir)
	}

	return cfg, nil
}

// Validate rejects settings the locator or simulator cannot honor
func (c *Config) Validate() error {
	switch {
	case c.ExecuteTimeout <= 0:
		return fmt.Errorf("execute_timeout must be positive, got %s", c.ExecuteTimeout)
	case c.CharDelay < 0:
		return fmt.Errorf("char_delay must not be negative, got %s", c.CharDelay)
	case c.FindTimeout < 0:
		return fmt.Errorf("find_timeout must not be negative, got %s", c.FindTimeout)
	case c.FindInterval < 0:
		return fmt.Errorf("find_interval must not be negative, got %s", c.FindInterval)
	case c.ClassNameMax <= 0:
		return fmt.Errorf("class_name_max must be positive, got %d", c.ClassNameMax)
	}

	return nil
}
