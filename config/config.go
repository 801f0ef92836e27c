/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/componentstore/component"
	"github.com/suparena/componentstore/errors"
)

// Environment variable names read by Load.
const (
	EnvLogLevel    = "COMPONENTSTORE_LOG_LEVEL"
	EnvLogFormat   = "COMPONENTSTORE_LOG_FORMAT"
	EnvFactory     = "COMPONENTSTORE_FACTORY"
	EnvModulesPath = "COMPONENTSTORE_MODULES_PATH"

	EnvAWSAccessKey = "AWS_ACCESS_KEY"
	EnvAWSSecretKey = "AWS_SECRET_KEY"
	EnvAWSRegion    = "AWS_REGION"
	EnvAWSTable     = "AWS_DDB_TABLE"
)

// Config is the process configuration of a component store deployment.
type Config struct {
	LogLevel    string
	LogFormat   string
	Factory     string
	ModulesPath string
	AWS         AWS
}

// AWS holds the DynamoDB connection settings used by the snapshot store.
type AWS struct {
	AccessKey string
	SecretKey string
	Region    string
	Table     string
}

// Configured reports whether enough is set to open a DynamoDB store.
func (a AWS) Configured() bool {
	return a.Region != "" && a.Table != ""
}

// Load reads the given .env files, then the process environment. Missing
// files are skipped; variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		LogLevel:    getenv(EnvLogLevel, "info"),
		LogFormat:   getenv(EnvLogFormat, LogFormatText),
		Factory:     getenv(EnvFactory, component.ReflectFactoryName),
		ModulesPath: os.Getenv(EnvModulesPath),
		AWS: AWS{
			AccessKey: os.Getenv(EnvAWSAccessKey),
			SecretKey: os.Getenv(EnvAWSSecretKey),
			Region:    os.Getenv(EnvAWSRegion),
			Table:     os.Getenv(EnvAWSTable),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that have a closed set of options.
func (c *Config) Validate() error {
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		return errors.NewValidationError("LogLevel", fmt.Sprintf("unknown level %q", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return errors.NewValidationError("LogFormat", fmt.Sprintf("unknown format %q", c.LogFormat))
	}
	if _, err := component.FactoryByName(c.Factory); err != nil {
		return err
	}
	return nil
}

// TypeFactory returns the factory named by c.Factory.
func (c *Config) TypeFactory() (component.TypeFactory, error) {
	return component.FactoryByName(c.Factory)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
