/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/suparena/componentstore/errors"
)

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger creates a slog.Logger writing to w. It does not set the global
// logger, so tests can hold isolated instances.
func NewLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		return nil, errors.NewValidationError("level", fmt.Sprintf("unknown level %q", level))
	}

	opts := &slog.HandlerOptions{Level: lvl}
	var handler slog.Handler
	switch strings.ToLower(format) {
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	case LogFormatText, "":
		handler = slog.NewTextHandler(w, opts)
	default:
		return nil, errors.NewValidationError("format", fmt.Sprintf("unknown format %q", format))
	}
	return slog.New(handler), nil
}

// Logger builds the logger described by c.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	return NewLogger(c.LogLevel, c.LogFormat, w)
}
