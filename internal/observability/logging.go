// Package observability builds the structured logger shared by the CLI and parser.
package observability

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cory-johannsen/flyin/internal/config"
)

// encoderConfig returns the encoder settings for the given format.
func encoderConfig(format string) (zapcore.EncoderConfig, error) {
	var encCfg zapcore.EncoderConfig
	switch format {
	case "json":
		encCfg = zap.NewProductionEncoderConfig()
	case "console":
		encCfg = zap.NewDevelopmentEncoderConfig()
	default:
		return encCfg, fmt.Errorf("unknown log format %q", format)
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return encCfg, nil
}

// NewLogger creates a structured logger writing to w.
//
// Precondition: cfg.Level must be one of "debug", "info", "warn", "error".
// Precondition: cfg.Format must be "json" or "console".
// Postcondition: Returns a configured zap.Logger or a non-nil error.
func NewLogger(cfg config.LoggingConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", cfg.Level, err)
	}

	encCfg, err := encoderConfig(cfg.Format)
	if err != nil {
		return nil, err
	}

	var enc zapcore.Encoder
	if cfg.Format == "json" {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("flyin"), nil
}
