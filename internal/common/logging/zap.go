package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"opcode-map/internal/config"
)

// NewLogger builds a logger writing to out (stdout when nil), which should be
// the same stream handlers print to. Each verbosity step lowers the
// configured level by one.
//
// Sampling is off: every dispatch failure has to show up, however many
// identical ones arrive in a second.
func NewLogger(name string, cfg config.LogConfig, verbosity int, out io.Writer) (*zap.Logger, error) {
	level, err := Level(cfg.Level, verbosity)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stdout
	}

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Sampling = nil
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}
	if f, ok := out.(*os.File); ok && zc.Encoding == "console" && isatty.IsTerminal(f.Fd()) {
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var enc zapcore.Encoder
	switch zc.Encoding {
	case "console":
		enc = zapcore.NewConsoleEncoder(zc.EncoderConfig)
	case "json":
		enc = zapcore.NewJSONEncoder(zc.EncoderConfig)
	default:
		return nil, fmt.Errorf("build logger: unknown encoding %q", zc.Encoding)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(out), zap.NewAtomicLevelAt(level))
	opts := []zap.Option{zap.ErrorOutput(zapcore.Lock(os.Stderr))}
	if zc.Development {
		opts = append(opts, zap.Development(), zap.AddCaller())
	}

	logger := zap.New(core, opts...)
	if name != "" {
		logger = logger.Named(name)
	}
	return logger, nil
}

// Level parses name (empty means warn) and lowers it by verbosity, stopping
// at debug.
func Level(name string, verbosity int) (zapcore.Level, error) {
	level := zapcore.WarnLevel
	if name != "" {
		parsed, err := zapcore.ParseLevel(name)
		if err != nil {
			return level, fmt.Errorf("log level %q: %w", name, err)
		}
		level = parsed
	}
	lowered := int(level) - verbosity
	if lowered < int(zapcore.DebugLevel) {
		return zapcore.DebugLevel, nil
	}
	return zapcore.Level(lowered), nil
}
