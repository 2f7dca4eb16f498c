package logutil

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

// FormatConsole - Human readable log lines
const FormatConsole = "console"

// FormatJSON - One json object per log line
const FormatJSON = "json"

// LogConfig - Configuration of the logger
//   - Level is one of debug, info, warn, error (default info)
//   - Format is either console or json (default console)
//   - Filename is an optional log file, if empty the log is written to stderr
//   - MaxSize is the max size in megabytes of a log file before it gets rotated
//   - MaxDays is the max number of days to retain rotated log files
//   - MaxBackups is the max number of rotated log files to retain
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// NewLogger - Returns a zap logger built from the given configuration
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.getLevel()
	if err != nil {
		return
	}
	encoder, err := getLoggerEncoder(cfg.Format)
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)
	logger = zap.New(core, zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller())

	return
}

// getLevel - Returns the atomic level given by the configuration
func (cfg *LogConfig) getLevel() (level zap.AtomicLevel, err error) {
	level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if cfg.Level == "" {
		return
	}

	err = level.UnmarshalText([]byte(cfg.Level))
	if err != nil {
		err = fmt.Errorf("error while parsing log level: %s", err)
	}

	return
}

// getSyncer - Returns a rotating file syncer if a file name is configured, otherwise the console syncer
func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.Lock(os.Stderr)
}

func getLoggerEncoder(format string) (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "", FormatConsole:
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("unsupported log format %q, should be %s or %s", format, FormatConsole, FormatJSON)
	}

	return
}
