package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	LogFilePermissions = 0600
	InfoLogLevel       = "info"
)

var (
	globalLogger *zap.Logger
	loggerMutex  sync.RWMutex
	once         sync.Once

	// Global settings, overridable from viper before the first Get().
	GlobalEnableConsoleLogger bool
	GlobalEnableFileLogger    bool
	GlobalLogPath             string = "/tmp/aws-regions.log"
	GlobalLogLevel            string = InfoLogLevel
	GlobalLogFile             *os.File
)

// Logger wraps zap with the formatted helpers this codebase uses.
type Logger struct {
	*zap.Logger
}

// InitLoggerOutputs loads the output settings from viper if present.
func InitLoggerOutputs() {
	GlobalEnableConsoleLogger = false
	GlobalEnableFileLogger = true
	GlobalLogPath = "/tmp/aws-regions.log"
	GlobalLogLevel = InfoLogLevel

	if viper.IsSet("general.log_path") {
		GlobalLogPath = viper.GetString("general.log_path")
	}
	if viper.IsSet("general.log_level") {
		GlobalLogLevel = viper.GetString("general.log_level")
	}
	if viper.IsSet("general.enable_console_logger") {
		GlobalEnableConsoleLogger = viper.GetBool("general.enable_console_logger")
	}
	if viper.IsSet("general.enable_file_logger") {
		GlobalEnableFileLogger = viper.GetBool("general.enable_file_logger")
	}
}

// InitProduction builds the global logger once from the global settings.
func InitProduction() {
	once.Do(func() {
		if GlobalLogLevel == "" {
			GlobalLogLevel = InfoLogLevel
		}
		level := zap.NewAtomicLevelAt(getZapLevel(GlobalLogLevel))

		var cores []zapcore.Core
		if GlobalEnableConsoleLogger {
			cores = append(cores, createConsoleCore(level))
		}
		if GlobalEnableFileLogger {
			if fileCore, err := createFileCore(level); err == nil {
				cores = append(cores, fileCore)
			}
		}
		if len(cores) == 0 {
			globalLogger = zap.NewNop()
			return
		}

		globalLogger = zap.New(zapcore.NewTee(cores...), zap.AddCaller()).Named("aws-regions")
	})
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

func createConsoleCore(level zap.AtomicLevel) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.AddSync(os.Stderr),
		level,
	)
}

func createFileCore(level zap.AtomicLevel) (zapcore.Core, error) {
	logFile, err := os.OpenFile(
		GlobalLogPath,
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		LogFilePermissions,
	)
	if err != nil {
		return nil, err
	}
	GlobalLogFile = logFile // Store for cleanup

	return zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig()),
		zapcore.AddSync(logFile),
		level,
	), nil
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("[%s]", t.Format("2006-01-02 15:04:05")))
}

func getZapLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Get returns the global logger, initializing it on first use.
func Get() *Logger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()

	if globalLogger == nil {
		InitProduction()
	}
	return &Logger{Logger: globalLogger}
}

// SetGlobalLogger replaces the global logger; tests use it with NewNopLogger.
func SetGlobalLogger(logger *Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = logger.Logger
}

func NewNopLogger() *Logger {
	return &Logger{Logger: zap.NewNop()}
}

func (l *Logger) log(level zapcore.Level, msg string) {
	if l.Logger != nil && l.Logger.Core().Enabled(level) {
		if ce := l.Logger.Check(level, msg); ce != nil {
			ce.Write()
		}
	}
}

func (l *Logger) Debug(msg string) { l.log(zapcore.DebugLevel, msg) }
func (l *Logger) Info(msg string)  { l.log(zapcore.InfoLevel, msg) }
func (l *Logger) Warn(msg string)  { l.log(zapcore.WarnLevel, msg) }
func (l *Logger) Error(msg string) { l.log(zapcore.ErrorLevel, msg) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.Debug(fmt.Sprintf(format, args...)) }
func (l *Logger) Infof(format string, args ...interface{})  { l.Info(fmt.Sprintf(format, args...)) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.Warn(fmt.Sprintf(format, args...)) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.Error(fmt.Sprintf(format, args...)) }

func (l *Logger) DebugWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Debug(msg, fields...)
	}
}

func (l *Logger) ErrorWithFields(msg string, fields ...zap.Field) {
	if l.Logger != nil {
		l.Logger.Error(msg, fields...)
	}
}
