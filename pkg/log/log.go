package log

import (
	"fmt"
	"log"
	"os"
	"sync"
)

var (
	defaultLogger *Logger
	once          sync.Once
)

func init() {
	once.Do(func() {
		defaultLogger = New(os.Stdout, log.Ldate|log.Ltime, LevelInfo)
	})
}

type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Logger is a leveled logger over the standard library's log.Logger.
type Logger struct {
	logger *log.Logger
	level  Level
}

func New(out *os.File, flag int, level Level) *Logger {
	return &Logger{
		logger: log.New(out, "", flag),
		level:  level,
	}
}

func (l *Logger) SetLevel(level Level) {
	l.level = level
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level <= l.level {
		l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) Error(format string, args ...interface{}) { l.logf(LevelError, format, args...) }
func (l *Logger) Warn(format string, args ...interface{})  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Info(format string, args ...interface{})  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Debug(format string, args ...interface{}) { l.logf(LevelDebug, format, args...) }

func SetLevel(level Level) { defaultLogger.SetLevel(level) }

func Error(format string, args ...interface{}) { defaultLogger.Error(format, args...) }
func Warn(format string, args ...interface{})  { defaultLogger.Warn(format, args...) }
func Info(format string, args ...interface{})  { defaultLogger.Info(format, args...) }
func Debug(format string, args ...interface{}) { defaultLogger.Debug(format, args...) }
