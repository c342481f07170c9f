// Package debug provides the --debug diagnostic log shared by every package.
// Messages are dropped unless debug mode is enabled.
package debug

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	output  zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	logger                      = zap.NewNop().Sugar()
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
	rebuild()
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
	rebuild()
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		output = zapcore.Lock(os.Stderr)
	} else {
		output = zapcore.AddSync(w)
	}
	rebuild()
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// rebuild replaces the logger. Callers must hold mu.
func rebuild() {
	if !enabled {
		logger = zap.NewNop().Sugar()
		return
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.CallerKey = zapcore.OmitKey
	encCfg.NameKey = zapcore.OmitKey
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	encCfg.EncodeLevel = levelEncoder(!noColor)
	encCfg.ConsoleSeparator = " "

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), output, zapcore.DebugLevel)
	logger = zap.New(core).Sugar()
}

func levelEncoder(color bool) zapcore.LevelEncoder {
	return func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		tag := "[" + l.CapitalString() + "]"
		if color {
			tag = colorCyan + tag + colorReset
		}
		enc.AppendString(tag)
	}
}

func current() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	current().Debugf("=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	current().Debugw(key, "value", value)
}
