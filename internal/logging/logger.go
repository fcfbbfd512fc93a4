// Package logging provides categorized loggers for cratebump subsystems.
// Before Initialize is called every logger is a no-op, so library code can
// log unconditionally and tests run silent by default.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a subsystem log stream.
type Category string

const (
	CategoryManifest Category = "manifest" // TOML tree building and extraction
	CategorySearch   Category = "search"   // directory scan, filtering, fuzzy match
	CategoryBump     Category = "bump"     // version update passes
	CategoryPublish  Category = "publish"  // cargo publish sweeps
	CategoryConfig   Category = "config"   // user configuration
	CategoryCLI      Category = "cli"      // command-line surface
)

var (
	base      = zap.NewNop().Sugar()
	loggers   = make(map[Category]*zap.SugaredLogger)
	loggersMu sync.RWMutex
)

// Initialize builds the process-wide logger. With verbose set, debug output
// from every category is emitted; otherwise only warnings and errors pass.
func Initialize(verbose bool) error {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	base = logger.Sugar()
	loggers = make(map[Category]*zap.SugaredLogger)
	return nil
}

// Get returns the named logger for a category, creating it on first use.
func Get(c Category) *zap.SugaredLogger {
	loggersMu.RLock()
	l, ok := loggers[c]
	loggersMu.RUnlock()
	if ok {
		return l
	}

	loggersMu.Lock()
	defer loggersMu.Unlock()
	if l, ok := loggers[c]; ok {
		return l
	}
	l = base.Named(string(c))
	loggers[c] = l
	return l
}

// Sync flushes any buffered log entries.
func Sync() {
	loggersMu.RLock()
	defer loggersMu.RUnlock()
	_ = base.Sync()
}
