// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logger holds the process-wide zap logger. Until InitLogger is
// called every logger returned by NewLogger discards its output.
package logger

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
	root   = logger.Sugar()
	atom   = zap.NewAtomicLevel()
)

// InitLogger installs a JSON logger writing to stderr.
func InitLogger() {
	InitLoggerWithWriter(os.Stderr)
}

// InitLoggerWithWriter installs a JSON logger writing to w.
func InitLoggerWithWriter(w io.Writer) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	mu.Lock()
	defer mu.Unlock()
	logger = zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		atom,
	))
	root = logger.Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = logger.Sync()
}

// NewLogger returns a logger named after a component.
func NewLogger(name string) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return root.Named(name)
}

// SetDebug toggles debug level logging.
func SetDebug(enable bool) {
	if enable {
		atom.SetLevel(zap.DebugLevel)
		return
	}
	atom.SetLevel(zap.InfoLevel)
}
