// Package log builds the logr.Logger used by the command line tools: a logr
// front end over one or more zap cores.
package log

import (
	"fmt"
	"io"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"HashBench/errutil"
)

type logConfig struct {
	core    zapcore.Core
	cleanup func() error
}

type sinkConfig struct {
	encoder zapcore.Encoder
	sink    zapcore.WriteSyncer
	level   zapcore.LevelEnabler
}

// New creates a logger named service writing to every configured sink. With
// no sinks the logger discards everything. The returned function flushes the
// sinks and should run before the program exits.
func New(service string, configs ...logConfig) (logr.Logger, func() error) {
	var cores []zapcore.Core
	var cleanupFuncs []func() error
	for _, config := range configs {
		cores = append(cores, config.core)
		if config.cleanup != nil {
			cleanupFuncs = append(cleanupFuncs, config.cleanup)
		}
	}
	zapLogger := zap.New(zapcore.NewTee(cores...))
	cleanupFuncs = append(cleanupFuncs, zapLogger.Sync)
	return zapr.NewLogger(zapLogger).WithName(service), firstErrorFunc(cleanupFuncs...)
}

// WithConsoleSink adds a human readable output.
func WithConsoleSink(sink io.Writer, opts ...func(*sinkConfig)) logConfig {
	return newCoreConfig(zapcore.NewConsoleEncoder(defaultEncoderConfig()), sink, opts...)
}

// WithJSONSink adds a JSON encoded output.
func WithJSONSink(sink io.Writer, opts ...func(*sinkConfig)) logConfig {
	return newCoreConfig(zapcore.NewJSONEncoder(defaultEncoderConfig()), sink, opts...)
}

// WithLevel sets the verbosity of a sink: level n enables logger.V(n).
func WithLevel(level int8) func(*sinkConfig) {
	return func(conf *sinkConfig) {
		// Zap levels grow more verbose as they decrease, so V(2) needs -2.
		conf.level = zap.NewAtomicLevelAt(zapcore.Level(-level))
	}
}

func defaultEncoderConfig() zapcore.EncoderConfig {
	conf := zap.NewProductionEncoderConfig()
	conf.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)
	conf.EncodeLevel = func(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		if level >= zapcore.ErrorLevel {
			enc.AppendString("error")
			return
		}
		enc.AppendString(fmt.Sprintf("info-%d", -int8(level)))
	}
	return conf
}

func newCoreConfig(encoder zapcore.Encoder, sink io.Writer, opts ...func(*sinkConfig)) logConfig {
	conf := sinkConfig{
		encoder: encoder,
		sink:    zapcore.Lock(zapcore.AddSync(sink)),
		level:   zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}
	for _, f := range opts {
		f(&conf)
	}
	return logConfig{core: zapcore.NewCore(conf.encoder, conf.sink, conf.level)}
}

// firstErrorFunc returns a function that runs every f and reports the first
// error.
func firstErrorFunc(fs ...func() error) func() error {
	return func() error {
		errs := make([]error, len(fs))
		for i, f := range fs {
			errs[i] = f()
		}
		return errutil.First(errs...)
	}
}
