package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the zap-backed Logger.
type ZapLogger struct {
	zap *zap.Logger
}

var _ Logger = &ZapLogger{}

// NewZapLogger builds a zap logger from cfg.
// An unparsable level falls back to info and any format other than console encodes JSON.
//
// Parameters:
//   - cfg: logger configuration
//
// Returns:
//   - *ZapLogger: the logger
//   - error: error if zap fails to build the logger
func NewZapLogger(cfg LoggerConfig) (*ZapLogger, error) {
	l, err := zapConfig(cfg).Build(
		zap.AddCaller(),
		// Skip the ZapLogger method frame so callers point at engine code.
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, err
	}
	return &ZapLogger{zap: l}, nil
}

func zapConfig(cfg LoggerConfig) zap.Config {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zc.Encoding = "json"
	if cfg.Format == "console" {
		zc.Encoding = "console"
	}

	zc.Sampling = nil
	if cfg.EnableSampling {
		zc.Sampling = &zap.SamplingConfig{Initial: cfg.SampleInitial, Thereafter: cfg.SampleThereafter}
	}
	return zc
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// NewFromZap wraps an existing zap.Logger, typically an observer core in tests.
func NewFromZap(z *zap.Logger) *ZapLogger {
	return &ZapLogger{zap: z}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &ZapLogger{zap: zap.NewNop()}
}

// zapField encodes the value kinds the engine logs (angles, counters, labels,
// flags and errors) without reflection. Anything else goes through zap.Any.
func zapField(f Field) zap.Field {
	switch v := f.Value.(type) {
	case float64:
		return zap.Float64(f.Key, v)
	case int:
		return zap.Int(f.Key, v)
	case uint32:
		return zap.Uint32(f.Key, v)
	case uint64:
		return zap.Uint64(f.Key, v)
	case string:
		return zap.String(f.Key, v)
	case bool:
		return zap.Bool(f.Key, v)
	case error:
		return zap.NamedError(f.Key, v)
	}
	return zap.Any(f.Key, f.Value)
}

func zapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, len(fields))
	for i, f := range fields {
		out[i] = zapField(f)
	}
	return out
}

func (l *ZapLogger) Debug(msg string, fields ...Field) { l.zap.Debug(msg, zapFields(fields)...) }

func (l *ZapLogger) Info(msg string, fields ...Field) { l.zap.Info(msg, zapFields(fields)...) }

func (l *ZapLogger) Warn(msg string, fields ...Field) { l.zap.Warn(msg, zapFields(fields)...) }

func (l *ZapLogger) Error(msg string, fields ...Field) { l.zap.Error(msg, zapFields(fields)...) }

func (l *ZapLogger) Fatal(msg string, fields ...Field) { l.zap.Fatal(msg, zapFields(fields)...) }

func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{zap: l.zap.With(zapFields(fields)...)}
}

func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}
