package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the diagnostic log inside the log directory. It is unrelated to
// the uptime log, which is never rotated.
const FileName = "uptime.log"

type Options struct {
	Dir   string // empty writes console-encoded logs to Stderr
	Level string
	// Stderr defaults to os.Stderr.
	Stderr io.Writer
}

// NewLogger builds the diagnostic logger. Every entry carries a run_id.
func NewLogger(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}

	var core zapcore.Core
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, err
		}
		w := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opts.Dir, FileName),
			MaxSize:    10, // MB
			MaxBackups: 5,
			MaxAge:     14, // days
			Compress:   true,
		})
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "ts"
		core = zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, level)
	} else {
		// console output shares the terminal with the report lines; keep it quiet
		if level < zapcore.WarnLevel {
			level = zapcore.WarnLevel
		}
		out := opts.Stderr
		if out == nil {
			out = os.Stderr
		}
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = "ts"
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(out), level)
	}

	return zap.New(core).With(zap.String("run_id", uuid.NewString())), nil
}
