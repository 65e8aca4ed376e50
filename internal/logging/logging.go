// internal/logging/logging.go
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the tool's structured logger, writing console-encoded lines to
// stderr. Warnings are the default floor; --verbose lowers it to Info and
// --quiet raises it to Error. Quiet wins when both are set.
func New(stderr io.Writer, tool string, quiet, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.InfoLevel
	}
	if quiet {
		level = zapcore.ErrorLevel
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(stderr),
		level,
	)
	return zap.New(core).With(zap.String("tool", tool))
}
