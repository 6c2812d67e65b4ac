/*
Package logging builds the zap logger used for diagnostics and bridges
it to the core's Diagnostics port.
*/
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

/*
NewLogger constructs the process logger. Events go to stderr so they
never pollute the corrected-command output on stdout, which the shell
function evals. When logFile is non-empty, events are additionally
written there with rotation.
*/
func NewLogger(level, logFile string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.WarnLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	writeSyncer := zapcore.AddSync(os.Stderr)
	if logFile != "" {
		rotating := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    5, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		}
		writeSyncer = zapcore.NewMultiWriteSyncer(writeSyncer, zapcore.AddSync(rotating))
	}

	core := zapcore.NewCore(encoder, writeSyncer, lvl)
	return zap.New(core), nil
}
