package config

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/linesmerrill/invite-inspector/logging"
)

// setLogger builds the process logger for env. Everything at the env's level
// goes to the rotating log file; only errors reach stderr so the report on
// stdout stays readable.
func setLogger(env, logFile string) (*zap.Logger, error) {
	level := levelFor(env)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), zapcore.ErrorLevel),
	}

	if logFile != "" {
		fileCore, err := logging.NewFileCore(logFile, level)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func levelFor(env string) zapcore.Level {
	switch strings.ToLower(env) {
	case "production":
		return zapcore.WarnLevel
	case "development":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}
