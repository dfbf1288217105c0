package app

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-manager/internal/config"
)

const serviceName = "task-manager"

// envLogLevels covers every env config.EnvReader accepts.
var envLogLevels = map[string]zerolog.Level{
	config.EnvLocal: zerolog.TraceLevel,
	config.EnvDev:   zerolog.DebugLevel,
	config.EnvProd:  zerolog.InfoLevel,
}

var globalLogger zerolog.Logger

func InitDefaultLogger() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.TimestampFieldName = "timestamp"

	globalLogger = zerolog.New(os.Stdout).
		With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Int("pid", os.Getpid()).
		Logger()

	globalLogger.Info().Msg("initialized default logger")
}

func MustInitApplicationLogger() {
	env := config.Global().Env

	zerolog.SetGlobalLevel(envLogLevels[env])
	globalLogger = globalLogger.Output(envLogWriter(env, os.Stdout))
	globalLogger.Info().
		Str("env", env).
		Str("level", zerolog.GlobalLevel().String()).
		Msg("initialized application logger")
}

// envLogWriter switches to human-readable output for local runs.
func envLogWriter(env string, out io.Writer) io.Writer {
	if env != config.EnvLocal {
		return out
	}

	consoleWriter := zerolog.NewConsoleWriter()
	consoleWriter.TimeFormat = time.DateTime
	consoleWriter.Out = out
	consoleWriter.NoColor = true
	return consoleWriter
}
