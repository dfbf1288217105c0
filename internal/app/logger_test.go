package app

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-manager/internal/config"
)

func TestEnvLogLevelsCoverEveryEnv(t *testing.T) {
	for env, want := range map[string]zerolog.Level{
		config.EnvLocal: zerolog.TraceLevel,
		config.EnvDev:   zerolog.DebugLevel,
		config.EnvProd:  zerolog.InfoLevel,
	} {
		level, ok := envLogLevels[env]
		require.True(t, ok, env)
		assert.Equal(t, want, level, env)
	}
}

func TestEnvLogWriter(t *testing.T) {
	var buf bytes.Buffer
	prodLogger := zerolog.New(envLogWriter(config.EnvProd, &buf))
	prodLogger.Info().Msg("json line")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "json line", line["message"])

	buf.Reset()
	localLogger := zerolog.New(envLogWriter(config.EnvLocal, &buf))
	localLogger.Info().Msg("console line")
	assert.Contains(t, buf.String(), "console line")
	assert.False(t, json.Valid(buf.Bytes()))
}
