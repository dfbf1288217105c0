package app

import (
	"context"

	"github.com/adanyl0v/go-task-manager/internal/config"
	"github.com/adanyl0v/go-task-manager/internal/storage"
)

var globalSQLite *storage.DB

func MustConnectSQLite() {
	cfg := config.Global().SQLite

	var err error
	globalSQLite, err = storage.Open(context.Background(), cfg.Path)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.Path).
			Msg("failed to open sqlite")
		panic(err)
	}
	globalLogger.Info().
		Str("path", cfg.Path).
		Msg("connected to sqlite")
}

func DisconnectSQLite() {
	err := globalSQLite.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close sqlite")
		return
	}
	globalLogger.Info().Msg("disconnected from sqlite")
}
