package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/venatus57/autoanalyseur/internal/common"
	"github.com/venatus57/autoanalyseur/internal/history"
)

// initStore opens the history database configured via --db,
// AUTOANALYSEUR_STORAGE_PATH or the config file.
func initStore() (history.Store, error) {
	dbPath := viper.GetString("storage.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "autoanalyseur", "history.db")
	}

	store, err := history.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("cannot open history database at %s", dbPath), err)
	}
	return store, nil
}
