package main

import (
	"encoding/json"
	"fmt"

	"github.com/danielpatrickdp/adaptive-tone/internal/config"
	"github.com/danielpatrickdp/adaptive-tone/internal/history"
)

// loadConfig resolves the runtime configuration from --config, if given.
func loadConfig() (config.Config, error) {
	return config.Load(configPath)
}

// openStore opens the history store at dbPath, falling back to the
// configured path when dbPath is empty. Returns nil when persistence is
// disabled for the command.
func openStore(dbPath string, cfg config.Config, required bool) (*history.Store, error) {
	if dbPath == "" {
		if !required {
			return nil, nil
		}
		dbPath = cfg.DBPath
	}
	store, err := history.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	return store, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
