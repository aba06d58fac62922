// Package cli implements the command dispatch layer. It is thin glue: each
// command passes already-typed primitive arguments to the storage engine or
// report generator and prints the result; storage errors surface verbatim.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/todowbs/internal/config"
	"github.com/example/todowbs/internal/store"
)

// ConfigPath is set by the root --config flag; empty means the default
// location.
var ConfigPath string

// openStore loads the configuration, makes sure the data directory exists,
// and opens the database.
func openStore() (*store.SQLiteStore, error) {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return store.NewSQLiteStore(cfg.Database.Path)
}

// optStringFlag returns the flag's value as a pointer, or nil when the flag
// was not provided on the command line.
func optStringFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// deref renders an optional string for display.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
