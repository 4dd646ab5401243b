// Package admin wires configuration parsing and startup for the admin panel.
package admin

import (
	"context"
	"flag"
	"fmt"

	"github.com/louisbranch/clinicdesk/internal/platform/config"
	"github.com/louisbranch/clinicdesk/internal/services/admin"
)

// Config holds the admin command configuration. Environment variables
// provide defaults; flags override them.
type Config struct {
	HTTPAddr string `env:"CLINICDESK_ADDR" envDefault:":8080"`
	DBPath   string `env:"CLINICDESK_DB_PATH" envDefault:"data/clinicdesk.db"`
}

// ParseConfig resolves configuration from the environment and flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the sqlite database file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the admin panel server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	server, err := admin.NewServer(admin.Config{
		HTTPAddr: cfg.HTTPAddr,
		DBPath:   cfg.DBPath,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}
